package main

import (
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/typelevel"
)

func main() {
	e := typelevel.Inc(seal.K, typelevel.New(seal.K, struct{}{}))
	_ = typelevel.Unwrap(e)
}
