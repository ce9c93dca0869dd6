package main

import (
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/typelevel"
)

func main() {
	e := typelevel.New(seal.K, "osculp32k")
	_ = typelevel.Dec(seal.K, e)
}
