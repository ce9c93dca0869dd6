package main

import "omibyte.io/samclock/typelevel"

func main() {
	c := typelevel.Counter[typelevel.Zero]{}
	_ = typelevel.Decrement(c)
}
