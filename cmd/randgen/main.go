package main

import (
	"randgen"
	_ "randgen/binding"
)

func main() {
	randgen.Main()
}
