package main

import (
	"github.com/sw33tLie/lookalike/cmd"
)

func main() {
	cmd.Execute()
}
