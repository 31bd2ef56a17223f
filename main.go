package main

import (
	"github.com/engkinandatama/primerlab/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
