package main

import (
	"os"

	"github.com/manyfold-lang/manyfold/pkg/cli"
)

func main() {
	os.Exit(cli.Entry(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
