package main

import (
	"fmt"
	"os"

	"github.com/goserg/pairingserver/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
