package main

import (
	"fmt"
	"os"

	"github.com/georgek/pathdo/cmd/pathdo/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pathdo:", err)
		os.Exit(1)
	}
}
