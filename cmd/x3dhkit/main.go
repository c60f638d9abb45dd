package main

import (
	"os"

	"x3dhkit/cmd/x3dhkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
