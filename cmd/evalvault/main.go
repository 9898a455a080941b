package main

import (
	"os"

	"evalvault/cmd/evalvault/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
