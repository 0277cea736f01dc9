package main

import (
	"os"

	"cerberus/cmd/estimate/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
