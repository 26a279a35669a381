package main

import (
	"os"

	"cryptem/cmd/cryptem/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
