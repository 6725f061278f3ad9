package main

import (
	"os"

	"github.com/payapp-dev/payapp/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
