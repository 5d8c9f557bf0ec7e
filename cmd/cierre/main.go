package main

import (
	"os"

	"github.com/cierre-dev/cierre/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
