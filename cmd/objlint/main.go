package main

import (
	"os"

	"github.com/objlint/objlint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
