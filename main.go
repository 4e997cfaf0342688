package main

import (
	"os"

	"github.com/haneul/aiquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
