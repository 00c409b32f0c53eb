package main

import (
	"os"

	"github.com/aps270195/cv-assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
