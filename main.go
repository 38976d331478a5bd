package main

import (
	"os"

	"github.com/soundcore-go/soundcore-core/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
