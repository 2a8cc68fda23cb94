package main

import (
	"os"

	"github.com/insightmentor/insightmentor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
