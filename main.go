package main

import (
	"os"

	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
