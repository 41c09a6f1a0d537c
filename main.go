package main

import (
	"os"

	"github.com/abhisek/mathiz-eval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
