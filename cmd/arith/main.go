package main

import (
	"os"

	"github.com/ltungv/arith/cmd/arith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
