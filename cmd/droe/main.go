package main

import (
	"os"

	"github.com/droe-lang/droe-sub001/cmd/droe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
