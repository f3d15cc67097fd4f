package main

import (
	"os"

	"github.com/scottcagno/stringsearch/cmd/search/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
