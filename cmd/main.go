package main

import (
	"os"

	"github.com/soundprediction/traitnet/cmd/traitnet"
)

func main() {
	if err := traitnet.Execute(); err != nil {
		os.Exit(1)
	}
}
