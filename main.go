package main

import (
	"os"

	"github.com/maxkimambo/batchcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
