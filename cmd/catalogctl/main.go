package main

import (
	"os"

	"github.com/javajoker/product-catalog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
