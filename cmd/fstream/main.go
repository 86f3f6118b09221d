package main

import (
	"fmt"
	"os"

	"inputfile/internal/fstream"
)

func main() {
	if err := fstream.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
