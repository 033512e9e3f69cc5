package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/Ning0612/FakeFTP/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
