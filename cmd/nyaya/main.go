package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{Use: "nyaya"}

	root.AddCommand(serveCMD(), probeCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
