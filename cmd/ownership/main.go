package main

import (
	"conceptdemos/cmd"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli cmd.OwnershipCLI
	ctx := kong.Parse(&cli,
		kong.Name("ownership"),
		kong.Description("Copy, move and clone of values"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
