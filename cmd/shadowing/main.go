package main

import (
	"conceptdemos/cmd"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli cmd.ShadowingCLI
	ctx := kong.Parse(&cli,
		kong.Name("shadowing"),
		kong.Description("Variable shadowing in nested scopes"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
