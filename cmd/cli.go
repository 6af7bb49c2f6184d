package cmd

import (
	"conceptdemos/internal/ownership"
	"conceptdemos/internal/shadowing"
	"fmt"

	"github.com/alecthomas/kong"
)

type ShadowingCLI struct{}

func (cli *ShadowingCLI) Run(ctx *kong.Context) error {
	if err := shadowing.Run(ctx.Stdout); err != nil {
		return fmt.Errorf("shadowing demo: %w", err)
	}
	return nil
}

type OwnershipCLI struct{}

func (cli *OwnershipCLI) Run(ctx *kong.Context) error {
	if err := ownership.Run(ctx.Stdout); err != nil {
		return fmt.Errorf("ownership demo: %w", err)
	}
	return nil
}
