package main

import (
	"github.com/spf13/cobra"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/regen"
)

func newContributorsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "contributors",
		Short: "Regenerate the credits document only",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(ctx, cmd, regen.Options{
				Credits: true,
			})
		},
	}
}
