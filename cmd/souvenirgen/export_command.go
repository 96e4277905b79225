package main

import (
	"github.com/spf13/cobra"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/regen"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export [language...]",
		Short: "Write go-i18n message catalogs only",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(ctx, cmd, regen.Options{
				Languages: args,
				Export:    true,
			})
		},
	}
}
