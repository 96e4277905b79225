package main

import (
	"github.com/spf13/cobra"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/regen"
)

func newTranslationsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "translations [language...]",
		Short: "Regenerate translation tables only",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(ctx, cmd, regen.Options{
				Languages:    args,
				Translations: true,
			})
		},
	}
}
