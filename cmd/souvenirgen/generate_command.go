package main

import (
	"github.com/spf13/cobra"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/regen"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var languages []string
	var skipCredits bool
	var withExport bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate translation tables and the credits document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(ctx, cmd, regen.Options{
				Languages:    languages,
				Translations: true,
				Credits:      !skipCredits,
				Export:       withExport,
			})
		},
	}

	cmd.Flags().StringSliceVarP(&languages, "language", "l", nil, "Limit the run to a language code (repeatable)")
	cmd.Flags().BoolVar(&skipCredits, "skip-credits", false, "Skip the credits document")
	cmd.Flags().BoolVar(&withExport, "export", false, "Also write go-i18n message catalogs")
	return cmd
}
