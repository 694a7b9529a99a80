package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var baseURLFlag string

	ctx := newCommandContext(&configFlag, &baseURLFlag)

	rootCmd := &cobra.Command{
		Use:           "biaslab",
		Short:         "Bias Lab CLI",
		Long:          "Submit articles to the Bias Lab analysis service and inspect scores, highlights, and narratives.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Analysis service base URL (overrides config)")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newArticlesCommand(ctx))
	rootCmd.AddCommand(newNarrativesCommand(ctx))
	rootCmd.AddCommand(newHighlightsCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
