package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"biaslab/internal/biasapi"
	"biaslab/internal/highlights"
)

func newHighlightsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "highlights <article-id>",
		Short: "List highlighted phrases for an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *biasapi.Client) error {
				if limit <= 0 {
					limit = ctx.configValue().API.HighlightLimit
				}
				list, err := client.ListHighlights(cmd.Context(), strings.TrimSpace(args[0]), limit)
				if err != nil {
					return err
				}
				list = highlights.Sanitize(list)
				if jsonOutput {
					return writeJSON(cmd, list)
				}
				if len(list) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No displayable highlights")
					return nil
				}

				rows := make([][]string, 0, len(list))
				for _, h := range list {
					span := "-"
					if start, end, ok := highlights.DisplayRange(h.Data); ok {
						span = fmt.Sprintf("%d-%d", start, end)
					}
					rows = append(rows, []string{
						dimensionLabel(h.Dimension),
						h.Data.Text,
						span,
						h.Data.Reason,
					})
				}
				table := renderTable(
					[]string{"Dimension", "Phrase", "Span", "Reason"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum highlights to fetch (defaults to configured limit)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit highlights as JSON")
	return cmd
}
