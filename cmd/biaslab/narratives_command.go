package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"biaslab/internal/biasapi"
	"biaslab/internal/narratives"
)

func newNarrativesCommand(ctx *commandContext) *cobra.Command {
	narrativesCmd := &cobra.Command{
		Use:   "narratives",
		Short: "Browse narrative clusters",
	}

	narrativesCmd.AddCommand(newNarrativesListCommand(ctx))
	narrativesCmd.AddCommand(newNarrativesReclusterCommand(ctx))

	return narrativesCmd
}

func newNarrativesListCommand(ctx *commandContext) *cobra.Command {
	var order string
	var articleID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List narrative clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *biasapi.Client) error {
				sortOrder := biasapi.Order(strings.ToLower(strings.TrimSpace(order)))
				if sortOrder == "" {
					sortOrder = biasapi.Order(ctx.configValue().API.NarrativeOrder)
				}
				if sortOrder != biasapi.OrderAsc && sortOrder != biasapi.OrderDesc {
					return fmt.Errorf("invalid order %q (use asc or desc)", order)
				}

				list, err := client.ListNarratives(cmd.Context(), sortOrder)
				if err != nil {
					return err
				}
				if id := strings.TrimSpace(articleID); id != "" {
					list = narratives.ForArticle(list, id)
				}
				if jsonOutput {
					return writeJSON(cmd, list)
				}
				if len(list) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No narratives found")
					return nil
				}

				rows := make([][]string, 0, len(list))
				for _, n := range list {
					rows = append(rows, []string{
						n.ID,
						narrativeTitle(n),
						fmt.Sprintf("%d", len(n.Data.ArticleIDs)),
						n.CreatedAt,
					})
				}
				table := renderTable(
					[]string{"ID", "Label", "Articles", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&order, "order", "", "Creation-time sort: asc or desc (defaults to configured order)")
	cmd.Flags().StringVarP(&articleID, "article", "a", "", "Only narratives referencing this article")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit narratives as JSON")
	return cmd
}

func newNarrativesReclusterCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recluster",
		Short: "Ask the service to rebuild narrative clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *biasapi.Client) error {
				if err := client.TriggerClustering(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Clustering triggered")
				return nil
			})
		},
	}
}
