package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"biaslab/internal/biasapi"
	"biaslab/internal/scoring"
)

func newArticlesCommand(ctx *commandContext) *cobra.Command {
	articlesCmd := &cobra.Command{
		Use:   "articles",
		Short: "Browse and manage analyzed articles",
	}

	articlesCmd.AddCommand(newArticlesListCommand(ctx))
	articlesCmd.AddCommand(newArticlesShowCommand(ctx))
	articlesCmd.AddCommand(newArticlesDeleteCommand(ctx))
	articlesCmd.AddCommand(newArticlesExportCommand(ctx))

	return articlesCmd
}

func newArticlesListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List analyzed articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *biasapi.Client) error {
				if limit <= 0 {
					limit = ctx.configValue().API.ArticleLimit
				}
				articles, err := client.ListArticles(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, articles)
				}
				if len(articles) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No articles analyzed yet")
					return nil
				}

				rows := make([][]string, 0, len(articles))
				for _, article := range articles {
					rows = append(rows, []string{
						article.ID,
						article.Title,
						article.Outlet,
						articleBandCell(article),
						article.CreatedAt,
					})
				}
				table := renderTable(
					[]string{"ID", "Title", "Outlet", "Bias", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum articles to list (defaults to configured limit)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit articles as JSON")
	return cmd
}

// articleBandCell summarizes an article's bias for the list table, e.g.
// "62 (High)". Articles without stored scores render as "-".
func articleBandCell(article biasapi.Article) string {
	if len(article.Scores) == 0 {
		return "-"
	}
	idx := scoring.Aggregate(article.Scores)
	return fmt.Sprintf("%.0f (%s)", idx.Value, bandLabel(idx.Band))
}

func newArticlesShowCommand(ctx *commandContext) *cobra.Command {
	var expandClaims bool
	var expandHighlights bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <article-id>",
		Short: "Show the full analysis view for an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, cleanup, err := ctx.newOrchestrator()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := orch.Open(cmd.Context(), args[0]); err != nil {
				return wrapServiceError(err, ctx.configValue())
			}
			orch.Wait()

			view := orch.Snapshot()
			if view.DetailErr != "" && view.Summary == "" && len(view.Scores) == 0 {
				return fmt.Errorf("load article %s: %s", args[0], view.DetailErr)
			}

			if jsonOutput {
				return writeJSON(cmd, view)
			}
			if expandClaims {
				orch.ClaimsDisclosure().ToggleAll()
			}
			if expandHighlights {
				orch.HighlightDisclosure().ToggleAll()
			}
			out := cmd.OutOrStdout()
			renderView(out, orch, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&expandClaims, "expand-claims", false, "Show rationale and sources for every claim")
	cmd.Flags().BoolVar(&expandHighlights, "expand-highlights", false, "Show span and reason for every highlight")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the analysis view as JSON")
	return cmd
}

func newArticlesDeleteCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <article-id>",
		Short: "Delete an analyzed article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *biasapi.Client) error {
				articleID := strings.TrimSpace(args[0])
				out := cmd.OutOrStdout()

				if !yes {
					fmt.Fprintf(out, "Delete article %s? [y/N] ", articleID)
					reader := bufio.NewReader(cmd.InOrStdin())
					answer, _ := reader.ReadString('\n')
					answer = strings.ToLower(strings.TrimSpace(answer))
					if answer != "y" && answer != "yes" {
						fmt.Fprintln(out, "Aborted")
						return nil
					}
				}

				if err := client.DeleteArticle(cmd.Context(), articleID); err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted article %s\n", articleID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without confirmation")
	return cmd
}

func newArticlesExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export-url <article-id>",
		Short: "Print the CSV export URL for an article's highlights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *biasapi.Client) error {
				fmt.Fprintln(cmd.OutOrStdout(), client.ExportCSVURL(strings.TrimSpace(args[0])))
				return nil
			})
		},
	}
}
