package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"biaslab/internal/biasapi"
	"biaslab/internal/session"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var title string
	var outlet string
	var sourceURL string
	var textInline string
	var textFile string
	var full bool
	var expandClaims bool
	var expandHighlights bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Submit an article for bias analysis",
		Long: "Submit an article by source URL or pasted text and render the full analysis:\n" +
			"overall bias index, per-dimension scores, extracted claims, highlighted\n" +
			"phrases, and related narratives.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := biasapi.AnalyzeRequest{
				Title:  title,
				Outlet: outlet,
				URL:    sourceURL,
			}

			if textFile != "" {
				if textInline != "" {
					return errors.New("specify only one of --text or --text-file")
				}
				data, err := os.ReadFile(textFile)
				if err != nil {
					return fmt.Errorf("read text file: %w", err)
				}
				req.Text = string(data)
			} else {
				req.Text = textInline
			}

			if err := session.ValidateSubmission(req); err != nil {
				return err
			}

			orch, cleanup, err := ctx.newOrchestrator()
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("full") {
				full = ctx.configValue().Analysis.IncludePrimary
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Analyzing %q from %s...\n", strings.TrimSpace(title), strings.TrimSpace(outlet))
			if _, err := orch.Submit(cmd.Context(), req, full); err != nil {
				return wrapServiceError(err, ctx.configValue())
			}
			orch.Wait()

			if jsonOutput {
				return writeJSON(cmd, orch.Snapshot())
			}

			if expandClaims {
				orch.ClaimsDisclosure().ToggleAll()
			}
			if expandHighlights {
				orch.HighlightDisclosure().ToggleAll()
			}

			fmt.Fprintln(out)
			renderView(out, orch, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Article title (required)")
	cmd.Flags().StringVarP(&outlet, "outlet", "o", "", "Publishing outlet (required)")
	cmd.Flags().StringVarP(&sourceURL, "url", "u", "", "Source URL to scrape and analyze")
	cmd.Flags().StringVar(&textInline, "text", "", "Article text to analyze")
	cmd.Flags().StringVar(&textFile, "text-file", "", "Read article text from a file")
	cmd.Flags().BoolVar(&full, "full", false, "Run the slower analysis that gathers primary sources")
	cmd.Flags().BoolVar(&expandClaims, "expand-claims", false, "Show rationale and sources for every claim")
	cmd.Flags().BoolVar(&expandHighlights, "expand-highlights", false, "Show span and reason for every highlight")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the analysis view as JSON")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("outlet")

	return cmd
}
