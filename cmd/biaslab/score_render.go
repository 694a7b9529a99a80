package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"biaslab/internal/biasapi"
	"biaslab/internal/scoring"
)

const scoreBarWidth = 24

var titleCaser = cases.Title(language.English)

// bandLabel renders a band name for humans: "extremely_high" becomes
// "Extremely High".
func bandLabel(band scoring.Band) string {
	return titleCaser.String(strings.ReplaceAll(string(band), "_", " "))
}

// dimensionLabel renders a dimension key for humans.
func dimensionLabel(dimension string) string {
	return titleCaser.String(strings.ReplaceAll(dimension, "_", " "))
}

func bandColors(band scoring.Band) text.Colors {
	switch band {
	case scoring.BandLow:
		return text.Colors{text.FgGreen}
	case scoring.BandMedium:
		return text.Colors{text.FgYellow}
	case scoring.BandHigh:
		return text.Colors{text.FgHiYellow}
	case scoring.BandExtremelyHigh:
		return text.Colors{text.FgRed, text.Bold}
	default:
		return nil
	}
}

func colorizeBand(band scoring.Band, s string, colorize bool) string {
	if !colorize {
		return s
	}
	colors := bandColors(band)
	if colors == nil {
		return s
	}
	return colors.Sprint(s)
}

// scoreBar draws a fixed-width bar proportional to a 0-100 score.
func scoreBar(score float64) string {
	if math.IsNaN(score) {
		score = 0
	}
	clamped := math.Min(math.Max(score, 0), 100)
	filled := int(math.Round(clamped / 100 * scoreBarWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)
}

// renderOverall writes the weighted index line, e.g.
// "Overall bias index: 62/100 [High] - Biased".
func renderOverall(w io.Writer, overall biasapi.Overall, colorize bool) {
	band := overall.DisplayBand()
	label := fmt.Sprintf("%.0f/100 [%s]", overall.Value, bandLabel(band))
	fmt.Fprintf(w, "Overall bias index: %s - %s\n",
		colorizeBand(band, label, colorize),
		scoring.BandVerdict(band),
	)
}

// renderScores writes one bar per dimension, recognized dimensions first in
// canonical order, any extra keys after them alphabetically.
func renderScores(w io.Writer, scores scoring.ScoreSet, colorize bool) {
	if len(scores) == 0 {
		fmt.Fprintln(w, "No dimension scores available")
		return
	}

	recognized := make(map[string]bool, len(scoring.Dimensions))
	ordered := make([]string, 0, len(scores))
	for _, dimension := range scoring.Dimensions {
		recognized[dimension] = true
		if _, ok := scores[dimension]; ok {
			ordered = append(ordered, dimension)
		}
	}
	extras := make([]string, 0)
	for dimension := range scores {
		if !recognized[dimension] {
			extras = append(extras, dimension)
		}
	}
	sort.Strings(extras)
	ordered = append(ordered, extras...)

	for _, dimension := range ordered {
		score := scores[dimension]
		band := scoring.Classify(score)
		fmt.Fprintf(w, "  %-22s %s %s\n",
			dimensionLabel(dimension),
			colorizeBand(band, scoreBar(score), colorize),
			fmt.Sprintf("%3.0f", score),
		)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
