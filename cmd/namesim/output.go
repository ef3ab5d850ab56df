package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"namesim/internal/ranker"
)

// renderResults writes ranked pairs to stdout in the resolved format and a
// total count to stderr, keeping stdout pipeline-safe.
func renderResults(cmd *cobra.Command, results []ranker.Result, settings rankSettings) error {
	if settings.reverse {
		reversed := make([]ranker.Result, len(results))
		for i, r := range results {
			reversed[len(results)-1-i] = r
		}
		results = reversed
	}

	format := settings.format
	if format == "" || format == "auto" {
		if isTerminal(os.Stdout.Fd()) {
			format = "table"
		} else {
			format = "tsv"
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "tsv":
		for _, r := range results {
			fmt.Fprintf(out, "%s\t%s\t%.4f\n", r.PathA, r.PathB, r.Score)
		}
	case "table":
		if len(results) == 0 {
			fmt.Fprintln(out, "No similar pairs found")
		} else {
			fmt.Fprintln(out, renderResultTable(results))
		}
	case "json":
		return writeResultsJSON(cmd, results)
	default:
		return fmt.Errorf("output format: unsupported value %q", format)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "total count = %d\n", len(results))
	return nil
}

// renderResultTable lays out ranked pairs as a rounded table with numeric
// columns right-aligned.
func renderResultTable(results []ranker.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Score", "File A", "File B", "Combined Size"})
	for _, r := range results {
		tw.AppendRow(table.Row{
			strconv.FormatFloat(r.Score, 'f', 4, 64),
			r.PathA,
			r.PathB,
			formatCombinedSize(r.CombinedSize),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// formatCombinedSize renders a pair's on-disk footprint. Entries that never
// touched the filesystem carry no size and render as "-".
func formatCombinedSize(size int64) string {
	if size <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(size))
}

// writeResultsJSON emits the count/results envelope as indented JSON.
func writeResultsJSON(cmd *cobra.Command, results []ranker.Result) error {
	payload := struct {
		Count   int             `json:"count"`
		Results []ranker.Result `json:"results"`
	}{Count: len(results), Results: results}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
