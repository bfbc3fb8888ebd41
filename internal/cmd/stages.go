package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/feeflow/internal/content"
	"github.com/Iron-Ham/feeflow/internal/stage"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the workflow stages",
	Long: `List the five workflow stages with their file counts.

Use --objects to also show the document names each stage is fetched by,
which is handy when populating a store.`,
	Args: cobra.NoArgs,
	RunE: runStages,
}

var (
	stagesObjects    bool
	stagesHighlights bool
)

func init() {
	rootCmd.AddCommand(stagesCmd)

	stagesCmd.Flags().BoolVar(&stagesObjects, "objects", false, "Show the store object name for each document")
	stagesCmd.Flags().BoolVar(&stagesHighlights, "highlights", false, "Show each stage's highlights")
}

func runStages(cmd *cobra.Command, args []string) error {
	headers := []string{"STAGE", "TITLE", "ENGLISH", "IN", "OUT"}
	if stagesObjects {
		for _, c := range content.Categories {
			headers = append(headers, strings.ToUpper(c.Key()))
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for _, d := range stage.Catalog() {
		row := []string{
			d.Badge(),
			d.Title,
			d.EnglishTitle,
			strconv.Itoa(d.InputFiles),
			strconv.Itoa(d.OutputFiles),
		}
		if stagesObjects {
			for _, c := range content.Categories {
				row = append(row, content.ObjectName(d.ID, c))
			}
		}
		t.Row(row...)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "Total files: %d\n", stage.TotalFiles())

	if stagesHighlights {
		for _, d := range stage.Catalog() {
			fmt.Fprintf(out, "\n%s %s\n", d.Badge(), d.Title)
			for _, h := range d.Highlights {
				fmt.Fprintf(out, "  • %s\n", h)
			}
		}
	}
	return nil
}
