package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatracker/pkg/data"
	"github.com/kerbaras/mangatracker/pkg/services"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the manga in your library",
	Long:  "Display the library in a table, optionally narrowed by a title search and a status",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")

		filter, err := services.ParseStatusFilter(status)
		if err != nil {
			return err
		}

		entries, err := controller.Filter(search, filter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "📚 No manga found. Try adjusting your search or filters.")
			return nil
		}

		columns := []table.Column{
			{Title: "Title", Width: 32},
			{Title: "Status", Width: 14},
			{Title: "Progress", Width: 18},
			{Title: "Rating", Width: 8},
			{Title: "Genre", Width: 12},
		}

		rows := make([]table.Row, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, entryRow(e))
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)+1),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Cell
		t.SetStyles(s)

		fmt.Fprintf(out, "\n📚 Library: %s (%d titles)\n\n", filter.Label(), len(entries))
		fmt.Fprintln(out, t.View())
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "Only titles containing this text (case-insensitive)")
	listCmd.Flags().String("status", "all", "Status filter: all, reading, completed, plan-to-read or dropped")
}

func entryRow(e data.Entry) table.Row {
	rating := "N/A"
	if e.IsRated() {
		rating = fmt.Sprintf("%d/5", e.Rating)
	}

	return table.Row{
		truncateString(e.Title, 30),
		e.Status.Label(),
		fmt.Sprintf("%d/%d (%.1f%%)", e.ChaptersRead, e.TotalChapters, e.ProgressPercent()),
		rating,
		e.Genre,
	}
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
