package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/mangatracker/pkg/services"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	Long:  "Summarize the library: totals per status, chapters read, average rating and the status distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := controller.Stats()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "📊 Reading Statistics")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Total Manga:          %d\n", stats.TotalManga)
		fmt.Fprintf(out, "  Currently Reading:    %d\n", stats.Reading)
		fmt.Fprintf(out, "  Completed:            %d\n", stats.Completed)
		fmt.Fprintf(out, "  Plan to Read:         %d\n", stats.PlanToRead)
		fmt.Fprintf(out, "  Total Chapters Read:  %d\n", stats.TotalChaptersRead)
		fmt.Fprintf(out, "  Average Rating:       %s\n", stats.AverageRatingLabel())
		fmt.Fprintln(out)

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers("Status", "Titles", "Share")

		for _, share := range services.Distribution(stats) {
			t.Row(share.Status.Label(), fmt.Sprintf("%d", share.Count), fmt.Sprintf("%.1f%%", share.Percent))
		}

		fmt.Fprintln(out, t)
		return nil
	},
}
