package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one library entry",
	Long:  "Print every field of the entry with the given id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		e, err := controller.GetEntry(id)
		if err != nil {
			return err
		}

		rating := "N/A"
		if e.IsRated() {
			rating = fmt.Sprintf("%d/5", e.Rating)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "📖 %s\n\n", e.Title)
		fmt.Fprintf(out, "  Status:    %s\n", e.Status.Label())
		fmt.Fprintf(out, "  Genre:     %s\n", e.Genre)
		fmt.Fprintf(out, "  Progress:  %d/%d chapters (%.1f%%)\n", e.ChaptersRead, e.TotalChapters, e.ProgressPercent())
		fmt.Fprintf(out, "  Rating:    %s\n", rating)
		fmt.Fprintf(out, "  Cover:     %s\n", e.CoverColor)
		return nil
	},
}
