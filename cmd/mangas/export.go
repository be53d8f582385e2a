package cmd

import (
	"fmt"

	"github.com/kerbaras/mangatracker/pkg/services"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library",
	Long: `Export the whole library as JSON, CSV or an EPUB reading list.

Files are saved to ~/Downloads unless --output or MANGATRACKER_EXPORT_DIR says otherwise.

Examples:
  mangatracker export --format csv
  mangatracker export --format epub --output ./exports
  mangatracker export --format json --stdout > library.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		toStdout, _ := cmd.Flags().GetBool("stdout")

		if toStdout {
			content, _, err := controller.Render(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		}

		var (
			result services.DownloadResult
			err    error
		)
		if output != "" {
			content, exporter, rerr := controller.Render(format)
			if rerr != nil {
				return rerr
			}
			result, err = services.NewDownloader(output).Save(exporter.FileName(), exporter.MIMEType(), content)
		} else {
			result, err = controller.Export(format)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %s (%d bytes, %s)\n", result.Path, result.Size, result.MIMEType)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Export format: json, csv or epub")
	exportCmd.Flags().StringP("output", "o", "", "Directory to save the export in")
	exportCmd.Flags().Bool("stdout", false, "Write the export to stdout instead of a file")
	exportCmd.Flags().Bool("raw-csv", false, "Write CSV fields without quoting")
}
