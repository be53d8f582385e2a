package integrations

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/kerbaras/mangatracker/pkg/data"
)

var csvHeader = []string{"Title", "Status", "Chapters Read", "Total Chapters", "Progress %", "Rating", "Genre"}

// CSVExporter writes one row per entry. Raw disables RFC 4180 quoting, which
// reproduces the legacy output but breaks on titles containing commas.
type CSVExporter struct {
	Raw bool
}

func NewCSVExporter(raw bool) *CSVExporter {
	return &CSVExporter{Raw: raw}
}

func (CSVExporter) Name() string     { return "csv" }
func (CSVExporter) FileName() string { return "manga-library.csv" }
func (CSVExporter) MIMEType() string { return "text/csv" }

func (c CSVExporter) Export(entries []data.Entry) ([]byte, error) {
	if c.Raw {
		return toRawCSV(entries), nil
	}
	return ToCSV(entries)
}

func ToCSV(entries []data.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := w.Write(csvRecord(e)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	// rows are newline separated, not terminated
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func toRawCSV(entries []data.Entry) []byte {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, e := range entries {
		lines = append(lines, strings.Join(csvRecord(e), ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

func csvRecord(e data.Entry) []string {
	rating := "N/A"
	if e.IsRated() {
		rating = strconv.Itoa(e.Rating)
	}

	return []string{
		e.Title,
		string(e.Status),
		strconv.Itoa(e.ChaptersRead),
		strconv.Itoa(e.TotalChapters),
		strconv.FormatFloat(e.ProgressPercent(), 'f', 1, 64),
		rating,
		e.Genre,
	}
}
