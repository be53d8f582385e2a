package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kerbaras/mangatracker/pkg/data"
	"github.com/kerbaras/mangatracker/pkg/integrations"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Repository is the read side of the collection store used by the controller.
type Repository interface {
	ListEntries() ([]data.Entry, error)
	GetEntry(id int) (*data.Entry, error)
}

type ControllerConfig struct {
	Repository  Repository
	DownloadDir string
	// RawCSV disables CSV quoting.
	RawCSV bool
}

// LibraryController ties the collection store to the query engine, the
// aggregator and the exporters. Each operation reads the store afresh.
type LibraryController struct {
	repo       Repository
	downloader *Downloader
	exporters  []integrations.Exporter
}

func NewLibraryController() *LibraryController {
	return NewLibraryControllerWithConfig(ControllerConfig{})
}

func NewLibraryControllerWithConfig(config ControllerConfig) *LibraryController {
	repo := config.Repository
	if repo == nil {
		repo = data.NewDuckDBRepository()
	}

	downloadDir := config.DownloadDir
	if downloadDir == "" {
		downloadDir = DefaultDownloadDir()
	}

	return &LibraryController{
		repo:       repo,
		downloader: NewDownloader(downloadDir),
		exporters: []integrations.Exporter{
			integrations.NewJSONExporter(),
			integrations.NewCSVExporter(config.RawCSV),
			integrations.NewEPUBExporter(),
		},
	}
}

func (c *LibraryController) Entries() ([]data.Entry, error) {
	entries, err := c.repo.ListEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}
	return entries, nil
}

func (c *LibraryController) GetEntry(id int) (*data.Entry, error) {
	entry, err := c.repo.GetEntry(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("entry %d not found", id)
	}
	return entry, nil
}

func (c *LibraryController) Filter(searchTerm string, filter StatusFilter) ([]data.Entry, error) {
	entries, err := c.Entries()
	if err != nil {
		return nil, err
	}
	return Filter(entries, searchTerm, filter), nil
}

func (c *LibraryController) Stats() (Stats, error) {
	entries, err := c.Entries()
	if err != nil {
		return Stats{}, err
	}
	return Summarize(entries), nil
}

// Formats lists the export format names in menu order.
func (c *LibraryController) Formats() []string {
	names := make([]string, len(c.exporters))
	for i, e := range c.exporters {
		names[i] = e.Name()
	}
	return names
}

func (c *LibraryController) Exporter(format string) (integrations.Exporter, error) {
	for _, e := range c.exporters {
		if e.Name() == format {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Render serializes the whole library without saving it.
func (c *LibraryController) Render(format string) ([]byte, integrations.Exporter, error) {
	exporter, err := c.Exporter(format)
	if err != nil {
		return nil, nil, err
	}

	entries, err := c.Entries()
	if err != nil {
		return nil, nil, err
	}

	content, err := exporter.Export(entries)
	if err != nil {
		return nil, nil, fmt.Errorf("%s export failed: %w", format, err)
	}

	slog.Debug("library rendered", slog.String("format", format), slog.Int("entries", len(entries)))
	return content, exporter, nil
}

// Export serializes the whole library and saves it through the downloader.
func (c *LibraryController) Export(format string) (DownloadResult, error) {
	content, exporter, err := c.Render(format)
	if err != nil {
		return DownloadResult{}, err
	}
	return c.downloader.Save(exporter.FileName(), exporter.MIMEType(), content)
}

func (c *LibraryController) DownloadDir() string {
	return c.downloader.Dir()
}

func (c *LibraryController) Close() error {
	if closer, ok := c.repo.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
