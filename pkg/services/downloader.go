package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DownloadResult describes a file handed to the user.
type DownloadResult struct {
	Path     string
	MIMEType string
	Size     int
}

// Downloader presents exported content to the user as a saved file in downloadDir.
// It keeps nothing after Save returns.
type Downloader struct {
	downloadDir string
}

// NewDownloader creates a new Downloader instance
func NewDownloader(downloadDir string) *Downloader {
	return &Downloader{downloadDir: downloadDir}
}

// DefaultDownloadDir is ~/Downloads, or the working directory when there is no home.
func DefaultDownloadDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, "Downloads")
}

func (d *Downloader) Dir() string {
	return d.downloadDir
}

func (d *Downloader) Save(name, mimeType string, content []byte) (DownloadResult, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return DownloadResult{}, fmt.Errorf("invalid file name %q", name)
	}

	if err := os.MkdirAll(d.downloadDir, 0755); err != nil {
		return DownloadResult{}, fmt.Errorf("failed to create download directory: %w", err)
	}

	path := filepath.Join(d.downloadDir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return DownloadResult{}, fmt.Errorf("failed to save %s: %w", name, err)
	}

	slog.Info("export saved",
		slog.String("path", path),
		slog.String("mime", mimeType),
		slog.Int("bytes", len(content)),
	)

	return DownloadResult{Path: path, MIMEType: mimeType, Size: len(content)}, nil
}
