package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/google/uuid"
	"github.com/kerbaras/mangatracker/pkg/data"
)

// EPUBExporter compiles the library into a reading-list book: a generated
// cover, a summary page and one section per status.
type EPUBExporter struct {
	Title  string
	Author string
}

func NewEPUBExporter() *EPUBExporter {
	return &EPUBExporter{Title: "Manga Library", Author: "Manga Tracker"}
}

func (p *EPUBExporter) Name() string     { return "epub" }
func (p *EPUBExporter) FileName() string { return "manga-library.epub" }
func (p *EPUBExporter) MIMEType() string { return "application/epub+zip" }

func (p *EPUBExporter) Export(entries []data.Entry) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "mangatracker-epub-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	e, err := epub.NewEpub(p.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to create EPub: %w", err)
	}

	e.SetAuthor(p.Author)
	e.SetLang("en")
	e.SetDescription(fmt.Sprintf("Reading list with %d titles", len(entries)))
	e.SetIdentifier(libraryIdentifier(entries))

	if err := p.addCover(e, workDir, entries); err != nil {
		return nil, err
	}

	if _, err := e.AddSection(summarySection(entries), "Summary", "summary.xhtml", ""); err != nil {
		return nil, fmt.Errorf("failed to add summary: %w", err)
	}

	for _, status := range data.Statuses() {
		group := entriesWithStatus(entries, status)
		if len(group) == 0 {
			continue
		}
		filename := fmt.Sprintf("%s.xhtml", status)
		if _, err := e.AddSection(statusSection(status, group), status.Label(), filename, ""); err != nil {
			return nil, fmt.Errorf("failed to add section %s: %w", status, err)
		}
	}

	outputPath := filepath.Join(workDir, p.FileName())
	if err := e.Write(outputPath); err != nil {
		return nil, fmt.Errorf("failed to write EPub: %w", err)
	}

	return os.ReadFile(outputPath)
}

func (p *EPUBExporter) addCover(e *epub.Epub, workDir string, entries []data.Entry) error {
	cover, err := RenderCover(p.Title, entries, 600, 800)
	if err != nil {
		return err
	}

	coverPath := filepath.Join(workDir, "cover.png")
	if err := os.WriteFile(coverPath, cover, 0644); err != nil {
		return fmt.Errorf("failed to write cover: %w", err)
	}

	internalPath, err := e.AddImage(coverPath, "cover.png")
	if err != nil {
		return fmt.Errorf("failed to add cover image: %w", err)
	}

	body := fmt.Sprintf(`<div class="cover"><img src="%s" alt="Cover" style="width:100%%;height:auto;"/></div>`, internalPath)
	if _, err := e.AddSection(body, "Cover", "cover.xhtml", ""); err != nil {
		return fmt.Errorf("failed to add cover section: %w", err)
	}
	return nil
}

// libraryIdentifier derives a stable identifier so re-exporting an unchanged library yields the same book id.
func libraryIdentifier(entries []data.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%d:%s:%s:%d/%d:%d;", e.ID, e.Title, e.Status, e.ChaptersRead, e.TotalChapters, e.Rating)
	}
	return "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(b.String())).String()
}

func entriesWithStatus(entries []data.Entry, status data.Status) []data.Entry {
	var group []data.Entry
	for _, e := range entries {
		if e.Status == status {
			group = append(group, e)
		}
	}
	return group
}

func summarySection(entries []data.Entry) string {
	chapters := 0
	for _, e := range entries {
		chapters += e.ChaptersRead
	}

	var b strings.Builder
	b.WriteString("<h1>Summary</h1>\n<ul>\n")
	fmt.Fprintf(&b, "<li>Titles: %d</li>\n", len(entries))
	fmt.Fprintf(&b, "<li>Chapters read: %d</li>\n", chapters)
	for _, status := range data.Statuses() {
		fmt.Fprintf(&b, "<li>%s: %d</li>\n", status.Label(), len(entriesWithStatus(entries, status)))
	}
	b.WriteString("</ul>\n")
	return b.String()
}

func statusSection(status data.Status, entries []data.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(status.Label()))
	b.WriteString("<table>\n<tr><th>Title</th><th>Genre</th><th>Progress</th><th>Rating</th></tr>\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d/%d (%.1f%%)</td><td>%s</td></tr>\n",
			html.EscapeString(e.Title),
			html.EscapeString(e.Genre),
			e.ChaptersRead, e.TotalChapters, e.ProgressPercent(),
			ratingStars(e.Rating),
		)
	}
	b.WriteString("</table>\n")
	return b.String()
}

func ratingStars(rating int) string {
	if rating <= 0 {
		return "Unrated"
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
