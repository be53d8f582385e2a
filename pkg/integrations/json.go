package integrations

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/kerbaras/mangatracker/pkg/data"
)

// json matches encoding/json except that &, < and > are written as-is.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (JSONExporter) Name() string     { return "json" }
func (JSONExporter) FileName() string { return "manga-library.json" }
func (JSONExporter) MIMEType() string { return "application/json" }

func (JSONExporter) Export(entries []data.Entry) ([]byte, error) {
	return ToJSON(entries)
}

// ToJSON renders entries as an indented JSON array.
func ToJSON(entries []data.Entry) ([]byte, error) {
	if entries == nil {
		entries = []data.Entry{}
	}
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode library: %w", err)
	}
	return out, nil
}

// ParseJSON reads a library previously written by ToJSON.
func ParseJSON(raw []byte) ([]data.Entry, error) {
	entries := []data.Entry{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode library: %w", err)
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
