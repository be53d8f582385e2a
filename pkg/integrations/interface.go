package integrations

import "github.com/kerbaras/mangatracker/pkg/data"

// Exporter serializes the whole library to one file format.
type Exporter interface {
	Name() string
	FileName() string
	MIMEType() string
	Export(entries []data.Entry) ([]byte, error)
}
