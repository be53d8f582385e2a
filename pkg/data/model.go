package data

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStatus = errors.New("unknown status")
	ErrInvalidEntry  = errors.New("invalid entry")
	ErrDuplicateID   = errors.New("duplicate entry id")
)

// Status is the reading state of a library entry.
type Status string

const (
	StatusReading    Status = "reading"
	StatusCompleted  Status = "completed"
	StatusPlanToRead Status = "plan-to-read"
	StatusDropped    Status = "dropped"
)

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{StatusReading, StatusCompleted, StatusPlanToRead, StatusDropped}
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusReading, StatusCompleted, StatusPlanToRead, StatusDropped:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) Label() string {
	switch s {
	case StatusReading:
		return "Reading"
	case StatusCompleted:
		return "Completed"
	case StatusPlanToRead:
		return "Plan to Read"
	case StatusDropped:
		return "Dropped"
	default:
		return string(s)
	}
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return []byte(s), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Entry is one tracked manga title.
type Entry struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Status        Status `json:"status"`
	ChaptersRead  int    `json:"chaptersRead"`
	TotalChapters int    `json:"totalChapters"`
	Rating        int    `json:"rating"` // 0 means unrated
	Genre         string `json:"genre"`
	CoverColor    string `json:"coverColor"`
}

// Progress returns the read percentage, 0 when the total is unknown.
func (e Entry) Progress() float64 {
	if e.TotalChapters <= 0 {
		return 0
	}
	return float64(e.ChaptersRead) / float64(e.TotalChapters) * 100
}

// ProgressPercent is Progress rounded to one decimal, as displayed and exported.
func (e Entry) ProgressPercent() float64 {
	return RoundTenth(e.Progress())
}

func (e Entry) IsRated() bool {
	return e.Rating > 0
}

func (e Entry) Validate() error {
	switch {
	case e.Title == "":
		return fmt.Errorf("%w: entry %d has an empty title", ErrInvalidEntry, e.ID)
	case !e.Status.Valid():
		return fmt.Errorf("%w: entry %d has %w %q", ErrInvalidEntry, e.ID, ErrUnknownStatus, string(e.Status))
	case e.ChaptersRead < 0:
		return fmt.Errorf("%w: entry %d has negative chapters read", ErrInvalidEntry, e.ID)
	case e.TotalChapters > 0 && e.ChaptersRead > e.TotalChapters:
		return fmt.Errorf("%w: entry %d has read %d of %d chapters", ErrInvalidEntry, e.ID, e.ChaptersRead, e.TotalChapters)
	case e.Rating < 0 || e.Rating > 5:
		return fmt.Errorf("%w: entry %d has rating %d outside 0-5", ErrInvalidEntry, e.ID, e.Rating)
	}
	return nil
}
