package services

import (
	"fmt"

	"github.com/kerbaras/mangatracker/pkg/data"
)

type Stats struct {
	TotalManga        int
	Reading           int
	Completed         int
	PlanToRead        int
	Dropped           int
	TotalChaptersRead int
	RatedCount        int
	// AverageRating is the mean of non-zero ratings to one decimal, 0 when nothing is rated.
	AverageRating float64
}

func (s Stats) HasRating() bool {
	return s.RatedCount > 0
}

func (s Stats) AverageRatingLabel() string {
	if !s.HasRating() {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", s.AverageRating)
}

func (s Stats) Count(status data.Status) int {
	switch status {
	case data.StatusReading:
		return s.Reading
	case data.StatusCompleted:
		return s.Completed
	case data.StatusPlanToRead:
		return s.PlanToRead
	case data.StatusDropped:
		return s.Dropped
	default:
		return 0
	}
}

func Summarize(entries []data.Entry) Stats {
	stats := Stats{TotalManga: len(entries)}
	ratingSum := 0

	for _, e := range entries {
		switch e.Status {
		case data.StatusReading:
			stats.Reading++
		case data.StatusCompleted:
			stats.Completed++
		case data.StatusPlanToRead:
			stats.PlanToRead++
		case data.StatusDropped:
			stats.Dropped++
		}

		stats.TotalChaptersRead += e.ChaptersRead

		if e.IsRated() {
			stats.RatedCount++
			ratingSum += e.Rating
		}
	}

	if stats.RatedCount > 0 {
		stats.AverageRating = data.RoundTenth(float64(ratingSum) / float64(stats.RatedCount))
	}

	return stats
}

type StatusShare struct {
	Status  data.Status
	Count   int
	Percent float64
}

// Distribution returns each status' share of the library in display order.
func Distribution(stats Stats) []StatusShare {
	statuses := data.Statuses()
	shares := make([]StatusShare, len(statuses))
	for i, s := range statuses {
		count := stats.Count(s)
		shares[i] = StatusShare{Status: s, Count: count, Percent: Percent(count, stats.TotalManga)}
	}
	return shares
}

// Percent returns count/total as a percentage to one decimal, 0 for an empty total.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return data.RoundTenth(float64(count) / float64(total) * 100)
}
