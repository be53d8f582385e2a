package data

// DefaultEntries returns the library every session starts with.
func DefaultEntries() []Entry {
	return []Entry{
		{ID: 1, Title: "One Piece", Status: StatusReading, ChaptersRead: 875, TotalChapters: 1100, Rating: 5, Genre: "Shonen", CoverColor: "#8B5CF6"},
		{ID: 2, Title: "Attack on Titan", Status: StatusCompleted, ChaptersRead: 139, TotalChapters: 139, Rating: 5, Genre: "Seinen", CoverColor: "#000000"},
		{ID: 3, Title: "My Hero Academia", Status: StatusReading, ChaptersRead: 320, TotalChapters: 410, Rating: 4, Genre: "Shonen", CoverColor: "#22C55E"},
		{ID: 4, Title: "Jujutsu Kaisen", Status: StatusReading, ChaptersRead: 245, TotalChapters: 250, Rating: 5, Genre: "Shonen", CoverColor: "#EF4444"},
		{ID: 5, Title: "Chainsaw Man", Status: StatusCompleted, ChaptersRead: 97, TotalChapters: 97, Rating: 5, Genre: "Shonen", CoverColor: "#F59E0B"},
		{ID: 6, Title: "Demon Slayer", Status: StatusCompleted, ChaptersRead: 205, TotalChapters: 205, Rating: 4, Genre: "Shonen", CoverColor: "#06B6D4"},
		{ID: 7, Title: "Berserk", Status: StatusPlanToRead, ChaptersRead: 0, TotalChapters: 374, Rating: 0, Genre: "Seinen", CoverColor: "#64748B"},
		{ID: 8, Title: "Vagabond", Status: StatusPlanToRead, ChaptersRead: 0, TotalChapters: 327, Rating: 0, Genre: "Seinen", CoverColor: "#A855F7"},
	}
}
