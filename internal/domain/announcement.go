package domain

import "time"

// Announcement is a vendor press-release item picked up by the feed
// watcher. It flows through the ingest queue and is never written to the
// catalog directly; the consumer turns it into a curation candidate.
type Announcement struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	FamilyHint  string    `json:"family_hint"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
}

// Candidate is a classified announcement: the model string and launch year
// the consumer extracted, plus the generation the classifier suggested.
// An empty Codename means no rule matched.
type Candidate struct {
	Announcement Announcement `json:"announcement"`
	Model        string       `json:"model"`
	LaunchYear   int          `json:"launch_year"`
	Codename     string       `json:"codename"`
}
