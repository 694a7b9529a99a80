package history

import "time"

// Entry is one recorded analysis submission.
type Entry struct {
	ID        int64
	ArticleID string
	Title     string
	Outlet    string
	Overall   float64
	Band      string
	Verdict   string
	CreatedAt time.Time
}
