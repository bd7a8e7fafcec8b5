package feed

import (
	"time"
)

// Pipeline types

// Item is the canonical unit flowing through the pipeline. An Item is
// only constructed once title, link and published are all resolved;
// entries missing any of them are dropped at extraction time.
type Item struct {
	Source    string
	Title     string
	Link      string
	Published time.Time
	Summary   string // empty when the entry carried none
}

// Health carries the per-source facts handed to the reporting driver.
type Health struct {
	Name       string
	TotalItems int
	OnDate     int
	Latest     time.Time // zero when the source produced no items
	Err        string
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
