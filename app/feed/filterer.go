package feed

import (
	"sort"
	"time"
)

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run keeps items whose published instant falls on the report date and
// orders them ascending by publication time. Equal instants keep their
// input order.
func (f *Filterer) Run(items []Item, reportDate time.Time) []Item {
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if sameDate(item.Published, reportDate) {
			filtered = append(filtered, item)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Published.Before(filtered[j].Published)
	})

	return filtered
}
