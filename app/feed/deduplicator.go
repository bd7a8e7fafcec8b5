package feed

type Deduplicator struct{}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Run removes items sharing the same link and title, keeping the first
// occurrence in input order. The match is exact and case-sensitive.
func (d *Deduplicator) Run(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	deduped := make([]Item, 0, len(items))
	for _, item := range items {
		key := item.Link + "::" + item.Title
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, item)
	}
	return deduped
}
