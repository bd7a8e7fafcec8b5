package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lysyi3m/vendor-daily/app/feed"
)

// PrintHealth writes the per-source diagnostic listing. A source is
// stale when its latest item is older than staleDays relative to the
// report date.
func PrintHealth(w io.Writer, rows []feed.Health, reportDate time.Time, staleDays int) {
	if staleDays < 0 {
		staleDays = 0
	}

	fmt.Fprintf(w, "Source health for %s (stale > %d days):\n", reportDate.Format("2006-01-02"), staleDays)

	sorted := make([]feed.Health, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	var stale, empty, failed []string
	for _, row := range sorted {
		status := "ok"
		latest := "-"
		age := "-"

		switch {
		case row.Err != "":
			status = "error"
			failed = append(failed, row.Name)
		case row.Latest.IsZero() || row.TotalItems == 0:
			status = "empty"
			empty = append(empty, row.Name)
		default:
			ageDays := daysBetween(row.Latest, reportDate)
			latest = row.Latest.Format("2006-01-02")
			age = strconv.Itoa(ageDays)
			if ageDays > staleDays {
				status = "stale"
				stale = append(stale, row.Name)
			}
		}

		line := fmt.Sprintf("- %s: status=%s, total=%d, on_date=%d, latest=%s, age_days=%s",
			row.Name, status, row.TotalItems, row.OnDate, latest, age)
		if row.Err != "" {
			line += ", error=" + truncate(row.Err, 200)
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "Health summary: %d sources, %d stale, %d empty, %d error.\n",
		len(rows), len(stale), len(empty), len(failed))
}

// daysBetween counts whole calendar days from the latest item date to
// the report date, clamped at zero.
func daysBetween(latest, report time.Time) int {
	ly, lm, ld := latest.Date()
	ry, rm, rd := report.Date()
	from := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	to := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)

	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}
