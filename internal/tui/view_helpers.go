package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/shiosayi/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func valueOrDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}

func yearOrDash(y *int64) string {
	if y == nil {
		return "-"
	}
	return strconv.FormatInt(*y, 10)
}

// fitText shortens v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

func statusLabel(s models.FilmStatus) string {
	switch s {
	case models.StatusOrphan:
		return "orphan"
	case models.StatusAdopted:
		return "adopted"
	case models.StatusAbandoned:
		return "abandoned"
	default:
		return string(s)
	}
}

// describeFilter renders the active criteria on one line.
func describeFilter(f models.FilmFilter) string {
	if f.IsShowAll() {
		return "showing all films"
	}

	parts := make([]string, 0, 3)

	if f.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("title ~ %q", f.SearchTerm))
	}

	if len(f.Statuses) == 0 {
		parts = append(parts, "all statuses")
	} else {
		names := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			names = append(names, statusLabel(s))
		}
		parts = append(parts, strings.Join(names, "+"))
	}

	if f.Region != "" {
		parts = append(parts, "region "+f.Region)
	} else {
		parts = append(parts, "all regions")
	}

	return strings.Join(parts, " · ")
}
