package agreement

import (
	"math"
	"strconv"
	"strings"
)

// Filter narrows a fetched agreement collection in memory. Department is the
// only criterion also applied at the SQL level (it scopes the reviewer
// fetch); everything else is applied here, after the fetch.
type Filter struct {
	Search       string
	Status       string
	DepartmentID string
	UnitID       string
	Period       string
	Year         string
}

// Reset clears every filter except department, which re-anchors to the
// viewer's own department. Reviewers are anchored to their department, so
// resetting never leaves the department filter empty for them.
func (f Filter) Reset(viewerDepartmentID string) Filter {
	return Filter{DepartmentID: viewerDepartmentID}
}

// Year derives the four-digit filter year for an agreement from submitted_at,
// falling back to created_at. An agreement with neither returns "".
func Year(a Agreement) string {
	if a.SubmittedAt != nil && !a.SubmittedAt.IsZero() {
		return strconv.Itoa(a.SubmittedAt.Year())
	}
	if !a.CreatedAt.IsZero() {
		return strconv.Itoa(a.CreatedAt.Year())
	}
	return ""
}

func (f Filter) matches(a Agreement) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		title := strings.ToLower(a.Title)
		creator := strings.ToLower(a.Creator.FullName())
		dept := ""
		if a.DepartmentName != nil {
			dept = strings.ToLower(*a.DepartmentName)
		}
		if !strings.Contains(title, needle) &&
			!strings.Contains(creator, needle) &&
			!strings.Contains(dept, needle) {
			return false
		}
	}
	if f.Status != "" && string(a.Status) != f.Status {
		return false
	}
	if f.DepartmentID != "" && a.DepartmentID != f.DepartmentID {
		return false
	}
	if f.UnitID != "" {
		if a.Creator.UnitID == nil || *a.Creator.UnitID != f.UnitID {
			return false
		}
	}
	if f.Period != "" && string(a.Period) != f.Period {
		return false
	}
	if f.Year != "" && Year(a) != f.Year {
		return false
	}
	return true
}

// Apply projects the collection through the filter. Drafts pass through;
// this is the projection for an owner's own list.
func Apply(items []Agreement, f Filter) []Agreement {
	out := make([]Agreement, 0, len(items))
	for _, a := range items {
		if f.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// ApplyForReview projects the collection for reviewer-facing lists. Drafts
// are always excluded regardless of the status filter: reviewers never see
// another employee's draft.
func ApplyForReview(items []Agreement, f Filter) []Agreement {
	out := make([]Agreement, 0, len(items))
	for _, a := range items {
		if a.Status == StatusDraft {
			continue
		}
		if f.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// Paginate slices the filtered collection. Invariants: the returned page
// holds at most pageSize items and totalPages == ceil(len/pageSize); an
// empty collection yields zero pages.
func Paginate(items []Agreement, page, pageSize int) ([]Agreement, int) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}

	totalPages := int(math.Ceil(float64(len(items)) / float64(pageSize)))

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []Agreement{}, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
