package agreement

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func sampleAgreements() []Agreement {
	submitted := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return []Agreement{
		{
			ID:           "ag-draft",
			Title:        "Draft Targets",
			Status:       StatusDraft,
			Period:       PeriodAnnual,
			DepartmentID: "dept-fin",
			CreatedAt:    time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			Creator:      Party{ID: "emp-1", Surname: "Okello", LastName: "James", UnitID: strPtr("unit-a")},
		},
		{
			ID:             "ag-pending",
			Title:          "Quarterly Objectives",
			Status:         StatusPendingSupervisor,
			Period:         PeriodAnnual,
			DepartmentID:   "dept-fin",
			DepartmentName: strPtr("Finance"),
			SubmittedAt:    &submitted,
			CreatedAt:      time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			Creator:        Party{ID: "emp-2", Surname: "Nakato", LastName: "Mary", UnitID: strPtr("unit-b")},
		},
		{
			ID:           "ag-approved",
			Title:        "Probation Plan",
			Status:       StatusApproved,
			Period:       PeriodProbation,
			DepartmentID: "dept-hr",
			CreatedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Creator:      Party{ID: "emp-3", Surname: "Mukasa", LastName: "Peter"},
		},
	}
}

// Reviewer projections never include drafts, even with no filter set.
func TestApplyForReviewExcludesDrafts(t *testing.T) {
	got := ApplyForReview(sampleAgreements(), Filter{})

	assert.Len(t, got, 2)
	for _, a := range got {
		assert.NotEqual(t, StatusDraft, a.Status)
	}

	// Not even an explicit status filter can surface them.
	got = ApplyForReview(sampleAgreements(), Filter{Status: string(StatusDraft)})
	assert.Empty(t, got)
}

func TestApplyKeepsDraftsForOwner(t *testing.T) {
	got := Apply(sampleAgreements(), Filter{})
	assert.Len(t, got, 3)
}

func TestFilterSearchMatchesTitleCreatorAndDepartment(t *testing.T) {
	items := sampleAgreements()

	byTitle := Apply(items, Filter{Search: "quarterly"})
	assert.Len(t, byTitle, 1)
	assert.Equal(t, "ag-pending", byTitle[0].ID)

	byCreator := Apply(items, Filter{Search: "nakato"})
	assert.Len(t, byCreator, 1)
	assert.Equal(t, "ag-pending", byCreator[0].ID)

	byDept := Apply(items, Filter{Search: "FINANCE"})
	assert.Len(t, byDept, 1)
	assert.Equal(t, "ag-pending", byDept[0].ID)
}

func TestFilterExactCriteria(t *testing.T) {
	items := sampleAgreements()

	assert.Len(t, Apply(items, Filter{Status: string(StatusApproved)}), 1)
	assert.Len(t, Apply(items, Filter{DepartmentID: "dept-fin"}), 2)
	assert.Len(t, Apply(items, Filter{UnitID: "unit-b"}), 1)
	assert.Len(t, Apply(items, Filter{Period: string(PeriodProbation)}), 1)
}

// Reset clears everything but re-anchors department to the viewer's own.
func TestFilterReset(t *testing.T) {
	f := Filter{
		Search:       "plan",
		Status:       string(StatusApproved),
		DepartmentID: "dept-hr",
		UnitID:       "unit-b",
		Period:       string(PeriodAnnual),
		Year:         "2024",
	}

	got := f.Reset("dept-fin")
	assert.Equal(t, Filter{DepartmentID: "dept-fin"}, got)
}

// Year prefers submitted_at and falls back to created_at.
func TestYearDerivation(t *testing.T) {
	items := sampleAgreements()

	assert.Equal(t, "2025", Year(items[0]))
	assert.Equal(t, "2025", Year(items[1])) // submitted 2025 even though created 2024
	assert.Equal(t, "2024", Year(items[2]))
	assert.Equal(t, "", Year(Agreement{}))

	by2025 := Apply(items, Filter{Year: "2025"})
	assert.Len(t, by2025, 2)
}

func TestPaginate(t *testing.T) {
	items := make([]Agreement, 25)
	for i := range items {
		items[i] = Agreement{ID: "ag-" + strconv.Itoa(i)}
	}

	page, total := Paginate(items, 1, 10)
	assert.Len(t, page, 10)
	assert.Equal(t, 3, total)
	assert.Equal(t, "ag-0", page[0].ID)

	page, total = Paginate(items, 3, 10)
	assert.Len(t, page, 5)
	assert.Equal(t, 3, total)
	assert.Equal(t, "ag-20", page[0].ID)

	page, total = Paginate(items, 4, 10)
	assert.Empty(t, page)
	assert.Equal(t, 3, total)

	// Defaults: non-positive page and pageSize normalize to 1 and 10.
	page, total = Paginate(items, 0, 0)
	assert.Len(t, page, 10)
	assert.Equal(t, 3, total)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page, total := Paginate(nil, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, total)
}
