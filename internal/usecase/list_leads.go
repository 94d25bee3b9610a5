package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/pixelforge/studio-api/internal/entity"
	"github.com/pixelforge/studio-api/internal/infra/sheets"
)

type ListLeadsOutput struct {
	Leads    []*entity.Lead
	Total    int // valid rows before filtering
	Filtered int // rows returned
}

type ListLeadsUseCase struct {
	Store LeadStore
}

func NewListLeadsUseCase(store LeadStore) *ListLeadsUseCase {
	return &ListLeadsUseCase{Store: store}
}

// Execute maps every valid row, sorts newest-first and then applies the
// status filter. Filtering after sorting keeps Total meaningful: it always
// counts the whole store. No pagination; the full set is materialized.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, statusFilter string) (*ListLeadsOutput, error) {
	rows, err := uc.Store.ReadAll(ctx)
	if err != nil {
		return nil, &BackendError{Op: "read", Err: err}
	}

	leads := make([]*entity.Lead, 0, len(rows))
	for i := 1; i < len(rows); i++ {
		if lead := sheets.LeadFromRow(rows[i]); lead != nil {
			leads = append(leads, lead)
		}
	}

	// Stable: rows with equal (or equally unparseable) timestamps keep their
	// backing-store order.
	sort.SliceStable(leads, func(i, j int) bool {
		return parseSubmittedAt(leads[i].SubmittedAt).After(parseSubmittedAt(leads[j].SubmittedAt))
	})

	filtered := leads
	if statusFilter != "" {
		filtered = make([]*entity.Lead, 0, len(leads))
		for _, lead := range leads {
			if lead.Status == statusFilter {
				filtered = append(filtered, lead)
			}
		}
	}

	return &ListLeadsOutput{
		Leads:    filtered,
		Total:    len(leads),
		Filtered: len(filtered),
	}, nil
}

// parseSubmittedAt tries the layouts that exist in the sheet. Anything
// unparseable sorts as the unix epoch, pushing it to the end of the
// descending order.
func parseSubmittedAt(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Unix(0, 0)
}
