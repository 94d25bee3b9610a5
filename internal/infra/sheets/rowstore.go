package sheets

import (
	"context"
	"fmt"

	"github.com/pixelforge/studio-api/internal/entity"
)

// Column layout is a fixed positional contract; the sheet itself enforces
// nothing. Reordering columns in the spreadsheet silently corrupts every
// field mapping, so don't.
const (
	ColID = iota
	ColSubmittedAt
	ColFullName
	ColEmail
	ColPhone
	ColBusinessName
	ColServiceInterest
	ColBudget
	ColProjectDescription
	ColReferralSource
	ColStatus
	ColNotes

	columnCount
)

// lastColumn is the A1 letter of ColNotes.
const lastColumn = "L"

// RowStore treats one sheet as a single-table record store for leads. Every
// mutating operation is a read-then-locate-then-write cycle with no
// concurrency token: two concurrent writes to the same lead race and the
// later one wins outright. That weakness is inherent to the backing store
// and deliberately not papered over here.
type RowStore struct {
	client *Client
	sheet  string
}

func NewRowStore(client *Client, sheet string) *RowStore {
	return &RowStore{client: client, sheet: sheet}
}

// ReadAll fetches the full rectangular range, header row included.
func (s *RowStore) ReadAll(ctx context.Context) ([][]string, error) {
	return s.client.GetValues(ctx, fmt.Sprintf("%s!A:%s", s.sheet, lastColumn))
}

// AppendRow appends one row after the last data row.
func (s *RowStore) AppendRow(ctx context.Context, values []string) error {
	rng := fmt.Sprintf("%s!A:%s", s.sheet, lastColumn)
	return s.client.AppendValues(ctx, rng, [][]string{values})
}

// WriteCell overwrites a single cell. rowPos is the 1-based sheet row as
// returned by FindRowByID.
func (s *RowStore) WriteCell(ctx context.Context, rowPos, col int, value string) error {
	rng := fmt.Sprintf("%s!%s%d", s.sheet, columnLetter(col), rowPos)
	return s.client.UpdateValues(ctx, rng, [][]string{{value}})
}

// FindRowByID scans for the row whose id column matches, skipping the header.
// Returns the 1-based sheet row position. Ids are unique by construction, so
// the first match is the only match. The scan is O(n) per operation; fine at
// lead volume, not at arbitrary scale.
func FindRowByID(rows [][]string, id string) (int, []string, bool) {
	for i := 1; i < len(rows); i++ {
		if CellAt(rows[i], ColID) == id {
			return i + 1, rows[i], true
		}
	}
	return 0, nil, false
}

// CellAt reads a column from a possibly ragged row. The values API omits
// trailing empty cells, so out-of-range reads are just empty.
func CellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// LeadFromRow maps a raw row to a Lead. Returns nil for rows that fail the
// non-empty id/email invariant. An empty status cell reads as StatusNew.
func LeadFromRow(row []string) *entity.Lead {
	lead := &entity.Lead{
		ID:                 CellAt(row, ColID),
		SubmittedAt:        CellAt(row, ColSubmittedAt),
		FullName:           CellAt(row, ColFullName),
		Email:              CellAt(row, ColEmail),
		Phone:              CellAt(row, ColPhone),
		BusinessName:       CellAt(row, ColBusinessName),
		ServiceInterest:    CellAt(row, ColServiceInterest),
		Budget:             CellAt(row, ColBudget),
		ProjectDescription: CellAt(row, ColProjectDescription),
		ReferralSource:     CellAt(row, ColReferralSource),
		Status:             CellAt(row, ColStatus),
		Notes:              entity.DecodeNotes(CellAt(row, ColNotes)),
	}
	if !lead.Valid() {
		return nil
	}
	if lead.Status == "" {
		lead.Status = entity.StatusNew
	}
	return lead
}

// RowFromLead maps a Lead to the fixed-width row written at creation.
func RowFromLead(lead *entity.Lead) []string {
	row := make([]string, columnCount)
	row[ColID] = lead.ID
	row[ColSubmittedAt] = lead.SubmittedAt
	row[ColFullName] = lead.FullName
	row[ColEmail] = lead.Email
	row[ColPhone] = lead.Phone
	row[ColBusinessName] = lead.BusinessName
	row[ColServiceInterest] = lead.ServiceInterest
	row[ColBudget] = lead.Budget
	row[ColProjectDescription] = lead.ProjectDescription
	row[ColReferralSource] = lead.ReferralSource
	row[ColStatus] = lead.Status
	row[ColNotes] = entity.EncodeNotes(lead.Notes)
	return row
}

func columnLetter(col int) string {
	return string(rune('A' + col))
}
