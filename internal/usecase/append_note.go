package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pixelforge/studio-api/internal/entity"
	"github.com/pixelforge/studio-api/internal/infra/sheets"
)

// noteTimestampLayout prefixes every stored note. Human-readable on purpose:
// the sales team reads the cell straight off the sheet.
const noteTimestampLayout = "2006-01-02 15:04"

type AppendNoteUseCase struct {
	Store LeadStore

	now func() time.Time
}

func NewAppendNoteUseCase(store LeadStore) *AppendNoteUseCase {
	return &AppendNoteUseCase{Store: store, now: time.Now}
}

// Execute appends one timestamped note and returns the full updated list.
// The whole list is re-serialized and rewritten on every append, so two
// concurrent appends to the same lead lose one addition silently; accepted,
// see LeadStore.
func (uc *AppendNoteUseCase) Execute(ctx context.Context, id, note string) ([]string, error) {
	if strings.TrimSpace(note) == "" {
		return nil, ValidationErrors{{Field: "note", Message: "is required"}}
	}

	rows, err := uc.Store.ReadAll(ctx)
	if err != nil {
		return nil, &BackendError{Op: "read", Err: err}
	}

	rowPos, row, found := sheets.FindRowByID(rows, id)
	if !found {
		return nil, &NotFoundError{ID: id}
	}

	notes := entity.DecodeNotes(sheets.CellAt(row, sheets.ColNotes))
	stamped := fmt.Sprintf("[%s] %s", uc.now().Format(noteTimestampLayout), note)
	notes = append(notes, stamped)

	if err := uc.Store.WriteCell(ctx, rowPos, sheets.ColNotes, entity.EncodeNotes(notes)); err != nil {
		return nil, &BackendError{Op: "update", Err: err}
	}

	return notes, nil
}
