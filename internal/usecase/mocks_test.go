package usecase

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/pixelforge/studio-api/internal/infra/queue"
)

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) ReadAll(ctx context.Context) ([][]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

func (m *MockLeadStore) AppendRow(ctx context.Context, values []string) error {
	args := m.Called(ctx, values)
	return args.Error(0)
}

func (m *MockLeadStore) WriteCell(ctx context.Context, rowPos, col int, value string) error {
	args := m.Called(ctx, rowPos, col, value)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// fakeSheet is an in-memory stand-in for the spreadsheet, used by the
// end-to-end flow test. Same weak semantics: whole-row append, single-cell
// overwrite, no locking.
type fakeSheet struct {
	rows [][]string
}

func newFakeSheet() *fakeSheet {
	return &fakeSheet{rows: [][]string{{
		"id", "submittedAt", "fullName", "email", "phone", "businessName",
		"serviceInterest", "budget", "projectDescription", "referralSource",
		"status", "notes",
	}}}
}

func (f *fakeSheet) ReadAll(ctx context.Context) ([][]string, error) {
	return f.rows, nil
}

func (f *fakeSheet) AppendRow(ctx context.Context, values []string) error {
	f.rows = append(f.rows, values)
	return nil
}

func (f *fakeSheet) WriteCell(ctx context.Context, rowPos, col int, value string) error {
	if rowPos < 1 || rowPos > len(f.rows) {
		return fmt.Errorf("row %d out of range", rowPos)
	}
	row := f.rows[rowPos-1]
	for len(row) <= col {
		row = append(row, "")
	}
	row[col] = value
	f.rows[rowPos-1] = row
	return nil
}
