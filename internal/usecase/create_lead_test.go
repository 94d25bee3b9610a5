package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/studio-api/internal/entity"
	"github.com/pixelforge/studio-api/internal/infra/queue"
	"github.com/pixelforge/studio-api/internal/infra/sheets"
)

var leadIDPattern = regexp.MustCompile(`^LEAD-\d{13}-\d{4}$`)

func TestCreateLeadSuccess(t *testing.T) {
	store := new(MockLeadStore)
	var appended []string
	store.On("AppendRow", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { appended = args.Get(1).([]string) }).
		Return(nil)

	uc := NewCreateLeadUseCase(store, nil)
	lead, err := uc.Execute(context.Background(), CreateLeadInput{
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		ServiceInterest: "web-design",
		Budget:          "1k-5k",
		ReferralSource:  "google",
	})
	require.NoError(t, err)

	assert.Regexp(t, leadIDPattern, lead.ID)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, "Web Design & Development", lead.ServiceInterest)
	assert.Equal(t, "$1,000 - $5,000", lead.Budget)
	assert.Equal(t, "Google Search", lead.ReferralSource)

	// Default submittedAt is assigned and parseable.
	_, perr := time.Parse(time.RFC3339, lead.SubmittedAt)
	assert.NoError(t, perr)

	require.Len(t, appended, 12)
	assert.Equal(t, lead.ID, appended[sheets.ColID])
	assert.Equal(t, entity.StatusNew, appended[sheets.ColStatus])
	assert.Equal(t, "[]", appended[sheets.ColNotes])
}

func TestCreateLeadUnknownCodesPassThrough(t *testing.T) {
	store := new(MockLeadStore)
	store.On("AppendRow", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(store, nil)
	lead, err := uc.Execute(context.Background(), CreateLeadInput{
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		ServiceInterest: "consulting-retainer",
		Budget:          "whatever-it-takes",
	})
	require.NoError(t, err)
	assert.Equal(t, "consulting-retainer", lead.ServiceInterest)
	assert.Equal(t, "whatever-it-takes", lead.Budget)
}

func TestCreateLeadKeepsProvidedSubmittedAt(t *testing.T) {
	store := new(MockLeadStore)
	store.On("AppendRow", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(store, nil)
	lead, err := uc.Execute(context.Background(), CreateLeadInput{
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		ServiceInterest: "seo",
		SubmittedAt:     "2026-08-30T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30T12:00:00Z", lead.SubmittedAt)
}

func TestCreateLeadAccumulatesValidationErrors(t *testing.T) {
	store := new(MockLeadStore)
	uc := NewCreateLeadUseCase(store, nil)

	_, err := uc.Execute(context.Background(), CreateLeadInput{})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3) // fullName, email, serviceInterest all reported together

	store.AssertNotCalled(t, "AppendRow", mock.Anything, mock.Anything)
}

func TestCreateLeadRejectsBadEmail(t *testing.T) {
	store := new(MockLeadStore)
	uc := NewCreateLeadUseCase(store, nil)

	_, err := uc.Execute(context.Background(), CreateLeadInput{
		FullName:        "Jane Doe",
		Email:           "not-an-address",
		ServiceInterest: "seo",
	})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "email", verrs[0].Field)
}

func TestCreateLeadBackendFailure(t *testing.T) {
	store := new(MockLeadStore)
	store.On("AppendRow", mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))

	uc := NewCreateLeadUseCase(store, nil)
	_, err := uc.Execute(context.Background(), CreateLeadInput{
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		ServiceInterest: "seo",
	})
	assert.True(t, IsBackendError(err))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestCreateLeadPublishesEvent(t *testing.T) {
	store := new(MockLeadStore)
	store.On("AppendRow", mock.Anything, mock.Anything).Return(nil)

	events := new(MockPublisher)
	var published queue.LeadCapturedPayload
	events.On("PublishLeadCaptured", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(1).(queue.LeadCapturedPayload) }).
		Return(nil)

	uc := NewCreateLeadUseCase(store, events)
	lead, err := uc.Execute(context.Background(), CreateLeadInput{
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		ServiceInterest: "web-design",
	})
	require.NoError(t, err)

	events.AssertNumberOfCalls(t, "PublishLeadCaptured", 1)
	assert.Equal(t, lead.ID, published.LeadID)
	assert.NotEmpty(t, published.EventID)
}

func TestCreateLeadPublishFailureStillSucceeds(t *testing.T) {
	store := new(MockLeadStore)
	store.On("AppendRow", mock.Anything, mock.Anything).Return(nil)

	events := new(MockPublisher)
	events.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewCreateLeadUseCase(store, events)
	lead, err := uc.Execute(context.Background(), CreateLeadInput{
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		ServiceInterest: "web-design",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
}
