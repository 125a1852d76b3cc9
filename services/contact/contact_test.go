package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"concierge/models"
	"concierge/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInquiry() models.ContactInquiry {
	return models.ContactInquiry{
		Name:    "  Ada Lovelace ",
		Email:   "ada@example.com",
		Service: "booking",
		Message: "I'd like to book a session next week.",
	}
}

func TestValidateAcceptsCompleteInquiry(t *testing.T) {
	assert.NoError(t, Validate(Normalize(validInquiry())))
}

func TestValidateReportsEveryField(t *testing.T) {
	err := Validate(Normalize(models.ContactInquiry{Email: "not-an-email", Service: "massage"}))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "required", ve.Fields["name"])
	assert.Equal(t, "invalid address", ve.Fields["email"])
	assert.Equal(t, "required", ve.Fields["message"])
	assert.Equal(t, "unknown option", ve.Fields["service"])
	assert.Contains(t, err.Error(), "email: invalid address")
}

func TestValidateRejectsDisplayNameAddresses(t *testing.T) {
	in := Normalize(validInquiry())
	in.Email = "Ada <ada@example.com>"
	assert.Error(t, Validate(in))
}

func TestValidateLengthLimits(t *testing.T) {
	in := Normalize(validInquiry())
	in.Name = strings.Repeat("a", 201)
	in.Message = strings.Repeat("m", 5001)

	var ve *ValidationError
	require.ErrorAs(t, Validate(in), &ve)
	assert.Equal(t, map[string]string{"name": "too long", "message": "too long"}, ve.Fields)
}

func TestValidateAllowsEmptyServiceOption(t *testing.T) {
	in := Normalize(validInquiry())
	in.Service = ""
	assert.NoError(t, Validate(in))
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("EOF")))
}

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{ID: "t1", Queue: "default"}, nil
}

func TestSubmitThroughQueue(t *testing.T) {
	q := &recordingEnqueuer{}
	svc := NewService(&QueueSink{Client: q}, nil)
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

	receipt, err := svc.Submit(context.Background(), validInquiry())
	require.NoError(t, err)
	assert.True(t, receipt.Delivered)
	assert.False(t, receipt.Simulated)
	assert.False(t, svc.Simulated())
	require.Len(t, q.tasks, 1)

	sent, err := tasks.ParseInquiryTask(q.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, receipt.ID, sent.ID)
	assert.Equal(t, "Ada Lovelace", sent.Name)
	assert.Equal(t, 2026, sent.SubmittedAt.Year())
}

func TestSubmitQueueFailure(t *testing.T) {
	svc := NewService(&QueueSink{Client: &recordingEnqueuer{err: errors.New("redis down")}}, nil)
	_, err := svc.Submit(context.Background(), validInquiry())
	assert.Error(t, err)
}

func TestSubmitInvalidNeverReachesSink(t *testing.T) {
	q := &recordingEnqueuer{}
	svc := NewService(&QueueSink{Client: q}, nil)
	_, err := svc.Submit(context.Background(), models.ContactInquiry{})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Empty(t, q.tasks)
}

func TestSimulatedSinkIsFlagged(t *testing.T) {
	svc := NewService(&SimulatedSink{}, nil)
	receipt, err := svc.Submit(context.Background(), validInquiry())
	require.NoError(t, err)
	assert.True(t, svc.Simulated())
	assert.True(t, receipt.Simulated)
	assert.False(t, receipt.Delivered)
	assert.NotEmpty(t, receipt.ID)
}

func TestSimulatedSinkHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&SimulatedSink{Delay: time.Hour}).Deliver(ctx, models.ContactInquiry{ID: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
