package contact

import (
	"context"
	"fmt"
	"time"

	"concierge/models"
	"concierge/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const thankYouMessage = "Thank you for your message! We'll get back to you soon."

// SimulatedSink waits and reports success without sending anything. It keeps
// the contact page usable while no delivery backend is wired, and says so in
// the log and in every receipt.
type SimulatedSink struct {
	Delay  time.Duration
	Logger *zap.Logger
}

func (s *SimulatedSink) Simulated() bool { return true }

func (s *SimulatedSink) Deliver(ctx context.Context, in models.ContactInquiry) (models.InquiryReceipt, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return models.InquiryReceipt{}, ctx.Err()
		}
	}
	if s.Logger != nil {
		s.Logger.Warn("contact form delivery is simulated; inquiry was not sent anywhere",
			zap.String("inquiryID", in.ID))
	}
	return models.InquiryReceipt{ID: in.ID, Delivered: false, Simulated: true, Message: thankYouMessage}, nil
}

// Enqueuer is the part of asynq.Client used by QueueSink.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueSink hands inquiries to the delivery worker through asynq.
type QueueSink struct {
	Client Enqueuer
	Logger *zap.Logger
}

func (s *QueueSink) Simulated() bool { return false }

func (s *QueueSink) Deliver(ctx context.Context, in models.ContactInquiry) (models.InquiryReceipt, error) {
	task, opts, err := tasks.NewInquiryTask(in)
	if err != nil {
		return models.InquiryReceipt{}, fmt.Errorf("QueueSink: build task: %w", err)
	}
	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return models.InquiryReceipt{}, fmt.Errorf("QueueSink: enqueue: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("contact inquiry queued", zap.String("inquiryID", in.ID), zap.String("queue", info.Queue))
	}
	return models.InquiryReceipt{ID: in.ID, Delivered: true, Message: thankYouMessage}, nil
}
