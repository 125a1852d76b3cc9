package tasks

import (
	"encoding/json"

	"concierge/models"

	"github.com/hibiken/asynq"
)

const TypeDeliverInquiry = "inquiry:deliver"

// NewInquiryTask wraps a contact inquiry for the delivery worker.
func NewInquiryTask(inquiry models.ContactInquiry) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(inquiry)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDeliverInquiry, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.TaskID(inquiry.ID)}

	return task, opts, nil
}

// ParseInquiryTask decodes the payload written by NewInquiryTask.
func ParseInquiryTask(task *asynq.Task) (models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	err := json.Unmarshal(task.Payload(), &inquiry)
	return inquiry, err
}
