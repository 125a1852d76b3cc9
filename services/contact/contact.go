package contact

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"concierge/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceOptions are the accepted values of the "service" field, in form order.
var ServiceOptions = []models.FormOption{
	{Value: "", Label: "Select a service"},
	{Value: "general", Label: "General Inquiry"},
	{Value: "booking", Label: "Booking Request"},
	{Value: "custom", Label: "Custom Experience"},
}

// ValidationError lists per-field problems with a submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid inquiry: " + strings.Join(parts, "; ")
}

// Normalize trims every field.
func Normalize(in models.ContactInquiry) models.ContactInquiry {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Service = strings.TrimSpace(in.Service)
	in.Message = strings.TrimSpace(in.Message)
	return in
}

// validate reads the same "binding" tags gin checks on request bodies.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

var fieldMessages = map[string]string{
	"required": "required",
	"email":    "invalid address",
	"max":      "too long",
	"oneof":    "unknown option",
}

// FieldErrors turns validator output into per-field messages keyed by the
// lower-cased field name. It returns nil for any other error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "invalid"
		}
		fields[strings.ToLower(fe.Field())] = msg
	}
	return fields
}

// Validate checks a normalized inquiry against its binding tags.
func Validate(in models.ContactInquiry) error {
	if err := validate.Struct(in); err != nil {
		if fields := FieldErrors(err); fields != nil {
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// Sink delivers accepted inquiries somewhere.
type Sink interface {
	Deliver(ctx context.Context, inquiry models.ContactInquiry) (models.InquiryReceipt, error)
	// Simulated reports that Deliver does not actually send anything.
	Simulated() bool
}

// Service validates submissions and hands them to a Sink.
type Service struct {
	sink   Sink
	logger *zap.Logger
	now    func() time.Time
}

func NewService(sink Sink, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sink: sink, logger: logger, now: time.Now}
}

// Simulated reports whether submissions go nowhere.
func (s *Service) Simulated() bool {
	return s.sink.Simulated()
}

// Submit validates, stamps and delivers an inquiry.
func (s *Service) Submit(ctx context.Context, in models.ContactInquiry) (models.InquiryReceipt, error) {
	in = Normalize(in)
	if err := Validate(in); err != nil {
		return models.InquiryReceipt{}, err
	}
	in.ID = uuid.New().String()
	in.SubmittedAt = s.now().UTC()

	receipt, err := s.sink.Deliver(ctx, in)
	if err != nil {
		s.logger.Error("contact.Submit: delivery failed", zap.String("inquiryID", in.ID), zap.Error(err))
		return models.InquiryReceipt{}, fmt.Errorf("contact: deliver inquiry: %w", err)
	}
	return receipt, nil
}
