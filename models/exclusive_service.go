package models

import (
	"errors"
	"time"
)

// ExclusiveServicesCollection is the CMS collection that holds service listings.
const ExclusiveServicesCollection = "exclusiveservices"

var (
	ErrMissingID     = errors.New("service listing has no id")
	ErrNegativePrice = errors.New("service listing has a negative starting price")
)

// ExclusiveService is a single catalog entry as stored by the CMS.
// Everything except ID is optional.
type ExclusiveService struct {
	ID            string     `json:"_id" bson:"_id"`
	CreatedAt     *time.Time `json:"_createdDate,omitempty" bson:"_createdDate,omitempty"`
	UpdatedAt     *time.Time `json:"_updatedDate,omitempty" bson:"_updatedDate,omitempty"`
	ServiceTitle  string     `json:"serviceTitle,omitempty" bson:"serviceTitle,omitempty"`
	Description   string     `json:"description,omitempty" bson:"description,omitempty"`
	MainImage     string     `json:"mainImage,omitempty" bson:"mainImage,omitempty"`
	Category      string     `json:"category,omitempty" bson:"category,omitempty"`
	StartingPrice *float64   `json:"startingPrice,omitempty" bson:"startingPrice,omitempty"`
	Duration      string     `json:"duration,omitempty" bson:"duration,omitempty"`
}

// Validate checks the invariants every fetched listing must satisfy.
func (s ExclusiveService) Validate() error {
	if s.ID == "" {
		return ErrMissingID
	}
	if s.StartingPrice != nil && *s.StartingPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Key returns the listing id.
func (s ExclusiveService) Key() string { return s.ID }

// HasPrice reports whether a starting price is present.
func (s ExclusiveService) HasPrice() bool { return s.StartingPrice != nil }

// DisplayTitle falls back to a generic label, matching the alt text used for images.
func (s ExclusiveService) DisplayTitle() string {
	if s.ServiceTitle == "" {
		return "Service"
	}
	return s.ServiceTitle
}
