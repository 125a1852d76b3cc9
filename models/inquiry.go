package models

import "time"

// ContactInquiry is a message submitted through the contact page.
type ContactInquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" binding:"required,max=200"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       string    `json:"phone,omitempty" binding:"omitempty,max=50"`
	Service     string    `json:"service,omitempty" binding:"omitempty,oneof=general booking custom"`
	Message     string    `json:"message" binding:"required,max=5000"`
	SubmittedAt time.Time `json:"submittedAt"`
	RemoteIP    string    `json:"remoteIp,omitempty"`
}

// InquiryReceipt is returned to the submitter.
type InquiryReceipt struct {
	ID        string `json:"id"`
	Delivered bool   `json:"delivered"`
	Simulated bool   `json:"simulated,omitempty"`
	Message   string `json:"message"`
}
