package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints
	HomeHandler          gin.HandlerFunc
	ServicesHandler      gin.HandlerFunc
	ServiceDetailHandler gin.HandlerFunc
	AboutHandler         gin.HandlerFunc
	ContactPageHandler   gin.HandlerFunc

	// Contact form
	SubmitContactHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handlers of each group into a bundle.
func NewHandlerBundle(pages *PageHandler, contact *ContactHandler, health *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		HomeHandler:          pages.Home,
		ServicesHandler:      pages.Services,
		ServiceDetailHandler: pages.ServiceDetail,
		AboutHandler:         pages.About,
		ContactPageHandler:   pages.Contact,
		SubmitContactHandler: contact.Submit,
		HealthHandler:        health.Health,
	}
}
