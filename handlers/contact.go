package handlers

import (
	"errors"
	"net/http"

	"concierge/middleware"
	"concierge/models"
	"concierge/services/contact"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	Contact *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{Contact: svc}
}

const fieldErrorMessage = "please correct the highlighted fields"

type contactRequest struct {
	Name    string `json:"name" form:"name" binding:"required,max=200"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone" binding:"omitempty,max=50"`
	Service string `json:"service" form:"service" binding:"omitempty,oneof=general booking custom"`
	Message string `json:"message" form:"message" binding:"required,max=5000"`
}

// Submit handles POST /contact with a JSON or form-encoded body.
func (h *ContactHandler) Submit(c *gin.Context) {
	var body contactRequest
	if err := c.ShouldBind(&body); err != nil {
		if fields := contact.FieldErrors(err); fields != nil {
			utils.JSONFieldError(c, fieldErrorMessage, fields)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.Contact.Submit(c.Request.Context(), models.ContactInquiry{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Service:  body.Service,
		Message:  body.Message,
		RemoteIP: middleware.ClientIP(c),
	})
	if err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			utils.JSONFieldError(c, fieldErrorMessage, verr.Fields)
			return
		}
		utils.RequestLogger(c).Error("Submit: contact delivery failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to send message", "Please try again later.")
		return
	}

	c.JSON(http.StatusOK, receipt)
}
