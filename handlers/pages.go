package handlers

import (
	"net/http"

	"concierge/services/catalog"
	"concierge/services/pages"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the page documents.
type PageHandler struct {
	Pages *pages.Builder
}

func NewPageHandler(b *pages.Builder) *PageHandler {
	return &PageHandler{Pages: b}
}

// Home handles GET /.
func (h *PageHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.Pages.Home(c.Request.Context()))
}

// Services handles GET /services?search=&category=.
func (h *PageHandler) Services(c *gin.Context) {
	var criteria catalog.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Pages.Services(c.Request.Context(), criteria))
}

// ServiceDetail handles GET /services/:id. A missing service is a 404; a
// catalog that could not be read is a 503 with the same notice.
func (h *PageHandler) ServiceDetail(c *gin.Context) {
	id := c.Param("id")
	page, st := h.Pages.ServiceDetail(c.Request.Context(), id)

	status := http.StatusOK
	switch st.Status {
	case catalog.DetailFound:
	case catalog.DetailNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusServiceUnavailable
		utils.RequestLogger(c).Warn("ServiceDetail: service unavailable",
			zap.String("serviceID", id), zap.Stringer("state", st.Status), zap.Error(st.Err))
	}
	c.JSON(status, page)
}

// About handles GET /about.
func (h *PageHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, h.Pages.About())
}

// Contact handles GET /contact.
func (h *PageHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, h.Pages.Contact())
}
