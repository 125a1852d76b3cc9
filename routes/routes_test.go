package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"concierge/handlers"
	"concierge/models"
	"concierge/services/cms"
	"concierge/services/contact"
	"concierge/services/pages"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func price(v float64) *float64 { return &v }

type downGateway struct{}

func (downGateway) GetAll(context.Context, string, cms.Filter, *cms.ListOptions) ([]cms.Document, error) {
	return nil, errors.New("connection refused")
}

func (downGateway) GetByID(context.Context, string, string) (cms.Document, error) {
	return nil, errors.New("connection refused")
}

func (downGateway) Ping(context.Context) error { return errors.New("connection refused") }

func seededGateway(t *testing.T) *cms.MemoryGateway {
	t.Helper()
	gw := cms.NewMemoryGateway()
	for _, s := range []models.ExclusiveService{
		{ID: "svc-1", ServiceTitle: "Private Massage", Category: "wellness", StartingPrice: price(250)},
		{ID: "svc-2", ServiceTitle: "Yacht Charter", Category: "travel", StartingPrice: price(12500)},
		{ID: "svc-3", ServiceTitle: "Chef at Home", Category: "dining"},
	} {
		_, err := gw.Put(models.ExclusiveServicesCollection, s)
		require.NoError(t, err)
	}
	return gw
}

func newRouter(t *testing.T, gw cms.Gateway) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	content, err := pages.DefaultContent()
	require.NoError(t, err)
	sink := &contact.SimulatedSink{Logger: zap.NewNop()}
	contactSvc := contact.NewService(sink, zap.NewNop())
	builder := pages.NewBuilder(gw, nil, content, zap.NewNop(), pages.Options{ContactSimulated: contactSvc.Simulated()})
	monitor := utils.NewHealthMonitor(map[string]utils.Pinger{"cms": gw}, zap.NewNop())

	hb := handlers.NewHandlerBundle(
		handlers.NewPageHandler(builder),
		handlers.NewContactHandler(contactSvc),
		handlers.NewHealthHandler(monitor),
	)

	r := gin.New()
	r.Use(utils.ErrorHandler())
	RegisterRoutes(r, hb, []string{"*"})
	return r
}

func do(r http.Handler, method, target string, body string, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) models.Page {
	t.Helper()
	var p models.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func section(t *testing.T, p models.Page, kind string) models.Section {
	t.Helper()
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s
		}
	}
	t.Fatalf("no %q section on %s", kind, p.Identifier)
	return models.Section{}
}

func TestStaticPages(t *testing.T) {
	r := newRouter(t, seededGateway(t))

	for path, id := range map[string]string{"/": "home", "/about": "about", "/contact": "contact"} {
		w := do(r, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, w.Code, path)
		p := decodePage(t, w)
		assert.Equal(t, id, p.Identifier)
		assert.NotNil(t, p.Footer)
	}
}

func TestServicesSearch(t *testing.T) {
	r := newRouter(t, seededGateway(t))

	w := do(r, http.MethodGet, "/services?search=MASS", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	grid := section(t, decodePage(t, w), "grid")
	require.Len(t, grid.Cards, 1)
	assert.Equal(t, "Private Massage", grid.Cards[0].Title)

	w = do(r, http.MethodGet, "/services?category=spa", "", "")
	grid = section(t, decodePage(t, w), "grid")
	assert.Empty(t, grid.Cards)
	assert.Equal(t, "No services match your search criteria.", grid.Empty)
}

func TestServiceDetailStatus(t *testing.T) {
	r := newRouter(t, seededGateway(t))

	w := do(r, http.MethodGet, "/services/svc-2", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := section(t, decodePage(t, w), "detail").Detail
	require.NotNil(t, detail)
	assert.True(t, detail.Found)
	assert.Equal(t, "Yacht Charter", detail.Title)

	w = do(r, http.MethodGet, "/services/missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	nf := section(t, decodePage(t, w), "not-found").Detail
	require.NotNil(t, nf)
	assert.Equal(t, "not_found", nf.Reason)

	down := newRouter(t, downGateway{})
	w = do(down, http.MethodGet, "/services/svc-2", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	nf = section(t, decodePage(t, w), "not-found").Detail
	require.NotNil(t, nf)
	assert.Equal(t, "unavailable", nf.Reason)
}

func TestUnknownPathRedirectsHome(t *testing.T) {
	r := newRouter(t, seededGateway(t))

	w := do(r, http.MethodGet, "/no/such/page", "", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestSubmitContact(t *testing.T) {
	r := newRouter(t, seededGateway(t))

	w := do(r, http.MethodPost, "/contact",
		`{"name":"Ada","email":"ada@example.com","service":"booking","message":"Hello"}`, "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	var receipt models.InquiryReceipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	assert.NotEmpty(t, receipt.ID)
	assert.True(t, receipt.Simulated)
	assert.False(t, receipt.Delivered)

	form := url.Values{"name": {"Ada"}, "email": {"not-an-email"}, "message": {""}}
	w = do(r, http.MethodPost, "/contact", form.Encode(), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, w.Code)
	var errBody utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "invalid address", errBody.Fields["email"])
	assert.Equal(t, "required", errBody.Fields["message"])

	w = do(r, http.MethodPost, "/contact",
		`{"name":"Ada","email":"Ada <ada@example.com>","service":"massage","message":"Hi"}`, "application/json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	errBody = utils.ErrorResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, map[string]string{"email": "invalid address", "service": "unknown option"}, errBody.Fields)

	// Whitespace passes binding but not the trimmed check.
	w = do(r, http.MethodPost, "/contact", `{"name":"   ","email":"ada@example.com","message":"Hi"}`, "application/json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	errBody = utils.ErrorResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "required", errBody.Fields["name"])
}

func TestContactRateLimited(t *testing.T) {
	r := newRouter(t, seededGateway(t))

	body := `{"name":"Ada","email":"ada@example.com","message":"Hi"}`
	for i := 0; i < contactRequestsPerMin; i++ {
		require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/contact", body, "application/json").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/contact", body, "application/json").Code)
}

func TestHealth(t *testing.T) {
	w := do(newRouter(t, seededGateway(t)), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(newRouter(t, downGateway{}), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var st utils.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.False(t, st.Checks["cms"])
}
