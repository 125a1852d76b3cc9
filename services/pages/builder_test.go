package pages

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"concierge/models"
	"concierge/services/catalog"
	"concierge/services/cms"
	"concierge/services/reveal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func newBuilder(t *testing.T, gw cms.Gateway, opts Options) *Builder {
	t.Helper()
	content, err := DefaultContent()
	require.NoError(t, err)
	return NewBuilder(gw, nil, content, nil, opts)
}

func seeded(t *testing.T, items ...models.ExclusiveService) *cms.MemoryGateway {
	t.Helper()
	gw := cms.NewMemoryGateway()
	for _, item := range items {
		_, err := gw.Put(models.ExclusiveServicesCollection, item)
		require.NoError(t, err)
	}
	return gw
}

func findSection(t *testing.T, p models.Page, kind string) models.Section {
	t.Helper()
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s
		}
	}
	t.Fatalf("page %s has no %q section", p.Identifier, kind)
	return models.Section{}
}

type failingGateway struct{ err error }

func (f failingGateway) GetAll(context.Context, string, cms.Filter, *cms.ListOptions) ([]cms.Document, error) {
	return nil, f.err
}

func (f failingGateway) GetByID(context.Context, string, string) (cms.Document, error) {
	return nil, f.err
}

func (f failingGateway) Ping(context.Context) error { return f.err }

func TestDefaultContentParses(t *testing.T) {
	c, err := DefaultContent()
	require.NoError(t, err)
	assert.Equal(t, "Why Choose Us", c.Home.Why.Heading)
	assert.Len(t, c.Home.Why.Items, 3)
	assert.Len(t, c.About.Values.Items, 4)
	assert.Equal(t, "/contact", c.Detail.Book.To)
	assert.Len(t, c.Footer.Links, 4)
}

func TestHomeRendersAtMostThreeFeatured(t *testing.T) {
	var items []models.ExclusiveService
	for i := 1; i <= 10; i++ {
		items = append(items, models.ExclusiveService{ID: fmt.Sprint(i), ServiceTitle: fmt.Sprintf("Service %d", i)})
	}
	p := newBuilder(t, seeded(t, items...), Options{}).Home(context.Background())

	assert.Equal(t, "home", p.Identifier)
	featured := findSection(t, p, "featured")
	assert.Len(t, featured.Cards, 3)
	assert.Empty(t, featured.Empty)
	require.NotNil(t, p.Footer)
}

func TestHomeWithFailingBackendShowsNoServices(t *testing.T) {
	p := newBuilder(t, failingGateway{err: errors.New("down")}, Options{}).Home(context.Background())
	featured := findSection(t, p, "featured")
	assert.Empty(t, featured.Cards)
	assert.Equal(t, catalog.NoServicesMessage, featured.Empty)
}

func TestServicesPageFiltersAndStaggers(t *testing.T) {
	gw := seeded(t,
		models.ExclusiveService{ID: "1", ServiceTitle: "Massage", Category: "Wellness", StartingPrice: price(1250)},
		models.ExclusiveService{ID: "2", ServiceTitle: "Styling", Category: "Beauty", Duration: "60 min"},
		models.ExclusiveService{ID: "3", ServiceTitle: "Hot Stone Massage", Category: "Wellness", MainImage: "https://img.example.com/stone.jpg"},
	)
	b := newBuilder(t, gw, Options{})

	p := b.Services(context.Background(), catalog.Criteria{Search: "massage"})
	grid := findSection(t, p, "grid")
	require.Len(t, grid.Cards, 2)
	assert.Equal(t, "From $1,250", grid.Cards[0].PriceLabel)
	assert.Empty(t, grid.Cards[0].Image)
	assert.Equal(t, "/services/1", grid.Cards[0].Href)
	assert.Equal(t, int64(0), grid.Cards[0].Reveal.DelayMS)
	assert.Equal(t, int64(50), grid.Cards[1].Reveal.DelayMS)
	assert.Equal(t, "https://img.example.com/stone.jpg", grid.Cards[1].Image)
	assert.Equal(t, "Hot Stone Massage", grid.Cards[1].ImageAlt)

	filters := findSection(t, p, "filters")
	require.Len(t, filters.Filters.Categories, 3)
	assert.Equal(t, "All", filters.Filters.Categories[0].Label)
	assert.True(t, filters.Filters.Categories[0].Selected)
	assert.Equal(t, "Wellness", filters.Filters.Categories[1].Value)
}

func TestServicesPageEmptyMessages(t *testing.T) {
	b := newBuilder(t, seeded(t, models.ExclusiveService{ID: "1", ServiceTitle: "Massage"}), Options{})
	grid := findSection(t, b.Services(context.Background(), catalog.Criteria{Search: "yoga"}), "grid")
	assert.Equal(t, catalog.NoMatchMessage, grid.Empty)

	empty := newBuilder(t, seeded(t), Options{})
	grid = findSection(t, empty.Services(context.Background(), catalog.Criteria{}), "grid")
	assert.Equal(t, catalog.NoServicesMessage, grid.Empty)
}

func TestServiceDetailFound(t *testing.T) {
	gw := seeded(t, models.ExclusiveService{ID: "1", ServiceTitle: "Massage", StartingPrice: price(99.5), Category: "Wellness"})
	p, st := newBuilder(t, gw, Options{}).ServiceDetail(context.Background(), "1")

	assert.Equal(t, catalog.DetailFound, st.Status)
	assert.Equal(t, "Massage", p.Title)
	body := findSection(t, p, "detail")
	require.NotNil(t, body.Detail)
	assert.True(t, body.Detail.Found)
	assert.Equal(t, "$99.5", body.Detail.PriceLabel)
	assert.Empty(t, body.Detail.Duration)
	assert.Equal(t, "/contact", body.Detail.BookLink.To)
	assert.Equal(t, int64(200), body.Reveal.DelayMS)
	assert.Equal(t, reveal.WithDelay(200*time.Millisecond), reveal.FromModel(body.Reveal))
}

func TestServiceDetailNotFoundAndUnavailable(t *testing.T) {
	p, st := newBuilder(t, seeded(t), Options{}).ServiceDetail(context.Background(), "missing")
	assert.Equal(t, catalog.DetailNotFound, st.Status)
	nf := findSection(t, p, "not-found")
	assert.Equal(t, "not_found", nf.Detail.Reason)
	assert.Equal(t, "Service Not Found", nf.Detail.Message)

	p, st = newBuilder(t, failingGateway{err: errors.New("timeout")}, Options{}).ServiceDetail(context.Background(), "1")
	assert.Equal(t, catalog.DetailFailed, st.Status)
	nf = findSection(t, p, "not-found")
	assert.Equal(t, "unavailable", nf.Detail.Reason)
	assert.Equal(t, "Service Not Found", nf.Detail.Message)
}

func TestStaticPages(t *testing.T) {
	b := newBuilder(t, seeded(t), Options{ContactSimulated: true})

	about := b.About()
	assert.Equal(t, "/about", about.Path)
	assert.Len(t, findSection(t, about, "features").Items, 4)

	c := b.Contact()
	form := findSection(t, c, "form")
	require.NotNil(t, form.Form)
	assert.True(t, form.Form.Simulated)
	assert.Len(t, form.Form.Fields, 5)
	assert.Equal(t, "general", form.Form.ServiceOptions[1].Value)
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, "$0", PriceLabel(0))
	assert.Equal(t, "$12,345.5", PriceLabel(12345.5))
}
