// Package pages assembles the documents served for each routed page.
package pages

import (
	"context"
	"time"

	"concierge/models"
	"concierge/services/catalog"
	"concierge/services/cms"
	"concierge/services/contact"
	"concierge/services/media"
	"concierge/services/reveal"

	"go.uber.org/zap"
)

const (
	// DefaultFeaturedLimit is how many services the home page asks for.
	DefaultFeaturedLimit = 3
	followUpDelay        = 200 * time.Millisecond
)

// Options tune a Builder.
type Options struct {
	FeaturedLimit int
	// ContactSimulated marks the contact form as not delivering anywhere.
	ContactSimulated bool
}

// Builder turns catalog data and static copy into page documents.
type Builder struct {
	gw      cms.Gateway
	images  media.Resolver
	logger  *zap.Logger
	content *Content
	opts    Options
}

func NewBuilder(gw cms.Gateway, images media.Resolver, content *Content, logger *zap.Logger, opts Options) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if images == nil {
		images = media.NewImageResolver()
	}
	if opts.FeaturedLimit <= 0 {
		opts.FeaturedLimit = DefaultFeaturedLimit
	}
	return &Builder{gw: gw, images: images, logger: logger, content: content, opts: opts}
}

func (b *Builder) page(id, path, title string, sections ...models.Section) models.Page {
	footer := b.content.Footer
	return models.Page{Identifier: id, Path: path, Title: title, Sections: sections, Footer: &footer}
}

// Home shows the hero, selling points and a few featured services.
func (b *Builder) Home(ctx context.Context) models.Page {
	c := b.content.Home

	view := catalog.NewFeaturedView(b.gw, b.logger, b.opts.FeaturedLimit)
	view.Mount(ctx)
	defer view.Unmount()
	_ = view.Wait(ctx)
	l := view.Apply(catalog.Criteria{})

	featured := section("featured", c.Featured, reveal.Default())
	featured.Cards = serviceCards(l.Items, b.images)
	featured.Empty = l.EmptyMessage

	return b.page("home", "/", c.Title,
		section("hero", c.Hero, reveal.Default()),
		section("features", c.Why, reveal.Default()),
		featured,
		section("cta", c.CTA, reveal.Default()),
	)
}

// Services is the searchable catalog.
func (b *Builder) Services(ctx context.Context, criteria catalog.Criteria) models.Page {
	c := b.content.Services

	view := catalog.NewListingView(b.gw, b.logger)
	view.Mount(ctx)
	defer view.Unmount()
	_ = view.Wait(ctx)
	l := view.Apply(criteria)

	filters := models.Section{Kind: "filters", Filters: filterBar(l), Reveal: reveal.Default().Model()}
	grid := models.Section{Kind: "grid", Cards: serviceCards(l.Items, b.images), Empty: l.EmptyMessage, Reveal: reveal.Default().Model()}

	return b.page("services", "/services", c.Title,
		section("hero", c.Hero, reveal.Default()),
		filters,
		grid,
	)
}

// ServiceDetail shows one service, or a not-found notice. The returned state
// keeps "does not exist" apart from "could not be read".
func (b *Builder) ServiceDetail(ctx context.Context, id string) (models.Page, catalog.DetailState) {
	c := b.content.Detail
	path := "/services/" + id

	view := catalog.NewDetailView(b.gw, b.logger)
	view.Mount(ctx, id)
	defer view.Unmount()
	st, _ := view.Wait(ctx)

	if st.Status != catalog.DetailFound {
		reason := "not_found"
		if st.Status != catalog.DetailNotFound {
			reason = "unavailable"
		}
		nf := section("not-found", c.NotFound, reveal.Default())
		nf.Detail = &models.ServiceDetail{
			Found:    false,
			Reason:   reason,
			Message:  c.NotFound.Heading,
			BackLink: c.Back,
		}
		nf.Links = []models.Link{c.Back}
		return b.page("service-detail", path, c.NotFound.Heading, nf), st
	}

	s := st.Service
	book := c.Book
	detail := &models.ServiceDetail{
		Found:       true,
		ID:          s.ID,
		Title:       s.ServiceTitle,
		Description: s.Description,
		Category:    s.Category,
		Duration:    s.Duration,
		BookLink:    &book,
		BackLink:    c.Back,
	}
	if img := b.images.Resolve(s.MainImage); img != "" {
		detail.Image = img
		detail.ImageAlt = s.DisplayTitle()
	}
	if s.HasPrice() {
		detail.PriceLabel = PriceLabel(*s.StartingPrice)
	}

	back := models.Section{Kind: "back", Links: []models.Link{c.Back}, Reveal: reveal.Default().Model()}
	body := models.Section{Kind: "detail", Detail: detail, Reveal: reveal.WithDelay(followUpDelay).Model()}

	return b.page("service-detail", path, s.DisplayTitle(),
		back,
		body,
		section("expect", c.Expect, reveal.Default()),
	), st
}

// About is static.
func (b *Builder) About() models.Page {
	c := b.content.About
	return b.page("about", "/about", c.Title,
		section("hero", c.Hero, reveal.Default()),
		section("mission", c.Mission, reveal.Default()),
		section("features", c.Values, reveal.Default()),
		section("steps", c.Approach, reveal.Default()),
		section("cta", c.CTA, reveal.Default()),
	)
}

// Contact shows the channels and the inquiry form.
func (b *Builder) Contact() models.Page {
	c := b.content.Contact

	form := section("form", c.Form, reveal.WithDelay(followUpDelay))
	form.Form = &models.ContactForm{
		Action: "/contact",
		Fields: []models.FormField{
			{Name: "name", Label: "Name", Type: "text", Required: true, Placeholder: "Your name"},
			{Name: "email", Label: "Email", Type: "email", Required: true, Placeholder: "your.email@example.com"},
			{Name: "phone", Label: "Phone", Type: "tel", Placeholder: "Optional"},
			{Name: "service", Label: "Service Interest", Type: "select"},
			{Name: "message", Label: "Message", Type: "textarea", Required: true, Placeholder: "Tell us about your requirements..."},
		},
		ServiceOptions: contact.ServiceOptions,
		Simulated:      b.opts.ContactSimulated,
	}

	return b.page("contact", "/contact", c.Title,
		section("hero", c.Hero, reveal.Default()),
		section("info", c.Info, reveal.Default()),
		section("privacy", c.Privacy, reveal.Default()),
		form,
	)
}
