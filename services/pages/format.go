package pages

import (
	"concierge/models"
	"concierge/services/catalog"
	"concierge/services/media"
	"concierge/services/reveal"

	"github.com/dustin/go-humanize"
)

// PriceLabel renders a price as dollars with thousands separators.
func PriceLabel(p float64) string {
	return "$" + humanize.Commaf(p)
}

func serviceCard(s models.ExclusiveService, i int, images media.Resolver) models.ServiceCard {
	card := models.ServiceCard{
		ID:          s.ID,
		Title:       s.ServiceTitle,
		Description: s.Description,
		Category:    s.Category,
		Duration:    s.Duration,
		Href:        "/services/" + s.ID,
		Reveal:      reveal.Staggered(i).Model(),
	}
	if img := images.Resolve(s.MainImage); img != "" {
		card.Image = img
		card.ImageAlt = s.DisplayTitle()
	}
	if s.HasPrice() {
		card.PriceLabel = "From " + PriceLabel(*s.StartingPrice)
	}
	return card
}

func serviceCards(items []models.ExclusiveService, images media.Resolver) []models.ServiceCard {
	cards := make([]models.ServiceCard, 0, len(items))
	for i, s := range items {
		cards = append(cards, serviceCard(s, i, images))
	}
	return cards
}

func filterBar(l catalog.Listing) *models.FilterBar {
	bar := &models.FilterBar{Search: l.Criteria.Search, Selected: l.Criteria.Category}
	for _, c := range l.Categories {
		bar.Categories = append(bar.Categories, models.CategoryOption{
			Value:    c,
			Label:    catalog.CategoryLabel(c),
			Selected: c == l.Criteria.Category,
		})
	}
	return bar
}

func section(kind string, b Block, spec reveal.Spec) models.Section {
	return models.Section{
		Kind:    kind,
		Heading: b.Heading,
		Body:    b.Body,
		Items:   b.Items,
		Links:   b.Links,
		Reveal:  spec.Model(),
	}
}
