package models

// Page is the document returned for every routed page. Clients draw it; the
// server never renders markup.
type Page struct {
	Identifier string    `json:"pageIdentifier"`
	Path       string    `json:"path"`
	Title      string    `json:"title"`
	Sections   []Section `json:"sections"`
	Footer     *Footer   `json:"footer,omitempty"`
}

// Section is one visual block of a page.
type Section struct {
	Kind    string         `json:"kind"`
	Heading string         `json:"heading,omitempty"`
	Body    []string       `json:"body,omitempty"`
	Items   []Feature      `json:"items,omitempty"`
	Cards   []ServiceCard  `json:"cards,omitempty"`
	Links   []Link         `json:"links,omitempty"`
	Filters *FilterBar     `json:"filters,omitempty"`
	Detail  *ServiceDetail `json:"detail,omitempty"`
	Form    *ContactForm   `json:"form,omitempty"`
	Empty   string         `json:"emptyMessage,omitempty"`
	Reveal  RevealSpec     `json:"reveal"`
}

// Feature is a titled paragraph such as a core value or an approach step.
type Feature struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Link points at another routed page.
type Link struct {
	Label string `json:"label"`
	To    string `json:"to"`
}

// ServiceCard is a listing entry in a grid. Absent optional fields are omitted.
type ServiceCard struct {
	ID          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	ImageAlt    string     `json:"imageAlt,omitempty"`
	Category    string     `json:"category,omitempty"`
	PriceLabel  string     `json:"priceLabel,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Href        string     `json:"href"`
	Reveal      RevealSpec `json:"reveal"`
}

// ServiceDetail is the body of the detail page.
type ServiceDetail struct {
	Found       bool   `json:"found"`
	Reason      string `json:"reason,omitempty"`
	Message     string `json:"message,omitempty"`
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ImageAlt    string `json:"imageAlt,omitempty"`
	Category    string `json:"category,omitempty"`
	PriceLabel  string `json:"priceLabel,omitempty"`
	Duration    string `json:"duration,omitempty"`
	BookLink    *Link  `json:"bookLink,omitempty"`
	BackLink    Link   `json:"backLink"`
}

// FilterBar describes the search box and category chips of the listing page.
type FilterBar struct {
	Search     string           `json:"search"`
	Selected   string           `json:"selectedCategory"`
	Categories []CategoryOption `json:"categories"`
}

// CategoryOption is one category chip.
type CategoryOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// ContactForm describes the inquiry form fields.
type ContactForm struct {
	Action         string       `json:"action"`
	Fields         []FormField  `json:"fields"`
	ServiceOptions []FormOption `json:"serviceOptions"`
	// Simulated is set while submissions are not delivered anywhere.
	Simulated bool `json:"simulated"`
}

// FormField is a single input of the contact form.
type FormField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder,omitempty"`
}

// FormOption is a select option.
type FormOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Footer is shared by every page.
type Footer struct {
	Brand   string `json:"brand"`
	Tagline string `json:"tagline"`
	Links   []Link `json:"links"`
	Note    string `json:"note"`
	Contact Link   `json:"contact"`
}

// RevealSpec tells the client how to animate a block into view.
type RevealSpec struct {
	DelayMS      int64   `json:"delayMs"`
	Threshold    float64 `json:"threshold"`
	DurationMS   int64   `json:"durationMs"`
	InitialClass string  `json:"initialClass"`
	VisibleClass string  `json:"visibleClass"`
}
