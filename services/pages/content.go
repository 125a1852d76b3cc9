package pages

import (
	_ "embed"
	"fmt"

	"concierge/models"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Block is a reusable piece of static copy.
type Block struct {
	Heading string           `yaml:"heading"`
	Body    []string         `yaml:"body"`
	Items   []models.Feature `yaml:"items"`
	Links   []models.Link    `yaml:"links"`
}

// Content is all static copy of the site.
type Content struct {
	Footer models.Footer `yaml:"footer"`
	Home   struct {
		Title    string `yaml:"title"`
		Hero     Block  `yaml:"hero"`
		Why      Block  `yaml:"why"`
		Featured Block  `yaml:"featured"`
		CTA      Block  `yaml:"cta"`
	} `yaml:"home"`
	Services struct {
		Title string `yaml:"title"`
		Hero  Block  `yaml:"hero"`
	} `yaml:"services"`
	Detail struct {
		Back     models.Link `yaml:"back"`
		Book     models.Link `yaml:"book"`
		NotFound Block       `yaml:"notFound"`
		Expect   Block       `yaml:"expect"`
	} `yaml:"detail"`
	About struct {
		Title    string `yaml:"title"`
		Hero     Block  `yaml:"hero"`
		Mission  Block  `yaml:"mission"`
		Values   Block  `yaml:"values"`
		Approach Block  `yaml:"approach"`
		CTA      Block  `yaml:"cta"`
	} `yaml:"about"`
	Contact struct {
		Title   string `yaml:"title"`
		Hero    Block  `yaml:"hero"`
		Info    Block  `yaml:"info"`
		Privacy Block  `yaml:"privacy"`
		Form    Block  `yaml:"form"`
	} `yaml:"contact"`
}

// ParseContent decodes site copy from YAML.
func ParseContent(raw []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("pages: parse content: %w", err)
	}
	return &c, nil
}

// DefaultContent is the copy shipped with the binary.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}
