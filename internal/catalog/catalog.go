// Package catalog holds the fixed list of mentors a traveler can write to,
// the time portals they can book and the chronicle strip they can rewrite.
// The catalog ships inside the binary as YAML and is validated when loaded.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/timension/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is an immutable set of mentors and portals.
type Catalog struct {
	mentors   []domain.Mentor
	portals   []domain.TimePortal
	chronicle []domain.ChroniclePanel
}

type document struct {
	Mentors []domain.Mentor     `yaml:"mentors" validate:"min=1,dive"`
	Portals []domain.TimePortal `yaml:"portals" validate:"min=1,dive"`

	Chronicle []domain.ChroniclePanel `yaml:"chronicle" validate:"dive"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a YAML catalog. IDs must be unique within
// their list.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog: %v", domain.ErrValidation, err)
	}

	if err := validator.New().Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: invalid catalog: %v", domain.ErrValidation, err)
	}

	seen := make(map[string]bool)
	for _, m := range doc.Mentors {
		if seen["m:"+m.ID] {
			return nil, fmt.Errorf("%w: duplicate mentor %q", domain.ErrValidation, m.ID)
		}
		seen["m:"+m.ID] = true
	}
	for _, p := range doc.Portals {
		if seen["p:"+p.ID] {
			return nil, fmt.Errorf("%w: duplicate portal %q", domain.ErrValidation, p.ID)
		}
		seen["p:"+p.ID] = true
	}
	for _, p := range doc.Chronicle {
		key := fmt.Sprintf("c:%d", p.ID)
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate chronicle panel %d", domain.ErrValidation, p.ID)
		}
		seen[key] = true
	}

	return &Catalog{mentors: doc.Mentors, portals: doc.Portals, chronicle: doc.Chronicle}, nil
}

// Mentors returns all mentors in catalog order.
func (c *Catalog) Mentors() []domain.Mentor {
	return append([]domain.Mentor(nil), c.mentors...)
}

// Mentor looks up a mentor by ID.
func (c *Catalog) Mentor(id string) (domain.Mentor, error) {
	for _, m := range c.mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Mentor{}, fmt.Errorf("%w: %s", domain.ErrUnknownMentor, id)
}

// Portals returns all time portals in catalog order.
func (c *Catalog) Portals() []domain.TimePortal {
	return append([]domain.TimePortal(nil), c.portals...)
}

// Portal looks up a time portal by ID.
func (c *Catalog) Portal(id string) (domain.TimePortal, error) {
	for _, p := range c.portals {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.TimePortal{}, fmt.Errorf("%w: %s", domain.ErrUnknownPortal, id)
}

// Chronicle returns the chronicle panels in strip order.
func (c *Catalog) Chronicle() []domain.ChroniclePanel {
	return append([]domain.ChroniclePanel(nil), c.chronicle...)
}
