// Package catalog provides the static subscription plan catalog.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"pusaka-newsletter/internal/domain"
)

//go:embed plans.yaml
var defaultPlans []byte

type file struct {
	Plans []domain.Plan `yaml:"plans"`
}

// Catalog is an ordered, read-only list of plans.
type Catalog struct {
	plans []domain.Plan
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultPlans)
}

// Parse reads a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse plans: %w", err)
	}

	seen := make(map[string]bool, len(f.Plans))
	for _, p := range f.Plans {
		if p.ID == "" {
			return nil, fmt.Errorf("plan without id")
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate plan %q", p.ID)
		}
		if p.DurationDays <= 0 {
			return nil, fmt.Errorf("plan %q: duration_days must be positive", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("plan %q: negative price", p.ID)
		}
		seen[p.ID] = true
	}

	return &Catalog{plans: f.Plans}, nil
}

// Lookup returns the plan with the given id.
func (c *Catalog) Lookup(id string) (domain.Plan, bool) {
	for _, p := range c.plans {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Plan{}, false
}

// Available returns the plans a user may select. The free trial is offered only once.
func (c *Catalog) Available(trialUsed bool) []domain.Plan {
	out := make([]domain.Plan, 0, len(c.plans))
	for _, p := range c.plans {
		if trialUsed && p.ID == domain.FreeTrialPlanID {
			continue
		}
		out = append(out, p)
	}
	return out
}
