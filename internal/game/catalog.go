package game

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

type Catalog struct {
	Activities []Activity `yaml:"activities"`
}

// LoadCatalog decodes and validates a catalog document. The document must
// declare each activity kind exactly once, in menu order.
func LoadCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func MustLoadCatalog(data []byte) Catalog {
	c, err := LoadCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = MustLoadCatalog(builtinCatalog)

// DefaultCatalog returns the built-in catalog. Callers get their own copy of
// the activity slice.
func DefaultCatalog() Catalog {
	return Catalog{Activities: append([]Activity(nil), defaultCatalog.Activities...)}
}

func (c Catalog) Validate() error {
	if len(c.Activities) != len(ActivityKinds) {
		return fmt.Errorf("catalog must define %d activities, got %d", len(ActivityKinds), len(c.Activities))
	}
	for i, a := range c.Activities {
		if !a.Kind.IsValid() {
			return fmt.Errorf("catalog entry %d: unknown kind %q", i+1, a.Kind)
		}
		if a.Kind != ActivityKinds[i] {
			return fmt.Errorf("catalog entry %d: expected kind %q, got %q", i+1, ActivityKinds[i], a.Kind)
		}
		if a.Name == "" {
			return fmt.Errorf("catalog entry %d: name is empty", i+1)
		}
		ranges := []struct {
			label string
			r     Range
		}{
			{"energy", a.Energy},
			{"motivation", a.Motivation},
			{"performance", a.Performance},
		}
		for _, rr := range ranges {
			if rr.r.Min > rr.r.Max {
				return fmt.Errorf("catalog entry %d: %s range min %d exceeds max %d", i+1, rr.label, rr.r.Min, rr.r.Max)
			}
		}
	}
	return nil
}

func (c Catalog) Len() int {
	return len(c.Activities)
}

// At returns the activity for a 1-based menu number.
func (c Catalog) At(number int) (Activity, bool) {
	if number < 1 || number > len(c.Activities) {
		return Activity{}, false
	}
	return c.Activities[number-1], true
}

func (c Catalog) Get(kind ActivityKind) (Activity, bool) {
	for _, a := range c.Activities {
		if a.Kind == kind {
			return a, true
		}
	}
	return Activity{}, false
}
