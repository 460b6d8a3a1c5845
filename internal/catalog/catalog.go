package catalog

import "github.com/osse101/CaseBox_Go/internal/domain"

// Catalog is the read-only set of cases loaded at startup.
type Catalog struct {
	cases  []domain.Case
	byName map[string]int
}

// New builds a catalog from already-validated cases. Later duplicates of a
// name are ignored.
func New(cases []domain.Case) *Catalog {
	c := &Catalog{
		cases:  make([]domain.Case, 0, len(cases)),
		byName: make(map[string]int, len(cases)),
	}
	for _, cs := range cases {
		if _, dup := c.byName[cs.Name]; dup {
			continue
		}
		c.byName[cs.Name] = len(c.cases)
		c.cases = append(c.cases, cloneCase(cs))
	}
	return c
}

// Cases returns a copy of every case in load order.
func (c *Catalog) Cases() []domain.Case {
	out := make([]domain.Case, len(c.cases))
	for i, cs := range c.cases {
		out[i] = cloneCase(cs)
	}
	return out
}

// Find looks a case up by name.
func (c *Catalog) Find(name string) (domain.Case, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return domain.Case{}, false
	}
	return cloneCase(c.cases[idx]), true
}

// Len returns the number of cases.
func (c *Catalog) Len() int {
	return len(c.cases)
}

func cloneCase(cs domain.Case) domain.Case {
	items := make([]domain.Item, len(cs.Items))
	copy(items, cs.Items)
	cs.Items = items
	return cs
}
