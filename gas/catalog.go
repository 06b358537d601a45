// SPDX-License-Identifier: MIT

package gas

import "fmt"

// PropertyLookup resolves a gas identifier (name or CAS number) to its
// constants. Unknown identifiers fail with ErrNotFound.
type PropertyLookup interface {
	Component(id string) (Component, error)
}

// InteractionLookup resolves the binary interaction coefficient of an
// unordered pair of identifiers. Unknown pairs fail with ErrNotFound.
type InteractionLookup interface {
	Interaction(id1, id2 string) (float64, error)
}

// pairKey is an unordered pair normalized to {min, max} so lookups are
// order-independent.
type pairKey struct {
	lo, hi string
}

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Catalog is an immutable in-memory PropertyLookup and InteractionLookup.
// When several records match an identifier the first one wins, mirroring a
// linear scan of the source database. Safe for concurrent use.
type Catalog struct {
	components   []Component
	byID         map[string]int     // name and CAS number → first index
	interactions map[pairKey]float64 // CAS pair and name pair → first k12
	records      []Interaction
}

var (
	_ PropertyLookup    = (*Catalog)(nil)
	_ InteractionLookup = (*Catalog)(nil)
)

// NewCatalog indexes the given records. Slices are copied.
//
// Complexity: O(len(components) + len(interactions)).
func NewCatalog(components []Component, interactions []Interaction) *Catalog {
	c := &Catalog{
		components:   append([]Component(nil), components...),
		byID:         make(map[string]int, 2*len(components)),
		interactions: make(map[pairKey]float64, 2*len(interactions)),
		records:      append([]Interaction(nil), interactions...),
	}
	for i, comp := range c.components {
		for _, id := range []string{comp.Name, comp.CASN} {
			if _, seen := c.byID[id]; id != "" && !seen {
				c.byID[id] = i
			}
		}
	}
	for _, ip := range c.records {
		c.addPair(ip.CASN1, ip.CASN2, ip.K12)
		c.addPair(ip.Name1, ip.Name2, ip.K12)
	}

	return c
}

func (c *Catalog) addPair(a, b string, k float64) {
	if a == "" || b == "" {
		return
	}
	key := newPairKey(a, b)
	if _, seen := c.interactions[key]; !seen {
		c.interactions[key] = k
	}
}

// Component returns the first record whose name or CAS number equals id.
func (c *Catalog) Component(id string) (Component, error) {
	i, ok := c.byID[id]
	if !ok || id == "" {
		return Component{}, fmt.Errorf("component %q: %w", id, ErrNotFound)
	}

	return c.components[i], nil
}

// Interaction returns k12 for the unordered pair {id1, id2}.
func (c *Catalog) Interaction(id1, id2 string) (float64, error) {
	if id1 != "" && id2 != "" {
		if k, ok := c.interactions[newPairKey(id1, id2)]; ok {
			return k, nil
		}
	}

	return 0, fmt.Errorf("interaction %q/%q: %w", id1, id2, ErrNotFound)
}

// Components returns a copy of all component records in source order.
func (c *Catalog) Components() []Component {
	return append([]Component(nil), c.components...)
}

// Interactions returns a copy of all interaction records in source order.
func (c *Catalog) Interactions() []Interaction {
	return append([]Interaction(nil), c.records...)
}
