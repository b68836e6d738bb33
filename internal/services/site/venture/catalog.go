package venture

// Catalog is an immutable ordered list of ventures. Accessors return copies so
// callers cannot mutate the catalog they were handed.
type Catalog struct {
	ventures []Venture
	index    map[string]int
}

// NewCatalog builds a catalog from compiled-in configuration. Ids are not
// checked for uniqueness here; a duplicate id is a configuration defect and
// the first occurrence wins lookups. Use Parse or LoadFile for validated
// input.
func NewCatalog(ventures []Venture) *Catalog {
	c := &Catalog{
		ventures: make([]Venture, 0, len(ventures)),
		index:    make(map[string]int, len(ventures)),
	}
	for _, v := range ventures {
		if _, exists := c.index[v.ID]; !exists {
			c.index[v.ID] = len(c.ventures)
		}
		c.ventures = append(c.ventures, v.clone())
	}
	return c
}

// Ventures returns the ventures in catalog order.
func (c *Catalog) Ventures() []Venture {
	if c == nil {
		return nil
	}
	out := make([]Venture, len(c.ventures))
	for i, v := range c.ventures {
		out[i] = v.clone()
	}
	return out
}

// Lookup returns the venture with id.
func (c *Catalog) Lookup(id string) (Venture, bool) {
	if c == nil {
		return Venture{}, false
	}
	idx, ok := c.index[id]
	if !ok {
		return Venture{}, false
	}
	return c.ventures[idx].clone(), true
}

// Contains reports whether id names a venture in the catalog.
func (c *Catalog) Contains(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[id]
	return ok
}

// Len returns the number of ventures.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ventures)
}

// First returns the first venture, the featured one by convention.
func (c *Catalog) First() (Venture, bool) {
	if c == nil || len(c.ventures) == 0 {
		return Venture{}, false
	}
	return c.ventures[0].clone(), true
}

// IDs returns venture ids in catalog order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.ventures))
	for i, v := range c.ventures {
		out[i] = v.ID
	}
	return out
}
