package entity

import (
	"errors"
	"fmt"
)

// Catalog is the fixed, ordered declaration of a settings group's properties.
// A Catalog is immutable after construction and safe to share.
type Catalog struct {
	properties []Property
	index      map[string]int
}

// NewCatalog validates and indexes the given properties. Names must be unique
// and every default (and forced value) must satisfy its property constraints.
func NewCatalog(props ...Property) (*Catalog, error) {
	c := &Catalog{
		properties: make([]Property, len(props)),
		index:      make(map[string]int, len(props)),
	}

	var errs []error
	for i, p := range props {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("property %d has no name", i))
			continue
		}
		if _, dup := c.index[p.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate property %q", p.Name))
			continue
		}
		if err := Validate(p, p.Default); err != nil {
			errs = append(errs, fmt.Errorf("default: %w", err))
		}
		if p.Forced != nil {
			if err := Validate(p, p.Forced); err != nil {
				errs = append(errs, fmt.Errorf("forced: %w", err))
			}
		}
		c.properties[i] = p
		c.index[p.Name] = i
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on an invalid declaration.
func MustCatalog(props ...Property) *Catalog {
	c, err := NewCatalog(props...)
	if err != nil {
		panic(fmt.Sprintf("invalid settings catalog: %v", err))
	}
	return c
}

// Properties returns the properties in declaration order.
func (c *Catalog) Properties() []Property {
	out := make([]Property, len(c.properties))
	copy(out, c.properties)
	return out
}

// Lookup returns the property with the given name.
func (c *Catalog) Lookup(name string) (Property, bool) {
	i, ok := c.index[name]
	if !ok {
		return Property{}, false
	}
	return c.properties[i], true
}

// Names returns the property names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.properties))
	for i, p := range c.properties {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of declared properties.
func (c *Catalog) Len() int {
	return len(c.properties)
}
