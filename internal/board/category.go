package board

import (
	"fmt"

	"github.com/jask/aacboard/internal/boardfile"
	"github.com/jask/aacboard/internal/orderedmap"
)

// Category is a named set of pictograms, each mapped to the text it speaks.
type Category struct {
	name  string
	items *orderedmap.Map[string, string]
}

// NewCategory returns an empty category.
func NewCategory(name string) *Category {
	return &Category{name: name, items: orderedmap.New[string, string]()}
}

// Name returns the display name given at creation.
func (c *Category) Name() string {
	return c.name
}

// AddItem maps key to text. An entry boardfile.CheckItem rejects is
// ignored; callers feed this from files and user input and must not
// have to pre-validate.
func (c *Category) AddItem(key, text string) {
	if boardfile.CheckItem(key, text) != nil {
		return
	}
	_ = c.items.Set(key, text)
}

// ImageKeys returns the item keys in insertion order.
func (c *Category) ImageKeys() []string {
	return c.items.Keys()
}

// Select returns the text for key.
func (c *Category) Select(key string) (string, error) {
	text, ok := c.items.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return text, nil
}

// Text is the non-failing form of Select.
func (c *Category) Text(key string) (string, bool) {
	return c.items.Lookup(key)
}

// HasImage reports whether key belongs to the category.
func (c *Category) HasImage(key string) bool {
	return c.items.HasKey(key)
}

// Len returns the number of items.
func (c *Category) Len() int {
	return c.items.Len()
}
