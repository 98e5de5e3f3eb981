// Package board implements a two-level AAC board: a home screen of
// category pictograms, each opening a category of pictograms that speak
// text when selected.
//
// A Board is either at Home or inside one category. Select on the home
// screen enters a category silently; Select inside a category returns
// the text to speak and stays put. Reset always returns Home.
//
// A Board is not safe for concurrent use; hosts keep one per session.
package board

import (
	"fmt"
	"path"
	"strings"

	"github.com/jask/aacboard/internal/boardfile"
	"github.com/jask/aacboard/internal/orderedmap"
)

// HomeKey marks the home screen as the current category. It is never a
// category key and never has a registered name.
const HomeKey = "img/home.png"

// Board holds the categories and the navigation state.
type Board struct {
	categories *orderedmap.Map[string, *Category]
	// names holds display names for keys read as category headers.
	names   *orderedmap.Map[string, string]
	current string
}

// New returns an empty board at Home.
func New() *Board {
	return &Board{
		categories: orderedmap.New[string, *Category](),
		names:      orderedmap.New[string, string](),
		current:    HomeKey,
	}
}

// Current returns the key of the open category, or HomeKey.
func (b *Board) Current() string {
	return b.current
}

// AtHome reports whether the home screen is showing.
func (b *Board) AtHome() bool {
	return b.current == HomeKey
}

// Reset returns to the home screen.
func (b *Board) Reset() {
	b.current = HomeKey
}

// Select acts on the pictogram key. On the home screen a category key
// opens that category and returns "". Inside a category it returns the
// item's text. A miss returns an error matching ErrNotFound and leaves
// the state unchanged.
func (b *Board) Select(key string) (string, error) {
	if b.AtHome() {
		if !b.categories.HasKey(key) {
			return "", fmt.Errorf("not on home screen: %w: %q", ErrNotFound, key)
		}
		b.current = key
		return "", nil
	}
	cat, ok := b.categories.Lookup(b.current)
	if !ok {
		return "", fmt.Errorf("not in current category: %w: %q", ErrNotFound, key)
	}
	text, err := cat.Select(key)
	if err != nil {
		return "", fmt.Errorf("not in current category: %w", err)
	}
	return text, nil
}

// AddItem on the home screen creates a category named text under key
// and opens it. Inside a category it adds key to that category. Entries
// the board file cannot hold are ignored, as is a home-screen key that
// is HomeKey or already names a category.
func (b *Board) AddItem(key, text string) {
	if !b.AtHome() {
		if cat, ok := b.categories.Lookup(b.current); ok {
			cat.AddItem(key, text)
		}
		return
	}
	if key == HomeKey || b.categories.HasKey(key) || boardfile.CheckSection(key, text) != nil {
		return
	}
	_ = b.categories.Set(key, NewCategory(text))
	b.current = key
}

// ImageLocs lists the keys on the current screen.
func (b *Board) ImageLocs() []string {
	if b.AtHome() {
		return b.categories.Keys()
	}
	cat, ok := b.categories.Lookup(b.current)
	if !ok {
		return []string{}
	}
	return cat.ImageKeys()
}

// CategoryName returns the name of the open category, or "" at Home.
// A name read from a category header takes precedence over the
// category's own name.
func (b *Board) CategoryName() string {
	if name, ok := b.names.Lookup(b.current); ok {
		return name
	}
	if cat, ok := b.categories.Lookup(b.current); ok {
		return cat.Name()
	}
	return ""
}

// HasImage reports whether key is selectable on the current screen.
func (b *Board) HasImage(key string) bool {
	if b.AtHome() {
		return b.categories.HasKey(key)
	}
	cat, ok := b.categories.Lookup(b.current)
	if !ok {
		return false
	}
	return cat.HasImage(key)
}

// Categories returns the category keys in home screen order.
func (b *Board) Categories() []string {
	return b.categories.Keys()
}

// Category returns the category stored under key.
func (b *Board) Category(key string) (*Category, bool) {
	return b.categories.Lookup(key)
}

// Len returns the number of categories.
func (b *Board) Len() int {
	return b.categories.Len()
}

// Stem returns the file name of a pictogram key without its extension,
// used as a label when no text is known.
func Stem(key string) string {
	base := path.Base(key)
	return strings.TrimSuffix(base, path.Ext(base))
}
