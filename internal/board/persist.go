package board

import (
	"slices"

	"github.com/jask/aacboard/internal/boardfile"
)

// LoadReport summarizes a successful load.
type LoadReport struct {
	Categories int
	Items      int
	// Skipped holds a *boardfile.LineError per ignored malformed line.
	Skipped []error
}

// Open reads a board from path.
func Open(path string, opts boardfile.Options) (*Board, LoadReport, error) {
	b := New()
	rep, err := b.Load(path, opts)
	return b, rep, err
}

// Load replaces the board's contents with the file at path and returns to
// Home. If the file cannot be read, or opts.Strict is set and a line is
// malformed, the board is left empty and the error is returned.
func (b *Board) Load(path string, opts boardfile.Options) (LoadReport, error) {
	res, err := boardfile.ReadFile(path, FileOptions(opts))
	if err != nil {
		b.replace(New())
		return LoadReport{}, err
	}
	b.replace(FromDocument(res.Document))
	rep := LoadReport{Categories: b.Len(), Skipped: res.Skipped}
	for _, cat := range b.categories.Values() {
		rep.Items += cat.Len()
	}
	return rep, nil
}

// Save writes the board to path in canonical form. A failed save leaves
// any existing file unchanged.
func (b *Board) Save(path string) error {
	return boardfile.WriteFile(path, b.Document())
}

// FileOptions returns opts with HomeKey reserved, so a file header
// naming it is reported as malformed.
func FileOptions(opts boardfile.Options) boardfile.Options {
	if !slices.Contains(opts.Reserved, HomeKey) {
		opts.Reserved = append(slices.Clip(opts.Reserved), HomeKey)
	}
	return opts
}

// FromDocument builds a board at Home from a parsed document. Every
// section header registers its name. Sections and items that could not
// be written back are dropped.
func FromDocument(doc boardfile.Document) *Board {
	b := New()
	for _, sec := range doc.Sections {
		if sec.Key == HomeKey || boardfile.CheckSection(sec.Key, sec.Name) != nil {
			continue
		}
		cat, ok := b.categories.Lookup(sec.Key)
		if !ok {
			cat = NewCategory(sec.Name)
			_ = b.categories.Set(sec.Key, cat)
			_ = b.names.Set(sec.Key, sec.Name)
		}
		for _, it := range sec.Items {
			cat.AddItem(it.Key, it.Text)
		}
	}
	return b
}

// Document returns the board's contents in home screen order.
func (b *Board) Document() boardfile.Document {
	doc := boardfile.Document{Sections: make([]boardfile.Section, 0, b.Len())}
	for key, cat := range b.categories.All() {
		sec := boardfile.Section{Key: key, Name: cat.Name(), Items: make([]boardfile.Item, 0, cat.Len())}
		for itemKey, text := range cat.items.All() {
			sec.Items = append(sec.Items, boardfile.Item{Key: itemKey, Text: text})
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}

func (b *Board) replace(other *Board) {
	b.categories = other.categories
	b.names = other.names
	b.current = HomeKey
}
