// Package boardfile reads and writes the line-oriented board format.
//
// A category line is "<key> <name...>" and opens a category. An item
// line is "><key> <text...>" and belongs to the most recently opened
// category:
//
//	img/food/plate.png food
//	>img/food/fries.png french fries
//	>img/food/watermelon.png watermelon
//	img/clothing/hanger.png clothing
//	>img/clothing/shirt.png collared shirt
//
// Tokens are separated by runs of whitespace; everything after the key
// is joined back together with single spaces.
package boardfile

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/jask/aacboard/internal/orderedmap"
)

const itemMarker = ">"

const reasonReserved = "reserved key"

// Item is one pictogram inside a category.
type Item struct {
	Key  string
	Text string
}

// Section is a category header and its items in file order.
type Section struct {
	Key   string
	Name  string
	Items []Item
}

// Document is a parsed board file.
type Document struct {
	Sections []Section
}

// Options control parsing.
type Options struct {
	// Strict aborts on the first malformed line instead of skipping it.
	Strict bool
	// Reserved lists keys that may not open a category. Such a header is
	// malformed and so is every item under it.
	Reserved []string
}

// Result is the outcome of a successful parse. Skipped holds a
// *LineError for every malformed line that was ignored.
type Result struct {
	Document Document
	Skipped  []error
}

type sectionBuilder struct {
	name  string
	items *orderedmap.Map[string, string]
}

// Parse reads a board document from r. It returns an error when r fails,
// or, in strict mode, at the first malformed line.
func Parse(r io.Reader, opts Options) (Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var res Result
	sections := orderedmap.New[string, *sectionBuilder]()
	var open *sectionBuilder
	// set while the items of a rejected header are being skipped
	rejected := false
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSuffix(sc.Text(), "\r")
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		key, isItem := strings.CutPrefix(fields[0], itemMarker)
		reason := ""
		switch {
		case len(fields) < 2:
			reason = "expected a key followed by text"
		case key == "":
			reason = "empty pictogram key"
		case isItem && rejected:
			reason = "item under reserved category"
		case isItem && open == nil:
			reason = "item before any category"
		case !isItem && slices.Contains(opts.Reserved, key):
			reason = reasonReserved
		}
		if reason != "" {
			lerr := &LineError{Line: line, Text: raw, Reason: reason}
			if opts.Strict {
				return Result{}, lerr
			}
			res.Skipped = append(res.Skipped, lerr)
			if reason == reasonReserved {
				rejected, open = true, nil
			}
			continue
		}

		text := strings.Join(fields[1:], " ")
		if isItem {
			// key is non-empty, so Set cannot fail
			_ = open.items.Set(key, text)
			continue
		}
		rejected = false
		if existing, ok := sections.Lookup(key); ok {
			open = existing
			continue
		}
		open = &sectionBuilder{name: text, items: orderedmap.New[string, string]()}
		_ = sections.Set(key, open)
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("read board: %w", err)
	}

	res.Document.Sections = make([]Section, 0, sections.Len())
	for key, sb := range sections.All() {
		sec := Section{Key: key, Name: sb.name, Items: make([]Item, 0, sb.items.Len())}
		for k, text := range sb.items.All() {
			sec.Items = append(sec.Items, Item{Key: k, Text: text})
		}
		res.Document.Sections = append(res.Document.Sections, sec)
	}
	return res, nil
}

// Write encodes doc to w in canonical form: one category line per
// section followed by its item lines, each ending in "\n", with no
// trailing whitespace.
func Write(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	for _, sec := range doc.Sections {
		if err := CheckSection(sec.Key, sec.Name); err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s %s\n", sec.Key, canonicalText(sec.Name))
		for _, it := range sec.Items {
			if err := CheckItem(it.Key, it.Text); err != nil {
				return err
			}
			fmt.Fprintf(bw, "%s%s %s\n", itemMarker, it.Key, canonicalText(it.Text))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	return nil
}

// CheckSection reports, as an error matching ErrUnencodable, whether a
// category header with this key and name cannot be written.
func CheckSection(key, name string) error {
	if err := CheckItem(key, name); err != nil {
		return err
	}
	if strings.HasPrefix(key, itemMarker) {
		return fmt.Errorf("%w: category key %q starts with %q", ErrUnencodable, key, itemMarker)
	}
	return nil
}

// CheckItem reports, as an error matching ErrUnencodable, whether an
// item line with this key and text cannot be written.
func CheckItem(key, text string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty key", ErrUnencodable)
	case strings.ContainsFunc(key, unicode.IsSpace):
		return fmt.Errorf("%w: key %q contains whitespace", ErrUnencodable, key)
	case strings.TrimSpace(text) == "":
		return fmt.Errorf("%w: key %q has empty text", ErrUnencodable, key)
	}
	return nil
}

// canonicalText collapses whitespace the way Parse reads it back.
func canonicalText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
