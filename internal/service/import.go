package service

import (
	"fmt"
	"io"
	"os"

	"github.com/jask/aacboard/internal/board"
	"github.com/jask/aacboard/internal/boardfile"
)

// ImportService folds other board files into a board.
type ImportService struct {
	Options boardfile.Options
}

// ImportResult counts what a merge changed. Errors holds one entry per
// malformed input line that was skipped.
type ImportResult struct {
	Categories int
	Items      int
	Skipped    int
	Errors     []error
}

// Merge adds the categories and items of r to b. Existing categories
// keep their name and existing items keep their text; those entries are
// counted as skipped. The board's navigation state is preserved.
func (s *ImportService) Merge(b *board.Board, r io.Reader) (ImportResult, error) {
	parsed, err := boardfile.Parse(r, board.FileOptions(s.Options))
	if err != nil {
		return ImportResult{}, err
	}
	res := ImportResult{Errors: parsed.Skipped}

	from := b.Current()
	b.Reset()
	for _, sec := range parsed.Document.Sections {
		cat, ok := b.Category(sec.Key)
		if !ok {
			b.AddItem(sec.Key, sec.Name)
			b.Reset()
			if cat, ok = b.Category(sec.Key); !ok {
				res.Skipped += 1 + len(sec.Items)
				continue
			}
			res.Categories++
		} else {
			res.Skipped++
		}
		for _, it := range sec.Items {
			if cat.HasImage(it.Key) {
				res.Skipped++
				continue
			}
			cat.AddItem(it.Key, it.Text)
			if !cat.HasImage(it.Key) {
				res.Skipped++
				continue
			}
			res.Items++
		}
	}
	if from != board.HomeKey {
		_, _ = b.Select(from)
	}
	return res, nil
}

// MergeFile merges the board file at path into b.
func (s *ImportService) MergeFile(b *board.Board, path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open import: %w", err)
	}
	defer f.Close()
	return s.Merge(b, f)
}
