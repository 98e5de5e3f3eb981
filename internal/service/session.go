package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jask/aacboard/internal/board"
	"github.com/jask/aacboard/internal/boardfile"
	"github.com/jask/aacboard/internal/database/repository"
)

// Speaker voices selected text. Audio output is left to implementations.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// MissError is returned when a selection is not on the current screen.
type MissError struct {
	Key        string
	Suggestion string
	Err        error
}

func (e *MissError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v (did you mean %q?)", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

func (e *MissError) Unwrap() error { return e.Err }

// Outcome describes what a selection did.
type Outcome struct {
	// Entered is set when a category was opened from the home screen.
	Entered  bool
	Category string
	Spoken   string
}

// SessionService drives one board for one user. It speaks and records
// selections and owns the board file path.
type SessionService struct {
	Board       *board.Board
	Path        string
	Options     boardfile.Options
	History     *repository.UtteranceRepo
	Speaker     Speaker
	MaxDistance int
}

// Select acts on key. Misses are returned as *MissError.
func (s *SessionService) Select(ctx context.Context, key string) (Outcome, error) {
	from := s.Board.Current()
	screen := s.Board.ImageLocs()
	text, err := s.Board.Select(key)
	if err != nil {
		miss := &MissError{Key: key, Err: err}
		if errors.Is(err, board.ErrNotFound) {
			miss.Suggestion, _ = Suggest(key, screen, s.MaxDistance)
		}
		return Outcome{}, miss
	}
	if from == board.HomeKey {
		return Outcome{Entered: true, Category: s.Board.CategoryName()}, nil
	}
	out := Outcome{Category: s.Board.CategoryName(), Spoken: text}
	return out, s.say(ctx, from, key, text)
}

// Repeat speaks a phrase from history again and records it.
func (s *SessionService) Repeat(ctx context.Context, p repository.PhraseCount) (Outcome, error) {
	return Outcome{Spoken: p.Text}, s.say(ctx, p.CategoryKey, p.ImageKey, p.Text)
}

func (s *SessionService) say(ctx context.Context, categoryKey, imageKey, text string) error {
	if s.Speaker != nil {
		if err := s.Speaker.Speak(ctx, text); err != nil {
			return fmt.Errorf("speak: %w", err)
		}
	}
	if s.History == nil {
		return nil
	}
	_, err := s.History.Insert(ctx, repository.Utterance{CategoryKey: categoryKey, ImageKey: imageKey, Text: text})
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

// Add adds a pictogram to the current screen; on the home screen it
// defines and opens a new category.
func (s *SessionService) Add(key, text string) {
	s.Board.AddItem(key, text)
}

// Reset returns to the home screen.
func (s *SessionService) Reset() {
	s.Board.Reset()
}

// Save writes the board to its file.
func (s *SessionService) Save() error {
	if s.Path == "" {
		return errors.New("save: no board path configured")
	}
	if err := s.Board.Save(s.Path); err != nil {
		return fmt.Errorf("save %s: %w", s.Path, err)
	}
	return nil
}

// Reload discards unsaved changes and reads the board file again.
func (s *SessionService) Reload() (board.LoadReport, error) {
	rep, err := s.Board.Load(s.Path, s.Options)
	if err != nil {
		return rep, fmt.Errorf("load %s: %w", s.Path, err)
	}
	return rep, nil
}
