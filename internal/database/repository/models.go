package repository

import "time"

// Utterance is one spoken selection.
type Utterance struct {
	ID          string
	CategoryKey string
	ImageKey    string
	Text        string
	SpokenAt    time.Time
}

// PhraseCount is a phrase with the number of times it was spoken.
type PhraseCount struct {
	CategoryKey string
	ImageKey    string
	Text        string
	Count       int
}
