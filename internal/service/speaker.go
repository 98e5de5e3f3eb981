package service

import (
	"context"
	"log"
)

// LogSpeaker writes each phrase to a logger instead of producing audio.
type LogSpeaker struct {
	Logger *log.Logger
}

func (s LogSpeaker) Speak(_ context.Context, text string) error {
	if s.Logger == nil {
		log.Printf("speak: %q", text)
		return nil
	}
	s.Logger.Printf("speak: %q", text)
	return nil
}
