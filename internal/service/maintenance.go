package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/aacboard/internal/database"
)

// MaintenanceService houses destructive actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// ClearHistory deletes every recorded utterance.
func (s *MaintenanceService) ClearHistory(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM utterances"); err != nil {
			return fmt.Errorf("clear utterances: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
