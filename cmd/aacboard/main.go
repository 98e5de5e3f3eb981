package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/aacboard/internal/board"
	"github.com/jask/aacboard/internal/boardfile"
	"github.com/jask/aacboard/internal/config"
	"github.com/jask/aacboard/internal/database"
	"github.com/jask/aacboard/internal/database/repository"
	"github.com/jask/aacboard/internal/service"
	"github.com/jask/aacboard/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	wroteConfig, err := config.EnsureFile(cfg)
	if err != nil {
		log.Printf("warn: config not written: %v", err)
	}
	if len(os.Args) > 1 && os.Args[1] != "" {
		cfg.Board.Path = os.Args[1]
	}

	// the TUI owns the terminal
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.Path, "aacboard")
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()
	if wroteConfig {
		log.Printf("wrote default config to %s", config.Path())
	}

	if err := ensureBoard(cfg.Board.Path); err != nil {
		log.Fatalf("board: %v", err)
	}
	opts := boardfile.Options{Strict: cfg.Board.Strict}
	b, rep, err := board.Open(cfg.Board.Path, opts)
	if err != nil {
		log.Fatalf("load board: %v", err)
	}
	for _, skipped := range rep.Skipped {
		log.Printf("warn: %s: %v", cfg.Board.Path, skipped)
	}
	log.Printf("loaded %s: %d categories, %d items", cfg.Board.Path, rep.Categories, rep.Items)

	var (
		history     *repository.UtteranceRepo
		maintenance *service.MaintenanceService
	)
	if cfg.History.Enabled {
		db, err := openHistory(cfg)
		if err != nil {
			log.Printf("warn: history disabled: %v", err)
		} else {
			defer db.Close()
			history = repository.NewUtteranceRepo(db)
			maintenance = &service.MaintenanceService{DB: db}
		}
	}

	session := &service.SessionService{
		Board:       b,
		Path:        cfg.Board.Path,
		Options:     opts,
		History:     history,
		Speaker:     service.LogSpeaker{},
		MaxDistance: cfg.Suggest.MaxDistance,
	}
	importer := &service.ImportService{Options: opts}

	p := tea.NewProgram(tui.New(ctx, cfg,
		tui.Services{Session: session, Import: importer, Maintenance: maintenance, History: history},
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// ensureBoard writes the starter board when no board file exists yet.
func ensureBoard(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir board dir: %w", err)
	}
	log.Printf("creating starter board at %s", path)
	return board.Starter().Save(path)
}

func openHistory(cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}
