package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/aacboard/internal/database"
	"github.com/jask/aacboard/internal/database/repository"
)

func openTestRepo(t *testing.T) *repository.UtteranceRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath, ""))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewUtteranceRepo(db)
}

func TestUtteranceInsertAndRecent(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestRepo(t)

	first, err := repo.Insert(ctx, repository.Utterance{CategoryKey: "img/food.png", ImageKey: "img/apple.png", Text: "apple"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.False(t, first.SpokenAt.IsZero())
	require.Equal(t, time.UTC, first.SpokenAt.Location())
	require.Zero(t, first.SpokenAt.Nanosecond())

	_, err = repo.Insert(ctx, repository.Utterance{CategoryKey: "img/food.png", ImageKey: "img/bread.png", Text: "bread"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, repository.Utterance{CategoryKey: "img/toys.png", ImageKey: "img/ball.png", Text: "ball"})
	require.NoError(t, err)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "ball", recent[0].Text)
	require.Equal(t, "bread", recent[1].Text)
	require.Equal(t, "img/toys.png", recent[0].CategoryKey)
}

func TestUtteranceFrequent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := openTestRepo(t)

	say := func(cat, img, text string) {
		_, err := repo.Insert(ctx, repository.Utterance{CategoryKey: cat, ImageKey: img, Text: text})
		require.NoError(t, err)
	}
	say("img/food.png", "img/water.png", "water please")
	say("img/food.png", "img/apple.png", "apple")
	say("img/food.png", "img/water.png", "water please")
	say("img/feel.png", "img/help.png", "I need help")
	say("img/food.png", "img/water.png", "water please")
	say("img/food.png", "img/apple.png", "apple")

	top, err := repo.Frequent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, "water please", top[0].Text)
	require.Equal(t, 3, top[0].Count)
	require.Equal(t, "apple", top[1].Text)
	require.Equal(t, 2, top[1].Count)
	require.Equal(t, "I need help", top[2].Text)
}

func TestUtteranceEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := openTestRepo(t)

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, recent)

	top, err := repo.Frequent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, top)
}
