package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nuna/internal/model"
)

func TestGormJournalRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormJournalRepository()
	userID := uuid.New()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i, title := range []string{"Senin", "Selasa", "Rabu"} {
		e := &model.JournalEntry{
			JournalID: uuid.New(),
			UserID:    userID,
			Title:     title,
			Content:   "isi " + title,
			Mood:      model.JournalMoodNetral,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, db, e))
		ids = append(ids, e.JournalID)
	}

	t.Run("正常系: ID で取得", func(t *testing.T) {
		got, err := repo.FindByID(ctx, db, userID, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "Senin", got.Title)
	})

	t.Run("異常系: 他ユーザーの日記は見えない", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New(), ids[0])
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 新しい順", func(t *testing.T) {
		got, err := repo.FindByUser(ctx, db, userID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Rabu", got[0].Title)

		recent, err := repo.FindRecent(ctx, db, userID, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "Rabu", recent[0].Title)
		assert.Equal(t, "Selasa", recent[1].Title)
	})

	t.Run("正常系: 更新", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, db, userID, ids[1], map[string]interface{}{"title": "Selasa pagi"}))
		got, err := repo.FindByID(ctx, db, userID, ids[1])
		require.NoError(t, err)
		assert.Equal(t, "Selasa pagi", got.Title)

		err = repo.Update(ctx, db, userID, uuid.New(), map[string]interface{}{"title": "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 論理削除", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, db, userID, ids[2]))
		_, err := repo.FindByID(ctx, db, userID, ids[2])
		assert.ErrorIs(t, err, model.ErrNotFound)

		err = repo.Delete(ctx, db, userID, ids[2])
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
