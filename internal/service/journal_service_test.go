// internal/service/journal_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nuna/internal/model"
	"nuna/internal/repository/mocks"
)

func strPtr(s string) *string { return &s }

func Test_journalService_CreateJournal(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	userID := uuid.New()

	tests := []struct {
		name      string
		req       *model.PostJournalRequest
		setupMock func(repo *mocks.JournalRepository)
		wantCode  string
	}{
		{
			name: "正常系: 別名のラベルは日記の綴りで保存",
			req:  &model.PostJournalRequest{Title: " Hari ini ", Content: "Ujian lancar", Mood: "happy"},
			setupMock: func(repo *mocks.JournalRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.JournalEntry")).
					Run(func(args mock.Arguments) {
						e := args.Get(2).(*model.JournalEntry)
						assert.Equal(t, userID, e.UserID)
						assert.Equal(t, "Hari ini", e.Title)
						assert.Equal(t, model.JournalMoodSenang, e.Mood)
						assert.NotEqual(t, uuid.Nil, e.JournalID)
					}).Return(nil).Once()
			},
		},
		{
			name:      "異常系: タイトルが空白のみ",
			req:       &model.PostJournalRequest{Title: "   ", Content: "isi", Mood: "Netral"},
			setupMock: func(repo *mocks.JournalRepository) {},
			wantCode:  "INVALID_TITLE",
		},
		{
			name:      "異常系: 未知の気分",
			req:       &model.PostJournalRequest{Title: "a", Content: "b", Mood: "Marah"},
			setupMock: func(repo *mocks.JournalRepository) {},
			wantCode:  "INVALID_MOOD",
		},
		{
			name: "異常系: DBエラー",
			req:  &model.PostJournalRequest{Title: "a", Content: "b", Mood: "Netral"},
			setupMock: func(repo *mocks.JournalRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.JournalEntry")).
					Return(errors.New("db down")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.JournalRepository)
			tt.setupMock(repo)
			svc := NewJournalService(db, repo)

			got, err := svc.CreateJournal(ctx, userID, tt.req)
			if tt.wantCode != "" {
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func Test_journalService_UpdateJournal(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	userID := uuid.New()
	journalID := uuid.New()

	t.Run("正常系: 指定したフィールドだけ更新", func(t *testing.T) {
		repo := new(mocks.JournalRepository)
		repo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID, journalID,
			map[string]interface{}{"title": "Baru", "mood": model.JournalMoodCemas}).Return(nil).Once()
		repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, journalID).
			Return(&model.JournalEntry{JournalID: journalID, Title: "Baru", Mood: model.JournalMoodCemas}, nil).Once()

		got, err := NewJournalService(db, repo).UpdateJournal(ctx, userID, journalID,
			&model.PutJournalRequest{Title: strPtr("Baru"), Mood: strPtr("anxious")})
		require.NoError(t, err)
		assert.Equal(t, "Baru", got.Title)
		repo.AssertExpectations(t)
	})

	t.Run("異常系: 更新内容なし", func(t *testing.T) {
		_, err := NewJournalService(db, new(mocks.JournalRepository)).UpdateJournal(ctx, userID, journalID, &model.PutJournalRequest{})
		requireAppErrorIs(t, err, model.ErrInvalidInput, "NO_UPDATE_FIELDS")
	})

	t.Run("異常系: 存在しない", func(t *testing.T) {
		repo := new(mocks.JournalRepository)
		repo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID, journalID, mock.Anything).
			Return(model.ErrNotFound).Once()

		_, err := NewJournalService(db, repo).UpdateJournal(ctx, userID, journalID, &model.PutJournalRequest{Content: strPtr("x")})
		requireAppErrorIs(t, err, model.ErrNotFound, "NOT_FOUND")
	})
}

func Test_journalService_GetListDelete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	userID := uuid.New()
	journalID := uuid.New()

	repo := new(mocks.JournalRepository)
	repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, journalID).Return(nil, model.ErrNotFound).Once()
	repo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(nil, nil).Once()
	repo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), userID, journalID).Return(nil).Once()
	svc := NewJournalService(db, repo)

	_, err := svc.GetJournal(ctx, userID, journalID)
	requireAppErrorIs(t, err, model.ErrNotFound, "NOT_FOUND")

	list, err := svc.ListJournals(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	require.NoError(t, svc.DeleteJournal(ctx, userID, journalID))
	repo.AssertExpectations(t)
}
