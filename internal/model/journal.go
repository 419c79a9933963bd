// internal/model/journal.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalEntry は日記1件を表します
type JournalEntry struct {
	JournalID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Mood      string         `gorm:"type:varchar(32);not null" json:"mood"` // 日記スケールの綴りで保存
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// 日記作成リクエストDTO
type PostJournalRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Mood    string `json:"mood" validate:"required,mood"`
}

// 日記更新リクエストDTO (部分更新)
type PutJournalRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Mood    *string `json:"mood,omitempty" validate:"omitempty,mood"`
}

// DeleteJournalResponse は削除APIのレスポンス (クライアントが message を読む)
type DeleteJournalResponse struct {
	Message string `json:"message"`
}
