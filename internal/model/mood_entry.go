// internal/model/mood_entry.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry はユーザーが記録した気分を表します。
// EndedAt が nil のものが「現在の気分」で、ユーザーごとに最大1件。
type MoodEntry struct {
	MoodEntryID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_mood_entries_active,where:ended_at IS NULL" json:"userId"`
	Mood        Mood       `gorm:"type:varchar(32);not null" json:"mood"`
	CreatedAt   time.Time  `gorm:"not null;index" json:"createdAt"`
	EndedAt     *time.Time `json:"endedAt,omitempty"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}

// IsActive は終了していない記録かどうか
func (e MoodEntry) IsActive() bool {
	return e.EndedAt == nil
}

// PostMoodRequest は気分記録APIのリクエストボディ
type PostMoodRequest struct {
	Mood string `json:"mood" validate:"required,mood"`
}
