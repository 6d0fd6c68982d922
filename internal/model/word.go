// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Word は単語カードを表します (漢字・読み・意味・間違えた回数)
type Word struct {
	WordID    uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"word_id"`
	Owner     string     `gorm:"column:user_name;index" json:"user_name,omitempty"`
	Kanji     string     `gorm:"column:kanji;not null" json:"kanji"`
	Reading   string     `gorm:"column:yomigana;not null" json:"yomigana"` // カンマ区切りで複数可
	Meaning   string     `gorm:"column:korean;not null" json:"korean"`     // カンマ区切りで複数可
	MissCount int        `gorm:"column:wrong_count;not null;default:0" json:"wrong_count"`
	CreatedAt *time.Time `gorm:"column:created_at;index" json:"created_at,omitempty"`
	Deleted   bool       `gorm:"column:deleted_at;not null;default:false" json:"-"` // 論理削除フラグ
}

func (Word) TableName() string {
	return "japanese_quiz"
}

// Persisted はストアに保存済みかどうかを返します
func (w *Word) Persisted() bool {
	return w.WordID != uuid.Nil
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	Kanji   string `json:"kanji" validate:"required"`
	Reading string `json:"yomigana" validate:"required,candidates"`
	Meaning string `json:"korean" validate:"required,candidates"`
}

// DateGroup は作成日 (YYYY-MM-DD) ごとの単語一覧です
type DateGroup map[string][]*Word
