// internal/model/view.go
package model

// SortOrder は単語一覧の並び順
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortMissCount SortOrder = "wrong_count"
)

// ViewMode は単語一覧の表示モード
type ViewMode string

const (
	ViewAll   ViewMode = "all"
	ViewByDay ViewMode = "by_day"
)

// ViewState は一覧表示の条件をひとまとめにしたもの
type ViewState struct {
	Mode        ViewMode
	SortOrder   SortOrder
	SelectedDay string
}

// Snapshot はストアから読み込んだ単語一覧 (全件と日付ごと)
type Snapshot struct {
	All    []*Word
	Groups DateGroup
}

// VocabularyView は一覧APIのレスポンス
type VocabularyView struct {
	Mode        ViewMode  `json:"mode"`
	SortOrder   SortOrder `json:"sort"`
	SelectedDay string    `json:"day,omitempty"`
	Days        []string  `json:"days"`
	Words       []*Word   `json:"words"`
	Total       int       `json:"total"`
}
