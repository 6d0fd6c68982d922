// internal/model/quiz.go
package model

import "github.com/google/uuid"

// クイズの状態名 (レスポンス用)
const (
	QuizStateNotStarted = "not_started"
	QuizStateInProgress = "in_progress"
	QuizStateCompleted  = "completed"
)

// 採点結果
const (
	OutcomeCorrect   = "correct"
	OutcomePartial   = "partial"
	OutcomeIncorrect = "incorrect"
)

// StartQuizRequest はクイズ開始リクエストのDTO
// Day も WordIDs も空なら有効な単語すべてが対象になります。
type StartQuizRequest struct {
	Day     string      `json:"day,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WordIDs []uuid.UUID `json:"word_ids,omitempty"`
}

// SubmitAnswerRequest は解答送信リクエストのDTO
type SubmitAnswerRequest struct {
	Reading string `json:"yomigana"`
	Meaning string `json:"korean"`
}

// QuestionView は出題中の単語 (答えは含めない)
type QuestionView struct {
	WordID            uuid.UUID `json:"word_id"`
	Kanji             string    `json:"kanji"`
	PreviousMissCount int       `json:"previous_wrong_count"`
}

// AnswerResult は1問分の採点結果
type AnswerResult struct {
	Outcome        string `json:"outcome"`
	Feedback       string `json:"feedback"`
	MatchedReading string `json:"matched_yomigana,omitempty"`
	MatchedMeaning string `json:"matched_korean,omitempty"`
	CorrectReading string `json:"yomigana"`
	CorrectMeaning string `json:"korean"`
	IsLast         bool   `json:"is_last"`
	// 間違えた回数の更新に失敗した場合のみ、ストアのエラー文言が入る
	StoreError string `json:"store_error,omitempty"`
}

// QuizStatus はクイズセッションの現在の状態
type QuizStatus struct {
	State    string        `json:"state"`
	Position int           `json:"position"`
	Total    int           `json:"total"`
	Question *QuestionView `json:"question,omitempty"`
	Revealed *AnswerResult `json:"revealed,omitempty"`
	Missed   []*Word       `json:"missed"`
	CanRetry bool          `json:"can_retry"`
}
