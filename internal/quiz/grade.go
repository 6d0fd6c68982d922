package quiz

import (
	"fmt"

	"go_4_kanji_quiz/internal/model"
)

// Outcome は1問の採点結果の種類
type Outcome int

const (
	OutcomeIncorrect Outcome = iota
	OutcomePartial
	OutcomeCorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return model.OutcomeCorrect
	case OutcomePartial:
		return model.OutcomePartial
	default:
		return model.OutcomeIncorrect
	}
}

// Grade は読みと意味の照合結果をまとめたもの
type Grade struct {
	Outcome Outcome
	Reading MatchResult
	Meaning MatchResult
	// 正解の元の文字列 (カンマ区切りのまま)
	AcceptedReading string
	AcceptedMeaning string
}

// GradeAnswer は読みと意味を独立に照合し、3段階で採点します。
func GradeAnswer(word *model.Word, reading, meaning string) Grade {
	g := Grade{
		Reading:         Match(reading, SplitCandidates(word.Reading)),
		Meaning:         Match(meaning, SplitCandidates(word.Meaning)),
		AcceptedReading: word.Reading,
		AcceptedMeaning: word.Meaning,
	}
	switch {
	case g.Reading.Matched && g.Meaning.Matched:
		g.Outcome = OutcomeCorrect
	case g.Reading.Matched || g.Meaning.Matched:
		g.Outcome = OutcomePartial
	default:
		g.Outcome = OutcomeIncorrect
	}
	return g
}

// Missed は間違えた単語として記録すべきかを返します (部分正解も含む)
func (g Grade) Missed() bool {
	return g.Outcome != OutcomeCorrect
}

// Feedback はユーザーに表示するメッセージを返します
func (g Grade) Feedback() string {
	switch {
	case g.Outcome == OutcomeCorrect:
		return "正解です！"
	case g.Outcome == OutcomePartial && g.Reading.Matched:
		return fmt.Sprintf("部分正解です。読み「%s」は正解です。\n意味の正解: 「%s」", g.Reading.Candidate, g.AcceptedMeaning)
	case g.Outcome == OutcomePartial:
		return fmt.Sprintf("部分正解です。意味「%s」は正解です。\n読みの正解: 「%s」", g.Meaning.Candidate, g.AcceptedReading)
	default:
		return fmt.Sprintf("不正解です。\n読みの正解: 「%s」\n意味の正解: 「%s」", g.AcceptedReading, g.AcceptedMeaning)
	}
}
