package quiz

import (
	"math/rand/v2"
	"strings"

	"go_4_kanji_quiz/internal/model"
)

// State はセッションの状態です。NotStarted, InProgress, Completed のいずれかになります。
type State interface {
	isState()
}

// NotStarted はクイズ開始前 (またはメイン画面に戻った後) の状態
type NotStarted struct{}

// InProgress は出題中の状態。Revealed が nil でなければ現在の問題は採点済みです。
type InProgress struct {
	WorkingSet []*model.Word
	Position   int
	Missed     []*model.Word
	Revealed   *Grade
}

// Completed は最後の問題まで進んだ状態
type Completed struct {
	Missed []*model.Word
}

func (NotStarted) isState() {}
func (InProgress) isState() {}
func (Completed) isState()  {}

// Session は1回分のクイズの進行を管理します。並行利用は想定していません。
type Session struct {
	state State
	rng   *rand.Rand
}

type Option func(*Session)

// WithRand はシャッフルに使う乱数源を差し替えます (テスト用)
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		state: NotStarted{},
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	return s.state
}

// Start は単語をシャッフルしてクイズを始めます。単語が空なら何もしません。
func (s *Session) Start(words []*model.Word) error {
	if _, ok := s.state.(NotStarted); !ok {
		return invalidState("クイズは既に開始されています。")
	}
	if len(words) == 0 {
		return model.NewValidationError("words", "クイズを始めるには、先に単語を追加してください。")
	}
	s.state = InProgress{
		WorkingSet: s.shuffled(words),
		Missed:     []*model.Word{},
	}
	return nil
}

// Current は出題中の単語を返します
func (s *Session) Current() (*model.Word, error) {
	st, ok := s.state.(InProgress)
	if !ok {
		return nil, invalidState("クイズ中ではありません。")
	}
	return st.WorkingSet[st.Position], nil
}

// Submit は現在の問題を採点します。部分正解・不正解の単語は Missed に追加されます。
func (s *Session) Submit(reading, meaning string) (Grade, error) {
	st, ok := s.state.(InProgress)
	if !ok {
		return Grade{}, invalidState("解答できるのはクイズ中のみです。")
	}
	if st.Revealed != nil {
		return Grade{}, invalidState("この問題は採点済みです。次の問題に進んでください。")
	}
	if strings.TrimSpace(reading) == "" || strings.TrimSpace(meaning) == "" {
		field := "yomigana"
		if strings.TrimSpace(reading) != "" {
			field = "korean"
		}
		return Grade{}, model.NewValidationError(field, "読みと意味を両方入力してください。")
	}

	word := st.WorkingSet[st.Position]
	g := GradeAnswer(word, reading, meaning)
	if g.Missed() {
		st.Missed = append(st.Missed, word)
	}
	st.Revealed = &g
	s.state = st
	return g, nil
}

// Advance は次の問題に進みます。最後の問題なら Completed になります。
func (s *Session) Advance() error {
	st, ok := s.state.(InProgress)
	if !ok || st.Revealed == nil {
		return invalidState("解答を確認してから次の問題に進んでください。")
	}
	if st.Position == len(st.WorkingSet)-1 {
		s.state = Completed{Missed: st.Missed}
		return nil
	}
	st.Position++
	st.Revealed = nil
	s.state = st
	return nil
}

// Retry は間違えた単語だけで新しい周回を始めます
func (s *Session) Retry() error {
	st, ok := s.state.(Completed)
	if !ok {
		return invalidState("やり直しはクイズ終了後のみ可能です。")
	}
	if len(st.Missed) == 0 {
		return invalidState("間違えた単語はありません。")
	}
	s.state = InProgress{
		WorkingSet: s.shuffled(st.Missed),
		Missed:     []*model.Word{},
	}
	return nil
}

// Reset はセッションを破棄して開始前の状態に戻します
func (s *Session) Reset() {
	s.state = NotStarted{}
}

func (s *Session) shuffled(words []*model.Word) []*model.Word {
	out := make([]*model.Word, len(words))
	copy(out, words)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func invalidState(message string) error {
	return model.NewAppError("INVALID_STATE", message, "", model.ErrInvalidState)
}
