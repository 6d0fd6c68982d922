//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"sync"

	"go_4_kanji_quiz/internal/middleware"
	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/quiz"
	"go_4_kanji_quiz/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// QuizService は利用者ごとに1つのクイズセッションを保持します。
// 同じ利用者の操作が処理中の間は、次の操作を ErrBusy で断ります。
type QuizService interface {
	Start(ctx context.Context, owner string, req *model.StartQuizRequest) (*model.QuizStatus, error)
	Current(ctx context.Context, owner string) (*model.QuizStatus, error)
	Submit(ctx context.Context, owner string, req *model.SubmitAnswerRequest) (*model.AnswerResult, error)
	Advance(ctx context.Context, owner string) (*model.QuizStatus, error)
	Retry(ctx context.Context, owner string) (*model.QuizStatus, error)
	// Reset はセッションを破棄し、最新の単語一覧を返します
	Reset(ctx context.Context, owner string) (*model.Snapshot, error)
}

type quizService struct {
	wordRepo    repository.WordRepository
	wordService WordService
	newSession  func() *quiz.Session

	mu       sync.Mutex // sessions と busy を保護
	sessions map[string]*quiz.Session
	busy     map[string]bool
}

type QuizServiceOption func(*quizService)

// WithSessionFactory はセッションの生成方法を差し替えます (テストで乱数を固定する場合など)
func WithSessionFactory(fn func() *quiz.Session) QuizServiceOption {
	return func(s *quizService) {
		s.newSession = fn
	}
}

func NewQuizService(wordRepo repository.WordRepository, wordService WordService, opts ...QuizServiceOption) QuizService {
	s := &quizService{
		wordRepo:    wordRepo,
		wordService: wordService,
		newSession:  func() *quiz.Session { return quiz.NewSession() },
		sessions:    make(map[string]*quiz.Session),
		busy:        make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// acquire は利用者ごとの処理中フラグを立てます。戻り値の関数で必ず解除してください。
func (s *quizService) acquire(owner string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[owner] {
		return nil, model.NewAppError("BUSY", "前の操作を処理中です。しばらくしてからもう一度お試しください。", "", model.ErrBusy)
	}
	s.busy[owner] = true
	return func() {
		s.mu.Lock()
		delete(s.busy, owner)
		s.mu.Unlock()
	}, nil
}

func (s *quizService) Start(ctx context.Context, owner string, req *model.StartQuizRequest) (*model.QuizStatus, error) {
	logger := middleware.GetLogger(ctx)
	release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	s.mu.Lock()
	existing := s.sessions[owner]
	s.mu.Unlock()
	if existing != nil {
		if _, ok := existing.State().(quiz.NotStarted); !ok {
			return nil, model.NewAppError("INVALID_STATE", "クイズは既に開始されています。", "", model.ErrInvalidState)
		}
	}

	// 削除済みの単語が混ざらないよう、開始時に必ずストアから読み直す
	words, err := s.candidates(ctx, owner, req)
	if err != nil {
		return nil, err
	}

	sess := s.newSession()
	if err := sess.Start(words); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[owner] = sess
	status := statusOf(sess)
	s.mu.Unlock()

	logger.Info("Quiz started", "words", len(words), "day", req.Day)
	return status, nil
}

func (s *quizService) candidates(ctx context.Context, owner string, req *model.StartQuizRequest) ([]*model.Word, error) {
	var (
		words []*model.Word
		err   error
	)
	if req.Day != "" {
		words, err = s.wordRepo.ListActiveByDay(ctx, owner, req.Day)
	} else {
		words, err = s.wordRepo.ListActive(ctx, owner)
	}
	if err != nil {
		return nil, storeError("StartQuiz", err)
	}
	if len(req.WordIDs) > 0 {
		wanted := lo.SliceToMap(req.WordIDs, func(id uuid.UUID) (uuid.UUID, struct{}) {
			return id, struct{}{}
		})
		words = lo.Filter(words, func(w *model.Word, _ int) bool {
			_, ok := wanted[w.WordID]
			return ok
		})
	}
	return words, nil
}

func (s *quizService) Current(ctx context.Context, owner string) (*model.QuizStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[owner]
	if !ok {
		return statusOf(nil), nil
	}
	return statusOf(sess), nil
}

func (s *quizService) Submit(ctx context.Context, owner string, req *model.SubmitAnswerRequest) (*model.AnswerResult, error) {
	logger := middleware.GetLogger(ctx)
	release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	s.mu.Lock()
	sess, ok := s.sessions[owner]
	if !ok {
		s.mu.Unlock()
		return nil, notInQuiz()
	}
	word, err := sess.Current()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	grade, err := sess.Submit(req.Reading, req.Meaning)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	result := answerResult(grade, isLast(sess))
	s.mu.Unlock()

	if grade.Missed() {
		// 採点結果は表示したまま、回数の更新失敗だけを伝える
		if err := s.wordRepo.IncrementMissCount(ctx, word.WordID); err != nil {
			logger.Warn("Failed to record miss", "error", err, "word_id", word.WordID.String())
			var appErr *model.AppError
			if errors.As(storeError("IncrementMissCount", err), &appErr) {
				result.StoreError = appErr.Message
			}
		}
	}
	logger.Info("Answer graded", "word_id", word.WordID.String(), "outcome", result.Outcome)
	return result, nil
}

func (s *quizService) Advance(ctx context.Context, owner string) (*model.QuizStatus, error) {
	return s.transition(owner, (*quiz.Session).Advance)
}

func (s *quizService) Retry(ctx context.Context, owner string) (*model.QuizStatus, error) {
	status, err := s.transition(owner, (*quiz.Session).Retry)
	if err == nil {
		middleware.GetLogger(ctx).Info("Quiz retry started", "words", status.Total)
	}
	return status, err
}

func (s *quizService) transition(owner string, fn func(*quiz.Session) error) (*model.QuizStatus, error) {
	release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[owner]
	if !ok {
		return nil, notInQuiz()
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	return statusOf(sess), nil
}

func (s *quizService) Reset(ctx context.Context, owner string) (*model.Snapshot, error) {
	release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	s.mu.Lock()
	delete(s.sessions, owner)
	s.mu.Unlock()

	return s.wordService.Refresh(ctx, owner)
}

func notInQuiz() error {
	return model.NewAppError("INVALID_STATE", "クイズ中ではありません。", "", model.ErrInvalidState)
}

func isLast(sess *quiz.Session) bool {
	st, ok := sess.State().(quiz.InProgress)
	return ok && st.Position == len(st.WorkingSet)-1
}

func answerResult(g quiz.Grade, last bool) *model.AnswerResult {
	return &model.AnswerResult{
		Outcome:        g.Outcome.String(),
		Feedback:       g.Feedback(),
		MatchedReading: g.Reading.Candidate,
		MatchedMeaning: g.Meaning.Candidate,
		CorrectReading: g.AcceptedReading,
		CorrectMeaning: g.AcceptedMeaning,
		IsLast:         last,
	}
}

// statusOf はセッションの状態をレスポンス用に変換します。nil は開始前として扱います。
func statusOf(sess *quiz.Session) *model.QuizStatus {
	status := &model.QuizStatus{State: model.QuizStateNotStarted, Missed: []*model.Word{}}
	if sess == nil {
		return status
	}
	switch st := sess.State().(type) {
	case quiz.InProgress:
		word := st.WorkingSet[st.Position]
		status.State = model.QuizStateInProgress
		status.Position = st.Position
		status.Total = len(st.WorkingSet)
		status.Question = &model.QuestionView{
			WordID:            word.WordID,
			Kanji:             word.Kanji,
			PreviousMissCount: word.MissCount,
		}
		if st.Revealed != nil {
			status.Revealed = answerResult(*st.Revealed, st.Position == len(st.WorkingSet)-1)
		}
		status.Missed = append(status.Missed, st.Missed...)
	case quiz.Completed:
		status.State = model.QuizStateCompleted
		status.Missed = append(status.Missed, st.Missed...)
		status.CanRetry = len(st.Missed) > 0
	}
	return status
}
