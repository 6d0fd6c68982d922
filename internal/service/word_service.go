//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
// internal/service/word_service.go
package service

import (
	"context"
	"strings"
	"time"

	"go_4_kanji_quiz/internal/middleware"
	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/quiz"
	"go_4_kanji_quiz/internal/repository"
	"go_4_kanji_quiz/internal/vocab"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// WordService は単語の追加・削除と一覧表示を扱います。
// owner が空なら単一ユーザー運用として全単語が対象です。
type WordService interface {
	AddWord(ctx context.Context, owner string, req *model.PostWordRequest) (*model.Word, error)
	RemoveWord(ctx context.Context, owner string, wordID uuid.UUID) error
	Refresh(ctx context.Context, owner string) (*model.Snapshot, error)
	View(ctx context.Context, owner string, state model.ViewState) (*model.VocabularyView, error)
	ListByDay(ctx context.Context, owner, day string) ([]*model.Word, error)
	Days(ctx context.Context, owner string) ([]string, error)
}

type wordService struct {
	wordRepo repository.WordRepository
}

func NewWordService(wordRepo repository.WordRepository) WordService {
	return &wordService{wordRepo: wordRepo}
}

func (s *wordService) AddWord(ctx context.Context, owner string, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	kanji := strings.TrimSpace(req.Kanji)
	reading := strings.TrimSpace(req.Reading)
	meaning := strings.TrimSpace(req.Meaning)
	switch {
	case kanji == "":
		return nil, model.NewValidationError("kanji", "漢字を入力してください。")
	case len(quiz.SplitCandidates(reading)) == 0:
		return nil, model.NewValidationError("yomigana", "読みを入力してください。")
	case len(quiz.SplitCandidates(meaning)) == 0:
		return nil, model.NewValidationError("korean", "意味を入力してください。")
	}

	word := &model.Word{
		Owner:   owner,
		Kanji:   kanji,
		Reading: reading,
		Meaning: meaning,
	}
	if err := s.wordRepo.Create(ctx, word); err != nil {
		return nil, storeError("AddWord", err)
	}
	logger.Info("Word added", "word_id", word.WordID.String(), "kanji", word.Kanji)
	return word, nil
}

func (s *wordService) RemoveWord(ctx context.Context, owner string, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if wordID == uuid.Nil {
		return model.NewValidationError("word_id", "単語IDが正しくありません。")
	}
	if err := s.wordRepo.Remove(ctx, owner, wordID); err != nil {
		return storeError("RemoveWord", err)
	}
	logger.Info("Word removed",
		"word_id", wordID.String(),
		"owner", owner,
		"tombstone", s.wordRepo.SupportsTombstone(),
	)
	return nil
}

// Refresh は全件と日付ごとの一覧を並行して読み込みます。どちらかが失敗したらエラーです。
func (s *wordService) Refresh(ctx context.Context, owner string) (*model.Snapshot, error) {
	var snap model.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		words, err := s.wordRepo.ListActive(gctx, owner)
		if err != nil {
			return err
		}
		snap.All = words
		return nil
	})
	g.Go(func() error {
		groups, err := s.wordRepo.GroupActiveByDay(gctx, owner)
		if err != nil {
			return err
		}
		snap.Groups = groups
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, storeError("Refresh", err)
	}
	if snap.All == nil {
		snap.All = []*model.Word{}
	}
	if snap.Groups == nil {
		snap.Groups = model.DateGroup{}
	}
	return &snap, nil
}

func (s *wordService) View(ctx context.Context, owner string, state model.ViewState) (*model.VocabularyView, error) {
	if state.SortOrder == "" {
		state.SortOrder = model.SortNewest
	}
	if state.Mode == "" {
		state.Mode = model.ViewAll
	}
	if state.SelectedDay != "" {
		if _, _, err := vocab.DayWindow(state.SelectedDay, time.UTC); err != nil {
			return nil, err
		}
	}
	snap, err := s.Refresh(ctx, owner)
	if err != nil {
		return nil, err
	}
	return vocab.Project(snap, state), nil
}

func (s *wordService) ListByDay(ctx context.Context, owner, day string) ([]*model.Word, error) {
	words, err := s.wordRepo.ListActiveByDay(ctx, owner, day)
	if err != nil {
		return nil, storeError("ListByDay", err)
	}
	if words == nil {
		words = []*model.Word{}
	}
	return words, nil
}

// Days は単語がある日付を新しい順に返します
func (s *wordService) Days(ctx context.Context, owner string) ([]string, error) {
	groups, err := s.wordRepo.GroupActiveByDay(ctx, owner)
	if err != nil {
		return nil, storeError("Days", err)
	}
	return vocab.Days(groups), nil
}
