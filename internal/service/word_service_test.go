// internal/service/word_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func wordAt(kanji string, at time.Time, miss int) *model.Word {
	return &model.Word{WordID: uuid.New(), Kanji: kanji, Reading: "よみ", Meaning: "뜻", MissCount: miss, CreatedAt: &at}
}

func Test_wordService_AddWord(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		req       *model.PostWordRequest
		setupMock func(repo *mocks.WordRepository)
		wantErr   error
		wantField string
	}{
		{
			name: "正常系: 前後の空白を除いて保存",
			req:  &model.PostWordRequest{Kanji: " 日本 ", Reading: " にほん, にっぽん ", Meaning: "일본 "},
			setupMock: func(repo *mocks.WordRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(w *model.Word) bool {
					return w.Owner == "taro" && w.Kanji == "日本" && w.Reading == "にほん, にっぽん" && w.Meaning == "일본"
				})).Return(nil).Once()
			},
		},
		{
			name:      "異常系: 漢字が空",
			req:       &model.PostWordRequest{Kanji: "  ", Reading: "にほん", Meaning: "일본"},
			wantErr:   model.ErrInvalidInput,
			wantField: "kanji",
		},
		{
			name:      "異常系: 読みがカンマだけ",
			req:       &model.PostWordRequest{Kanji: "日本", Reading: " , ", Meaning: "일본"},
			wantErr:   model.ErrInvalidInput,
			wantField: "yomigana",
		},
		{
			name:      "異常系: 意味が空",
			req:       &model.PostWordRequest{Kanji: "日本", Reading: "にほん", Meaning: ""},
			wantErr:   model.ErrInvalidInput,
			wantField: "korean",
		},
		{
			name: "異常系: ストアの失敗",
			req:  &model.PostWordRequest{Kanji: "日本", Reading: "にほん", Meaning: "일본"},
			setupMock: func(repo *mocks.WordRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Word")).
					Return(errors.New("connection refused")).Once()
			},
			wantErr: model.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewWordRepository(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			svc := NewWordService(repo)

			word, err := svc.AddWord(ctx, "taro", tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, word)
				var appErr *model.AppError
				require.True(t, errors.As(err, &appErr))
				if tt.wantField != "" {
					assert.Equal(t, tt.wantField, appErr.Field)
				}
				if errors.Is(err, model.ErrStore) {
					assert.Equal(t, "connection refused", appErr.Message, "ストアの文言をそのまま伝える")
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "日本", word.Kanji)
		})
	}
}

func Test_wordService_RemoveWord(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		repo := mocks.NewWordRepository(t)
		repo.On("Remove", mock.Anything, "taro", id).Return(nil).Once()
		repo.On("SupportsTombstone").Return(true).Maybe()
		assert.NoError(t, NewWordService(repo).RemoveWord(ctx, "taro", id))
	})

	t.Run("既に削除済み", func(t *testing.T) {
		repo := mocks.NewWordRepository(t)
		repo.On("Remove", mock.Anything, "taro", id).Return(model.ErrNotFound).Once()
		err := NewWordService(repo).RemoveWord(ctx, "taro", id)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.NotErrorIs(t, err, model.ErrStore)
	})

	t.Run("ストアの失敗", func(t *testing.T) {
		repo := mocks.NewWordRepository(t)
		repo.On("Remove", mock.Anything, "taro", id).Return(errors.New("timeout")).Once()
		err := NewWordService(repo).RemoveWord(ctx, "taro", id)
		assert.ErrorIs(t, err, model.ErrStore)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("IDなし", func(t *testing.T) {
		repo := mocks.NewWordRepository(t)
		err := NewWordService(repo).RemoveWord(ctx, "taro", uuid.Nil)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_wordService_Refresh(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	w1 := wordAt("朝", day1, 0)
	w2 := wordAt("夜", day2, 3)

	t.Run("正常系: 全件と日付別の両方を返す", func(t *testing.T) {
		repo := mocks.NewWordRepository(t)
		repo.On("ListActive", mock.Anything, "taro").Return([]*model.Word{w2, w1}, nil).Once()
		repo.On("GroupActiveByDay", mock.Anything, "taro").
			Return(model.DateGroup{"2024-05-01": {w1}, "2024-05-02": {w2}}, nil).Once()

		snap, err := NewWordService(repo).Refresh(ctx, "taro")
		require.NoError(t, err)
		assert.Len(t, snap.All, 2)
		assert.Len(t, snap.Groups, 2)
	})

	t.Run("異常系: 片方の失敗で全体が失敗", func(t *testing.T) {
		repo := mocks.NewWordRepository(t)
		repo.On("ListActive", mock.Anything, "taro").Return([]*model.Word{w1}, nil).Maybe()
		repo.On("GroupActiveByDay", mock.Anything, "taro").Return(nil, errors.New("db down")).Once()

		snap, err := NewWordService(repo).Refresh(ctx, "taro")
		assert.Nil(t, snap)
		assert.ErrorIs(t, err, model.ErrStore)
	})

	t.Run("空のストア", func(t *testing.T) {
		repo := mocks.NewWordRepository(t)
		repo.On("ListActive", mock.Anything, "").Return(nil, nil).Once()
		repo.On("GroupActiveByDay", mock.Anything, "").Return(nil, nil).Once()

		snap, err := NewWordService(repo).Refresh(ctx, "")
		require.NoError(t, err)
		assert.NotNil(t, snap.All)
		assert.NotNil(t, snap.Groups)
	})
}

func Test_wordService_View(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	w1 := wordAt("朝", day1, 5)
	w2 := wordAt("夜", day2, 0)
	w3 := wordAt("昼", day2.Add(time.Hour), 2)

	newRepo := func(t *testing.T) *mocks.WordRepository {
		repo := mocks.NewWordRepository(t)
		repo.On("ListActive", mock.Anything, "taro").Return([]*model.Word{w3, w2, w1}, nil).Once()
		repo.On("GroupActiveByDay", mock.Anything, "taro").
			Return(model.DateGroup{"2024-05-01": {w1}, "2024-05-02": {w3, w2}}, nil).Once()
		return repo
	}

	t.Run("全件を間違えた回数順", func(t *testing.T) {
		view, err := NewWordService(newRepo(t)).View(ctx, "taro", model.ViewState{Mode: model.ViewAll, SortOrder: model.SortMissCount})
		require.NoError(t, err)
		require.Len(t, view.Words, 3)
		assert.Equal(t, []string{"朝", "昼", "夜"}, []string{view.Words[0].Kanji, view.Words[1].Kanji, view.Words[2].Kanji})
		assert.Equal(t, 3, view.Total)
	})

	t.Run("日付別で日付未指定なら最新の日", func(t *testing.T) {
		view, err := NewWordService(newRepo(t)).View(ctx, "taro", model.ViewState{Mode: model.ViewByDay})
		require.NoError(t, err)
		assert.Equal(t, "2024-05-02", view.SelectedDay)
		assert.Equal(t, []string{"2024-05-02", "2024-05-01"}, view.Days)
		require.Len(t, view.Words, 2)
		assert.Equal(t, "昼", view.Words[0].Kanji, "デフォルトは新しい順")
	})

	t.Run("日付の形式が不正", func(t *testing.T) {
		repo := mocks.NewWordRepository(t)
		_, err := NewWordService(repo).View(ctx, "taro", model.ViewState{Mode: model.ViewByDay, SelectedDay: "5/1"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_wordService_DaysAndListByDay(t *testing.T) {
	ctx := context.Background()
	w := wordAt("朝", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), 0)

	repo := mocks.NewWordRepository(t)
	repo.On("GroupActiveByDay", mock.Anything, "taro").
		Return(model.DateGroup{"2024-04-30": {w}, "2024-05-01": {w}}, nil).Once()
	repo.On("ListActiveByDay", mock.Anything, "taro", "2024-05-01").Return([]*model.Word{w}, nil).Once()
	repo.On("ListActiveByDay", mock.Anything, "taro", "2024-05-03").Return(nil, nil).Once()
	svc := NewWordService(repo)

	days, err := svc.Days(ctx, "taro")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-01", "2024-04-30"}, days)

	words, err := svc.ListByDay(ctx, "taro", "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, words, 1)

	words, err = svc.ListByDay(ctx, "taro", "2024-05-03")
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}
