package console_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_4_kanji_quiz/internal/console"
	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/repository"
	"go_4_kanji_quiz/internal/service"
)

type stubSuggester map[string]string

func (s stubSuggester) Suggest(text string) (string, error) { return s[text], nil }

type fixture struct {
	words service.WordService
	quiz  service.QuizService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.NewDB("sqlite://file:"+uuid.NewString()+"?mode=memory&cache=shared", logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, repository.AutoMigrate(db))

	repo := repository.NewGormWordRepository(db)
	words := service.NewWordService(repo)
	return &fixture{words: words, quiz: service.NewQuizService(repo, words)}
}

func (f *fixture) run(t *testing.T, owner string, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	r := console.NewRunner(in, &out, f.words, f.quiz, stubSuggester{"学校": "がっこう"}, owner)
	require.NoError(t, r.Run(context.Background()))
	return out.String()
}

func (f *fixture) all(t *testing.T, owner string) []*model.Word {
	t.Helper()
	view, err := f.words.View(context.Background(), owner, model.ViewState{})
	require.NoError(t, err)
	return view.Words
}

func TestRunner_AddAndQuizCorrect(t *testing.T) {
	f := setup(t)
	out := f.run(t, "たろう",
		"a", "日本", "にほん, にっぽん", "일본",
		"q", "にっぽん", "일본", "",
		"x",
	)

	assert.Contains(t, out, "こんにちは、たろうさん。")
	assert.Contains(t, out, "追加しました: 日本")
	assert.Contains(t, out, "[1/1] 日本")
	assert.Contains(t, out, "正解です！")
	assert.Contains(t, out, "全問正解です！")

	words := f.all(t, "たろう")
	require.Len(t, words, 1)
	assert.Equal(t, 0, words[0].MissCount)
}

func TestRunner_MissThenRetry(t *testing.T) {
	f := setup(t)
	out := f.run(t, "たろう",
		"a", "学校", "", "학교", // 読みは候補をそのまま採用
		"q", "ちがう", "틀림", "",
		"y", "がっこう", "학교", "",
		"x",
	)

	assert.Contains(t, out, "[がっこう]")
	assert.Contains(t, out, "不正解です。")
	assert.Contains(t, out, "間違えた単語 (1語)")
	assert.Contains(t, out, "正解です！")
	assert.Contains(t, out, "学校  がっこう  학교  (間違い 1回)", "クイズ後の一覧に最新の回数が出る")

	words := f.all(t, "たろう")
	require.Len(t, words, 1)
	assert.Equal(t, "がっこう", words[0].Reading)
	assert.Equal(t, 1, words[0].MissCount, "やり直しで正解しても記録は残る")
}

func TestRunner_ValidationKeepsQuestion(t *testing.T) {
	f := setup(t)
	out := f.run(t, "",
		"a", "日本", "にほん", "일본",
		"q", "", "", "にほん", "일본", "",
		"x",
	)
	assert.Contains(t, out, "こんにちは、ゲストさん。")
	assert.Contains(t, out, "読みと意味を両方入力してください。")
	assert.Contains(t, out, "正解です！")
}

func TestRunner_Remove(t *testing.T) {
	f := setup(t)
	out := f.run(t, "たろう",
		"a", "日本", "にほん", "일본",
		"r 9",
		"r 1",
		"x",
	)
	assert.Contains(t, out, "削除する単語の番号を指定してください")
	assert.Contains(t, out, "削除しました: 日本")
	assert.Empty(t, f.all(t, "たろう"))
}

func TestRunner_EmptyQuizAndOwnerScope(t *testing.T) {
	f := setup(t)
	f.run(t, "hanako", "a", "猫", "ねこ", "고양이", "x")

	out := f.run(t, "たろう", "q", "x")
	assert.Contains(t, out, "クイズを始めるには、先に単語を追加してください。")
	assert.Len(t, f.all(t, "hanako"), 1)
	assert.Empty(t, f.all(t, "たろう"))
}

func TestRunner_EOF(t *testing.T) {
	f := setup(t)
	out := f.run(t, "たろう", "a", "日本")
	assert.NotContains(t, out, "追加しました")
}
