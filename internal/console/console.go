// Package console はターミナルで単語帳とクイズを操作するための対話ループです。
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/service"
	"go_4_kanji_quiz/internal/vocab"
)

// errQuit は入力が終わった (EOF) か終了が選ばれたことを表します
var errQuit = errors.New("quit")

// Suggester は漢字の読み候補を返します (nil なら補完しない)
type Suggester interface {
	Suggest(text string) (string, error)
}

type Runner struct {
	in        *bufio.Scanner
	out       io.Writer
	words     service.WordService
	quiz      service.QuizService
	suggester Suggester
	owner     string

	state model.ViewState
	shown []*model.Word // 直前に表示した一覧 (削除番号の対応用)
}

func NewRunner(in io.Reader, out io.Writer, words service.WordService, quiz service.QuizService, suggester Suggester, owner string) *Runner {
	return &Runner{
		in:        bufio.NewScanner(in),
		out:       out,
		words:     words,
		quiz:      quiz,
		suggester: suggester,
		owner:     owner,
		state:     model.ViewState{Mode: model.ViewAll, SortOrder: model.SortNewest},
	}
}

const menu = `
l) 一覧  s) 並び替え  d) 日付別  a) 追加  r) 削除
q) クイズ  x) 終了`

// Run はメイン画面のループです。入力が終わるか x で終了します。
func (r *Runner) Run(ctx context.Context) error {
	r.printf("こんにちは、%sさん。\n", r.displayName())
	if err := r.list(ctx); err != nil {
		r.printError(err)
	}
	for {
		r.printf("%s\n", menu)
		line, err := r.prompt("> ")
		if err != nil {
			return nil
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "l":
			r.state.Mode = model.ViewAll
			err = r.list(ctx)
		case "s":
			err = r.sort(ctx, arg)
		case "d":
			err = r.byDay(ctx, arg)
		case "a":
			err = r.add(ctx)
		case "r":
			err = r.remove(ctx, arg)
		case "q":
			err = r.runQuiz(ctx, arg)
		case "x":
			return nil
		case "":
			continue
		default:
			r.printf("不明なコマンドです: %s\n", cmd)
			continue
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			r.printError(err)
		}
	}
}

func (r *Runner) displayName() string {
	if r.owner == "" {
		return "ゲスト"
	}
	return r.owner
}

func (r *Runner) list(ctx context.Context) error {
	view, err := r.words.View(ctx, r.owner, r.state)
	if err != nil {
		return err
	}
	r.shown = view.Words
	if view.Mode == model.ViewByDay {
		if view.SelectedDay == "" {
			r.printf("日付別: 単語がありません。\n")
			return nil
		}
		r.printf("日付別: %s (日付: %s)\n", view.SelectedDay, strings.Join(view.Days, ", "))
	}
	if len(view.Words) == 0 {
		r.printf("単語がありません。a で追加してください。\n")
		return nil
	}
	r.printf("%d語 (並び順: %s)\n", view.Total, view.SortOrder)
	for i, w := range view.Words {
		r.printf("%3d. %s  %s  %s  (間違い %d回)\n", i+1, w.Kanji, w.Reading, w.Meaning, w.MissCount)
	}
	return nil
}

func (r *Runner) sort(ctx context.Context, arg string) error {
	if arg == "" {
		arg = next(r.state.SortOrder)
	}
	order, err := vocab.ParseSortOrder(arg)
	if err != nil {
		return err
	}
	r.state.SortOrder = order
	return r.list(ctx)
}

// next は並び順を newest → oldest → wrong_count の順に切り替えます
func next(order model.SortOrder) string {
	switch order {
	case model.SortNewest:
		return string(model.SortOldest)
	case model.SortOldest:
		return string(model.SortMissCount)
	default:
		return string(model.SortNewest)
	}
}

func (r *Runner) byDay(ctx context.Context, day string) error {
	r.state.Mode = model.ViewByDay
	r.state.SelectedDay = day
	return r.list(ctx)
}

func (r *Runner) add(ctx context.Context) error {
	kanji, err := r.prompt("漢字: ")
	if err != nil {
		return errQuit
	}
	label := "読み (カンマ区切り): "
	suggested := ""
	if r.suggester != nil && kanji != "" {
		if s, err := r.suggester.Suggest(kanji); err == nil && s != "" {
			suggested = s
			label = fmt.Sprintf("読み (カンマ区切り) [%s]: ", s)
		}
	}
	reading, err := r.prompt(label)
	if err != nil {
		return errQuit
	}
	if reading == "" {
		reading = suggested
	}
	meaning, err := r.prompt("意味 (カンマ区切り): ")
	if err != nil {
		return errQuit
	}

	word, err := r.words.AddWord(ctx, r.owner, &model.PostWordRequest{Kanji: kanji, Reading: reading, Meaning: meaning})
	if err != nil {
		return err
	}
	r.printf("追加しました: %s\n", word.Kanji)
	return r.list(ctx)
}

func (r *Runner) remove(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(r.shown) {
		return model.NewValidationError("number", "削除する単語の番号を指定してください (例: r 3)。")
	}
	word := r.shown[n-1]
	if err := r.words.RemoveWord(ctx, r.owner, word.WordID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			r.printf("「%s」は既に削除されています。\n", word.Kanji)
			return r.list(ctx)
		}
		return err
	}
	r.printf("削除しました: %s\n", word.Kanji)
	return r.list(ctx)
}

// runQuiz はクイズを最後まで進め、終わったらメイン画面に戻ります
func (r *Runner) runQuiz(ctx context.Context, day string) error {
	status, err := r.quiz.Start(ctx, r.owner, &model.StartQuizRequest{Day: day})
	if err != nil {
		return err
	}
	defer r.backToMain(ctx)

	for {
		switch status.State {
		case model.QuizStateInProgress:
			status, err = r.ask(ctx, status)
		case model.QuizStateCompleted:
			status, err = r.finish(ctx, status)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		if status == nil {
			return nil
		}
	}
}

func (r *Runner) ask(ctx context.Context, status *model.QuizStatus) (*model.QuizStatus, error) {
	q := status.Question
	r.printf("\n[%d/%d] %s", status.Position+1, status.Total, q.Kanji)
	if q.PreviousMissCount > 0 {
		r.printf("  (これまでの間違い: %d回)", q.PreviousMissCount)
	}
	r.printf("\n")

	var result *model.AnswerResult
	for result == nil {
		reading, err := r.prompt("読み: ")
		if err != nil {
			return nil, errQuit
		}
		meaning, err := r.prompt("意味: ")
		if err != nil {
			return nil, errQuit
		}
		result, err = r.quiz.Submit(ctx, r.owner, &model.SubmitAnswerRequest{Reading: reading, Meaning: meaning})
		if err != nil {
			if !errors.Is(err, model.ErrInvalidInput) {
				return nil, err
			}
			r.printError(err)
		}
	}

	r.printf("%s\n", result.Feedback)
	if result.StoreError != "" {
		r.printf("(間違えた回数を保存できませんでした: %s)\n", result.StoreError)
	}
	label := "Enterで次へ"
	if result.IsLast {
		label = "Enterで結果へ"
	}
	if _, err := r.prompt(label + " "); err != nil {
		return nil, errQuit
	}
	return r.quiz.Advance(ctx, r.owner)
}

// finish は結果を表示し、間違えた単語があればやり直すか尋ねます。nil はメイン画面に戻ることを表します。
func (r *Runner) finish(ctx context.Context, status *model.QuizStatus) (*model.QuizStatus, error) {
	if len(status.Missed) == 0 {
		r.printf("\n全問正解です！\n")
		return nil, nil
	}
	r.printf("\n間違えた単語 (%d語):\n", len(status.Missed))
	for _, w := range status.Missed {
		r.printf("  %s  %s  %s\n", w.Kanji, w.Reading, w.Meaning)
	}
	if !status.CanRetry {
		return nil, nil
	}
	answer, err := r.prompt("間違えた単語だけもう一度？ (y/N): ")
	if err != nil {
		return nil, errQuit
	}
	if !strings.EqualFold(answer, "y") {
		return nil, nil
	}
	return r.quiz.Retry(ctx, r.owner)
}

// backToMain はセッションを破棄し、更新された間違い回数で一覧を表示し直します
func (r *Runner) backToMain(ctx context.Context) {
	if _, err := r.quiz.Reset(ctx, r.owner); err != nil {
		r.printError(err)
		return
	}
	if err := r.list(ctx); err != nil {
		r.printError(err)
	}
}

// prompt は1行読み込みます。入力が終わったら errQuit を返します。
func (r *Runner) prompt(label string) (string, error) {
	r.printf("%s", label)
	if !r.in.Scan() {
		return "", errQuit
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) printError(err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		r.printf("エラー: %s\n", appErr.Message)
		return
	}
	r.printf("エラー: %v\n", err)
}
