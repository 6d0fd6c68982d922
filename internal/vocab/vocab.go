// Package vocab は単語一覧の並び替えと日付ごとのグループ化を行います。
package vocab

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"go_4_kanji_quiz/internal/model"
)

// DayLayout は日付キーの形式 (YYYY-MM-DD)
const DayLayout = "2006-01-02"

var epoch = time.Unix(0, 0).UTC()

// createdAt は作成日時を返します。未設定の場合はエポック (最も古い) として扱います。
func createdAt(w *model.Word) time.Time {
	if w.CreatedAt == nil || w.CreatedAt.IsZero() {
		return epoch
	}
	return *w.CreatedAt
}

// Sort は指定された順に並べた新しいスライスを返します。
// 安定ソートなので、同順位の単語は入力の順序を保ちます。
func Sort(words []*model.Word, order model.SortOrder) []*model.Word {
	out := slices.Clone(words)
	switch order {
	case model.SortOldest:
		slices.SortStableFunc(out, func(a, b *model.Word) int {
			return createdAt(a).Compare(createdAt(b))
		})
	case model.SortMissCount:
		slices.SortStableFunc(out, func(a, b *model.Word) int {
			return b.MissCount - a.MissCount
		})
	default:
		slices.SortStableFunc(out, func(a, b *model.Word) int {
			return createdAt(b).Compare(createdAt(a))
		})
	}
	return out
}

// DayKey は基準タイムゾーンでの日付キーを返します
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// DayWindow は日付キーに対応する [開始, 終了) の時刻範囲を返します
func DayWindow(day string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DayLayout, day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, model.NewValidationError("day", "日付はYYYY-MM-DD形式で指定してください。")
	}
	return start, start.AddDate(0, 0, 1), nil
}

// GroupByDay は作成日ごとに単語をまとめます。作成日時のない単語は含めません。
func GroupByDay(words []*model.Word, loc *time.Location) model.DateGroup {
	groups := model.DateGroup{}
	for _, w := range words {
		if w.CreatedAt == nil || w.CreatedAt.IsZero() {
			continue
		}
		key := DayKey(*w.CreatedAt, loc)
		groups[key] = append(groups[key], w)
	}
	return groups
}

// Days は日付キーを新しい順に返します
func Days(groups model.DateGroup) []string {
	days := lo.Keys(groups)
	slices.Sort(days)
	slices.Reverse(days)
	return days
}

// Flatten は新しい日付から順にグループを連結します
func Flatten(groups model.DateGroup) []*model.Word {
	out := []*model.Word{}
	for _, day := range Days(groups) {
		out = append(out, groups[day]...)
	}
	return out
}

// ParseSortOrder はクエリ文字列を並び順に変換します。空なら新しい順です。
func ParseSortOrder(s string) (model.SortOrder, error) {
	switch s {
	case "", string(model.SortNewest):
		return model.SortNewest, nil
	case string(model.SortOldest):
		return model.SortOldest, nil
	case string(model.SortMissCount), "wrongCount":
		return model.SortMissCount, nil
	}
	return "", model.NewValidationError("sort", "並び順は newest, oldest, wrong_count のいずれかです。")
}

// ParseViewMode はクエリ文字列を表示モードに変換します。空なら全件表示です。
func ParseViewMode(s string) (model.ViewMode, error) {
	switch s {
	case "", string(model.ViewAll):
		return model.ViewAll, nil
	case string(model.ViewByDay):
		return model.ViewByDay, nil
	}
	return "", model.NewValidationError("mode", "表示モードは all か by_day です。")
}

// Project はスナップショットに表示条件を適用します。
// 日付別表示で日付が未指定なら、最新の日を選びます。
func Project(snap *model.Snapshot, state model.ViewState) *model.VocabularyView {
	days := Days(snap.Groups)
	view := &model.VocabularyView{
		Mode:      state.Mode,
		SortOrder: state.SortOrder,
		Days:      days,
	}

	var words []*model.Word
	switch state.Mode {
	case model.ViewByDay:
		day := state.SelectedDay
		if day == "" && len(days) > 0 {
			day = days[0]
		}
		view.SelectedDay = day
		words = snap.Groups[day]
	default:
		words = snap.All
	}

	view.Words = Sort(words, state.SortOrder)
	if view.Words == nil {
		view.Words = []*model.Word{}
	}
	view.Total = len(view.Words)
	return view
}
