// Package quiz は解答の正規化・照合とクイズの進行を扱います。
// ストアや画面には依存しません。
package quiz

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// 比較時に取り除く句読点 (ASCII と全角)
var ignoredPunctuation = map[rune]struct{}{
	',': {}, '、': {}, '。': {}, '！': {}, '？': {}, '!': {}, '?': {},
}

// Normalize は解答比較用の正規形を返します。
// 小文字化し、空白と句読点を取り除きます。
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		if _, ok := ignoredPunctuation[r]; ok {
			return -1
		}
		return r
	}, lowered)
	return strings.TrimSpace(stripped)
}

// SplitCandidates はカンマ区切りの正解文字列を候補に分割します。
// 各候補は前後の空白を除き、空の候補は捨てます。
func SplitCandidates(field string) []string {
	parts := lo.Map(strings.Split(field, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(parts)
}
