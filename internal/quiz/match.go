package quiz

import "strings"

// MatchResult は1フィールド分の照合結果
type MatchResult struct {
	Matched   bool
	Candidate string // 一致した候補の元の表記
}

// Match は解答を正解候補と順に照合し、最初に一致した候補を返します。
// 比較は Normalize 後の完全一致のみです。
func Match(answer string, accepted []string) MatchResult {
	want := Normalize(answer)
	if want == "" {
		return MatchResult{}
	}
	for _, candidate := range accepted {
		if Normalize(candidate) == want {
			return MatchResult{Matched: true, Candidate: strings.TrimSpace(candidate)}
		}
	}
	return MatchResult{}
}
