// Package reading は漢字の読み (ひらがな) の候補を形態素解析で求めます。
// 単語追加時の入力補助用で、採点には使いません。
package reading

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"go_4_kanji_quiz/internal/model"
)

// IPA 辞書の素性のうち読み (カタカナ) の位置
const readingFeature = 7

// Suggester は kagome のトークナイザを保持します。並行利用できます。
type Suggester struct {
	t *tokenizer.Tokenizer
}

func NewSuggester() (*Suggester, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Suggester{t: t}, nil
}

// Suggest は text の読みをひらがなで返します。
// 辞書に読みがない部分 (記号や未知語) は表記のまま残します。
func (s *Suggester) Suggest(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", model.NewValidationError("kanji", "漢字を入力してください。")
	}

	var b strings.Builder
	for _, token := range s.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		if len(features) > readingFeature && features[readingFeature] != "*" {
			b.WriteString(features[readingFeature])
			continue
		}
		b.WriteString(token.Surface)
	}
	return ToHiragana(b.String()), nil
}

// ToHiragana はカタカナ (ァ〜ヶ) をひらがなに変換します。長音符などはそのまま残します。
func ToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - ('ァ' - 'ぁ')
		}
		return r
	}, s)
}
