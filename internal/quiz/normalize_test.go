package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "読点を除去", input: "にほん、", want: "にほん"},
		{name: "カンマと空白を除去して小文字化", input: "Cat, ", want: "cat"},
		{name: "全角の感嘆符・疑問符", input: "はい！？", want: "はい"},
		{name: "ASCIIの感嘆符・疑問符", input: "yes!?", want: "yes"},
		{name: "句点", input: "ねこ。", want: "ねこ"},
		{name: "内部の空白も除去", input: " ni hon ", want: "nihon"},
		{name: "全角スペース", input: "に　ほん", want: "にほん"},
		{name: "空文字", input: "", want: ""},
		{name: "句読点のみ", input: "、。！？,!?", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Equivalence(t *testing.T) {
	assert.Equal(t, Normalize("にほん"), Normalize("にほん、"))
	assert.Equal(t, Normalize("cat"), Normalize("Cat, "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"にほん、", "Cat, ", " A b C ! ", "日本。", "", "재팬 ?", "ＡＢＣ"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input=%q", in)
	}
}

func TestSplitCandidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "単一", input: "にほん", want: []string{"にほん"}},
		{name: "複数と空白", input: " 일본 , 재팬 ", want: []string{"일본", "재팬"}},
		{name: "空の候補は捨てる", input: "a,,b, ,", want: []string{"a", "b"}},
		{name: "空文字", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCandidates(tt.input))
		})
	}
}
