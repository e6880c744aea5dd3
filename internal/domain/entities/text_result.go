package entities

import "strings"

type TextResult struct {
	text string

	// 応答したモデル
	model string
}

func NewTextResult(text string, model string) *TextResult {
	return &TextResult{
		text:  text,
		model: model,
	}
}

func (r *TextResult) Text() string {
	return r.text
}

// TrimmedText is the response text with surrounding whitespace removed.
func (r *TextResult) TrimmedText() string {
	return strings.TrimSpace(r.text)
}

func (r *TextResult) Model() string {
	return r.model
}
