// Package insight parses responses from the generative-AI collaborator
// into entry drafts. The service itself never calls the AI provider;
// it only consumes opaque response text handed over the boundary.
package insight

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Draft is a pre-validation entry candidate extracted from an AI
// response: the analysis endpoint answers with JSON carrying a title,
// a description and a tag list.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Model responses often wrap JSON in a markdown code fence.
var fenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// ParseDraft extracts a Draft from a raw AI response. Malformed JSON
// degrades gracefully: the raw text becomes the draft description
// instead of a parse error propagating into catalog state.
func ParseDraft(raw string) Draft {
	text := strings.TrimSpace(raw)
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	var draft Draft
	if err := json.Unmarshal([]byte(text), &draft); err != nil || draft.emptyShape() {
		return Draft{Description: raw, Tags: []string{}}
	}
	if draft.Tags == nil {
		draft.Tags = []string{}
	}
	return draft
}

// emptyShape reports whether the unmarshal produced nothing usable,
// which happens when the text is valid JSON of an unrelated shape.
func (d Draft) emptyShape() bool {
	return d.Title == "" && d.Description == "" && len(d.Tags) == 0
}
