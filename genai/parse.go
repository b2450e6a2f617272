package genai

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

type dialogueEntry struct {
	ID      *int    `json:"id"`
	Speaker *string `json:"speaker"`
	Content *string `json:"content"`
}

// ParseDialogue converts an extracted payload into ordered dialogue lines.
// The payload is a JSON object keyed by ordinal position; keys like "3" and
// " 3 " are both accepted. Any missing required field fails the whole parse.
func ParseDialogue(payload string) ([]DialogueLine, error) {
	var entries map[string]dialogueEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, &ParseError{Kind: "dialogue", Reason: "not a mapping of objects: " + err.Error(), Raw: payload}
	}
	if len(entries) == 0 {
		return nil, &ParseError{Kind: "dialogue", Reason: "empty mapping", Raw: payload}
	}

	lines := make([]DialogueLine, 0, len(entries))
	for key, e := range entries {
		pos, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, &ParseError{Kind: "dialogue", Reason: "non-ordinal key " + strconv.Quote(key), Raw: payload}
		}
		if e.ID == nil || e.Speaker == nil || e.Content == nil {
			return nil, &ParseError{Kind: "dialogue", Reason: "entry " + key + " missing id/speaker/content", Raw: payload}
		}
		lines = append(lines, DialogueLine{
			Position:  pos,
			SpeakerID: *e.ID,
			Speaker:   *e.Speaker,
			Content:   *e.Content,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })
	return lines, nil
}

type narrativePayload struct {
	Narrative  string            `json:"narrative"`
	Dictionary map[string]string `json:"dictionary"`
}

// ParseNarrative accepts either a single object or a singleton list holding
// {"narrative": ..., "dictionary": {...}}. Missing fields become zero values;
// only a payload that is not structured data at all fails.
func ParseNarrative(payload string) (*Narrative, error) {
	var p narrativePayload

	var list []narrativePayload
	if err := json.Unmarshal([]byte(payload), &list); err == nil {
		if len(list) > 0 {
			p = list[0]
		}
	} else if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, &ParseError{Kind: "narrative", Reason: "neither object nor list: " + err.Error(), Raw: payload}
	}

	if p.Dictionary == nil {
		p.Dictionary = map[string]string{}
	}
	return &Narrative{Story: p.Narrative, Dictionary: p.Dictionary}, nil
}

type keywordEntryPayload struct {
	Keyword *string `json:"keyword"`
	Score   *int    `json:"score"`
}

type keywordsPayload struct {
	Keywords *[]keywordEntryPayload `json:"keywords"`
}

// ParseKeywords expects {"keywords": [{"keyword": ..., "score": ...}, ...]}.
// A missing list or a malformed entry fails the parse; score range is not
// validated here.
func ParseKeywords(payload string) ([]Keyword, error) {
	var p keywordsPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, &ParseError{Kind: "keywords", Reason: "not an object: " + err.Error(), Raw: payload}
	}
	if p.Keywords == nil {
		return nil, &ParseError{Kind: "keywords", Reason: `missing "keywords" list`, Raw: payload}
	}

	out := make([]Keyword, 0, len(*p.Keywords))
	for i, e := range *p.Keywords {
		if e.Keyword == nil || strings.TrimSpace(*e.Keyword) == "" || e.Score == nil {
			return nil, &ParseError{Kind: "keywords", Reason: "entry " + strconv.Itoa(i) + " missing keyword or score", Raw: payload}
		}
		out = append(out, Keyword{Keyword: strings.TrimSpace(*e.Keyword), Score: *e.Score})
	}
	return out, nil
}

type biasPayload struct {
	MediaBias     *string `json:"media_bias"`
	ReportingBias *string `json:"reporting_bias"`
}

// ParseBias expects {"media_bias": ..., "reporting_bias": ...}. Both fields
// must be present; vocabulary membership is not checked (the generator's
// label is stored as-is).
func ParseBias(payload string) (*Bias, error) {
	var p biasPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, &ParseError{Kind: "bias", Reason: "not an object: " + err.Error(), Raw: payload}
	}
	if p.MediaBias == nil || p.ReportingBias == nil {
		return nil, &ParseError{Kind: "bias", Reason: "missing media_bias or reporting_bias", Raw: payload}
	}
	return &Bias{MediaBias: *p.MediaBias, ReportingBias: *p.ReportingBias}, nil
}
