package genai

import "testing"

func TestExtract_FencedJSON(t *testing.T) {
	// WHAT: a standard ```json fence around a payload is stripped.
	// WHY: generators wrap JSON in fences more often than not; downstream
	// parsers only ever see the bare payload.
	raw := "```json\n{\"a\": 1}\n```"
	if got := Extract(raw); got != `{"a": 1}` {
		t.Fatalf("got %q", got)
	}
}

func TestExtract_Variants(t *testing.T) {
	// WHAT: fences with no language tag, tilde fences, extra whitespace and
	// longer backtick runs all strip to the same payload.
	// WHY: fence shape varies by model; extraction must not depend on it.
	cases := []struct {
		name string
		raw  string
	}{
		{"no language tag", "```\n{\"a\": 1}\n```"},
		{"tildes", "~~~\n{\"a\": 1}\n~~~"},
		{"surrounding whitespace", "  \n```json\n{\"a\": 1}\n```  \n"},
		{"long fence", "`````\n{\"a\": 1}\n`````"},
		{"unfenced", "{\"a\": 1}"},
	}
	for _, tc := range cases {
		if got := Extract(tc.raw); got != `{"a": 1}` {
			t.Errorf("%s: got %q", tc.name, got)
		}
	}
}

func TestExtract_Idempotent(t *testing.T) {
	// WHAT: applying Extract to its own output changes nothing.
	// WHY: upstream callers may run Extract more than once; a second pass
	// eating into the payload would corrupt artifacts.
	inputs := []string{
		"```json\n{\"a\": 1}\n```",
		"{\"a\": 1}",
		"```\n```\n{}",
		"plain prose answer",
		"",
	}
	for _, raw := range inputs {
		once := Extract(raw)
		if twice := Extract(once); twice != once {
			t.Errorf("not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

func TestExtract_KeepsInteriorFences(t *testing.T) {
	// WHAT: backticks inside the payload body survive extraction.
	// WHY: only the outer wrapper is decoration; interior code spans can be
	// legitimate artifact content.
	raw := "```\nuse `go test` here\n```"
	if got := Extract(raw); got != "use `go test` here" {
		t.Fatalf("got %q", got)
	}
}
