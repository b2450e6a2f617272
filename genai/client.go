package genai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Client groups the per-kind generation calls against one Generator and one
// fixed model identifier. It performs no persistence.
type Client struct {
	gen    Generator
	model  string
	logger *slog.Logger
}

// NewClient creates a Client. model is passed unchanged to every completion.
func NewClient(gen Generator, model string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{gen: gen, model: model, logger: logger}
}

// complete performs the single generator round-trip shared by all kinds and
// returns the fence-stripped payload.
func (c *Client) complete(ctx context.Context, kind, system, user string) (string, error) {
	raw, err := c.gen.Complete(ctx, c.model, []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	})
	if err != nil {
		return "", fmt.Errorf("%s generation: %w", kind, err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s generation: %w", kind, ErrEmptyGeneration)
	}
	return Extract(raw), nil
}

func (c *Client) logMalformed(kind, raw string) {
	c.logger.Warn("malformed generator response", "kind", kind, "raw", truncate(raw, 2000))
}

// Dialogue generates the conversational retelling of an article body.
func (c *Client) Dialogue(ctx context.Context, content string) ([]DialogueLine, error) {
	payload, err := c.complete(ctx, "dialogue", promptDialogueSystem, fmt.Sprintf(promptDialogueUser, content))
	if err != nil {
		return nil, err
	}
	lines, err := ParseDialogue(payload)
	if err != nil {
		c.logMalformed("dialogue", payload)
		return nil, err
	}
	return lines, nil
}

// Narrative generates the analogized retelling. Dictionary terms come back
// padded to equal display width so swapping analogy for real term keeps the
// story text visually aligned.
func (c *Client) Narrative(ctx context.Context, content string) (*Narrative, error) {
	payload, err := c.complete(ctx, "narrative", promptNarrativeSystem, fmt.Sprintf(promptNarrativeUser, content))
	if err != nil {
		return nil, err
	}
	n, err := ParseNarrative(payload)
	if err != nil {
		c.logMalformed("narrative", payload)
		return nil, err
	}
	n.Dictionary = padDictionary(n.Dictionary)
	return n, nil
}

// Highlight generates the focus-reading artifact: the article body with
// [[highlight]] spans inserted. The trimmed raw output is the artifact;
// there is no structural parse.
func (c *Client) Highlight(ctx context.Context, content string) (string, error) {
	raw, err := c.gen.Complete(ctx, c.model, []Message{
		{Role: RoleSystem, Content: promptHighlightSystem},
		{Role: RoleUser, Content: fmt.Sprintf(promptHighlightUser, content)},
	})
	if err != nil {
		return "", fmt.Errorf("highlight generation: %w", err)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("highlight generation: %w", ErrEmptyGeneration)
	}
	return text, nil
}

// DailyKeywords generates today's keywords from the given title list.
func (c *Client) DailyKeywords(ctx context.Context, titles []string) ([]Keyword, error) {
	var b strings.Builder
	for _, t := range titles {
		b.WriteString("- ")
		b.WriteString(t)
		b.WriteString("\n")
	}
	payload, err := c.complete(ctx, "keywords", promptKeywordsSystem, fmt.Sprintf(promptKeywordsUser, b.String()))
	if err != nil {
		return nil, err
	}
	kws, err := ParseKeywords(payload)
	if err != nil {
		c.logMalformed("keywords", payload)
		return nil, err
	}
	return kws, nil
}

// Bias labels a politics article's media leaning and reporting bias.
// pressName is the outlet's display name, used only in the prompt.
func (c *Client) Bias(ctx context.Context, pressName, content string) (*Bias, error) {
	payload, err := c.complete(ctx, "bias", promptBiasSystem, fmt.Sprintf(promptBiasUser, pressName, content))
	if err != nil {
		return nil, err
	}
	bias, err := ParseBias(payload)
	if err != nil {
		c.logMalformed("bias", payload)
		return nil, err
	}
	return bias, nil
}

// padDictionary pads every analogy term and its real term with surrounding
// spaces to a common display width, so substituting one for the other in the
// story text does not shift the layout.
func padDictionary(dict map[string]string) map[string]string {
	out := make(map[string]string, len(dict))
	for analog, real := range dict {
		width := utf8.RuneCountInString(analog)
		if w := utf8.RuneCountInString(real); w > width {
			width = w
		}
		out[padTo(analog, width)] = padTo(real, width)
	}
	return out
}

func padTo(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
