package ingest

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/microcosm-cc/bluemonday"
)

// Cleaner turns a scraped HTML fragment into clean article text: sanitize
// the markup first, then convert what survives to markdown-flavored text.
type Cleaner struct {
	policy *bluemonday.Policy
	conv   *converter.Converter
}

func NewCleaner() *Cleaner {
	return &Cleaner{
		policy: bluemonday.UGCPolicy(),
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Text sanitizes and converts an HTML fragment. The result is trimmed;
// empty input yields an empty string without error.
func (c *Cleaner) Text(html string) (string, error) {
	safe := c.policy.Sanitize(html)
	md, err := c.conv.ConvertString(safe)
	if err != nil {
		return "", fmt.Errorf("convert article body: %w", err)
	}
	return strings.TrimSpace(md), nil
}
