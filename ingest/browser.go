package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// Browser renders article pages through a headless Chrome. The portal's
// article pages populate comment and reaction counts client-side, so a plain
// GET misses them.
type Browser struct {
	browser *rod.Browser
	lnch    *launcher.Launcher
	logger  *slog.Logger
}

// NewBrowser launches a local headless Chrome and connects to it.
func NewBrowser(logger *slog.Logger) (*Browser, error) {
	if logger == nil {
		logger = slog.Default()
	}

	l := launcher.New().
		Headless(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("no-sandbox")

	wsURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("browser: launch: %w", err)
	}

	b := rod.New().ControlURL(wsURL)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("browser: connect: %w", err)
	}

	logger.Info("browser: launched local chrome", "url", wsURL)
	return &Browser{browser: b, lnch: l, logger: logger}, nil
}

// HTML navigates to a URL in a fresh stealth tab, waits for the page to
// settle, scrolls to the bottom to trigger lazy loads, and returns the
// rendered document.
func (b *Browser) HTML(ctx context.Context, pageURL string) (string, error) {
	page, err := stealth.Page(b.browser)
	if err != nil {
		return "", fmt.Errorf("browser: create tab: %w", err)
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		return "", fmt.Errorf("browser: navigate %s: %w", pageURL, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		b.logger.Warn("browser: wait load timeout", "url", pageURL, "error", err)
	}

	// Lazy-loaded sections render on scroll.
	if _, err := page.Context(navCtx).Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); err != nil {
		b.logger.Warn("browser: scroll failed", "url", pageURL, "error", err)
	}
	time.Sleep(time.Second)

	res, err := page.Context(navCtx).Eval(`() => document.documentElement.outerHTML`)
	if err != nil {
		return "", fmt.Errorf("browser: read DOM: %w", err)
	}
	return res.Value.Str(), nil
}

// Close shuts the browser down and kills the launched Chrome.
func (b *Browser) Close() error {
	err := b.browser.Close()
	if b.lnch != nil {
		b.lnch.Cleanup()
	}
	return err
}
