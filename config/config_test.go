package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	// WHAT: zero config fills in db path, listen address and model.
	cfg := Default()
	if cfg.DBPath != "newslens.db" || cfg.Listen != ":8000" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Generator.Model == "" {
		t.Fatal("model default missing")
	}
}

func TestLoadFile(t *testing.T) {
	// WHAT: explicit values survive loading, omitted ones get defaults.
	path := filepath.Join(t.TempDir(), "newslens.yaml")
	body := `
db_path: /var/lib/newslens/news.db
generator:
  model: command-r
  keyword_window: 24h
  verify_highlights: true
ingest:
  article_dump: article_data.json
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/var/lib/newslens/news.db" {
		t.Fatalf("db_path = %q", cfg.DBPath)
	}
	if cfg.Listen != ":8000" {
		t.Fatalf("listen default = %q", cfg.Listen)
	}
	if cfg.Generator.Model != "command-r" || cfg.Generator.KeywordWindow.Std() != 24*time.Hour {
		t.Fatalf("generator = %+v", cfg.Generator)
	}
	if !cfg.Generator.VerifyHighlights {
		t.Fatal("verify_highlights lost")
	}
	if cfg.Ingest.ArticleDump != "article_data.json" {
		t.Fatalf("ingest = %+v", cfg.Ingest)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/newslens.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
