package store

// Schema is the complete newslens schema.
const Schema = `
-- Press companies, keyed by the portal's three-digit press code
CREATE TABLE IF NOT EXISTS press (
    id        TEXT PRIMARY KEY,
    name      TEXT NOT NULL UNIQUE,
    logo_url  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS authors (
    id          TEXT PRIMARY KEY,
    author_key  TEXT NOT NULL,
    name        TEXT NOT NULL,
    press_id    TEXT NOT NULL REFERENCES press(id)
);

CREATE TABLE IF NOT EXISTS articles (
    id                 TEXT PRIMARY KEY,
    title              TEXT NOT NULL,
    url                TEXT NOT NULL UNIQUE,
    content            TEXT NOT NULL,
    published_at       INTEGER NOT NULL,
    edited_at          INTEGER,
    genre              TEXT NOT NULL DEFAULT '',
    ranking            INTEGER NOT NULL DEFAULT 0,
    activity_score     REAL NOT NULL DEFAULT 0,
    author_id          TEXT NOT NULL DEFAULT '',
    press_id           TEXT NOT NULL DEFAULT '',
    narrative_summary  TEXT,
    media_bias         TEXT,
    reporting_bias     TEXT
);
CREATE INDEX IF NOT EXISTS idx_articles_score ON articles(activity_score DESC);
CREATE INDEX IF NOT EXISTS idx_articles_genre ON articles(genre, activity_score DESC);

-- Dialogue lines, one batch per article; position follows generation order
CREATE TABLE IF NOT EXISTS chat_lines (
    id          TEXT PRIMARY KEY,
    article_id  TEXT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    speaker_id  INTEGER NOT NULL,
    speaker     TEXT NOT NULL,
    content     TEXT NOT NULL,
    UNIQUE(article_id, position)
);
CREATE INDEX IF NOT EXISTS idx_chat_lines_article ON chat_lines(article_id, position);

-- Analogized retelling, 1:1 with the article
CREATE TABLE IF NOT EXISTS story_summaries (
    article_id       TEXT PRIMARY KEY REFERENCES articles(id) ON DELETE CASCADE,
    story            TEXT NOT NULL,
    dictionary_json  TEXT NOT NULL DEFAULT '{}'
);

-- Focus-reading mode artifact, 1:1 with the article
CREATE TABLE IF NOT EXISTS highlighted_articles (
    article_id        TEXT PRIMARY KEY REFERENCES articles(id) ON DELETE CASCADE,
    highlighted_text  TEXT NOT NULL
);

-- Keyword-of-the-day summary, one row per calendar date
CREATE TABLE IF NOT EXISTS keyword_summaries (
    id             TEXT PRIMARY KEY,
    date           TEXT NOT NULL UNIQUE,
    keywords_json  TEXT NOT NULL,
    created_at     INTEGER NOT NULL
);
`
