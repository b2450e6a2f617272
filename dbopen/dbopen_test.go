package dbopen_test

import (
	"testing"

	"github.com/hcinews/newslens/dbopen"
)

func TestOpenAppliesPragmas(t *testing.T) {
	// WHAT: Open sets foreign_keys, busy_timeout and synchronous.
	// WHY: the store relies on FK cascades and concurrent readers.
	db := dbopen.OpenMemory(t)

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatal(err)
	}
	if fk != 1 {
		t.Fatalf("foreign_keys = %d, want 1", fk)
	}

	var busy int
	if err := db.QueryRow("PRAGMA busy_timeout").Scan(&busy); err != nil {
		t.Fatal(err)
	}
	if busy != 10_000 {
		t.Fatalf("busy_timeout = %d, want 10000", busy)
	}

	var sync int
	if err := db.QueryRow("PRAGMA synchronous").Scan(&sync); err != nil {
		t.Fatal(err)
	}
	if sync != 1 { // NORMAL
		t.Fatalf("synchronous = %d, want 1", sync)
	}
}

func TestWithSchema(t *testing.T) {
	// WHAT: inline schema runs at open time.
	// WHY: cmd/newslens boots the full store schema this way.
	db := dbopen.OpenMemory(t, dbopen.WithSchema(`CREATE TABLE demo (id TEXT PRIMARY KEY)`))
	if _, err := db.Exec(`INSERT INTO demo (id) VALUES ('a')`); err != nil {
		t.Fatalf("insert into schema table: %v", err)
	}
}

func TestOpenBadSchema(t *testing.T) {
	// WHAT: a broken schema fails Open instead of returning a half-open DB.
	_, err := dbopen.Open(":memory:", dbopen.WithSchema("NOT SQL"))
	if err == nil {
		t.Fatal("want error for invalid schema")
	}
}
