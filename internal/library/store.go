// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists bibliographic entries in a local SQLite file
// so fetched or parsed entries can be re-rendered without another parse
// or network round trip.
package library

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kemu-chem/bibcite/internal/cite"
	"github.com/kemu-chem/bibcite/pkg/types"
)

// ErrNotFound reports a citekey with no stored entry.
var ErrNotFound = errors.New("entry not found")

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	citekey  TEXT PRIMARY KEY,
	kind     TEXT NOT NULL,
	fields   TEXT NOT NULL,
	added_at TEXT NOT NULL
);
`

// Store manages the bibliography SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating the schema and any
// missing parent directories.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening library database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save upserts one entry and returns its citekey. Entries without a
// citekey get one derived from the first author's family name and the
// year ("Dmitrienko1990"); collisions get a numeric suffix.
func (s *Store) Save(e types.Entry) (string, error) {
	key := e.Citekey()
	if key == "" {
		derived, err := s.deriveKey(e)
		if err != nil {
			return "", err
		}
		key = derived
	}

	fields, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("encoding entry: %w", err)
	}
	kind := strings.ToLower(e.Field("ENTRYTYPE"))
	if kind == "" {
		kind = "article"
	}

	_, err = s.db.Exec(`
		INSERT INTO entries (citekey, kind, fields, added_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(citekey) DO UPDATE SET
			kind = excluded.kind,
			fields = excluded.fields`,
		key, kind, string(fields), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("saving entry %s: %w", key, err)
	}
	return key, nil
}

// Get returns the entry stored under citekey, or ErrNotFound.
func (s *Store) Get(citekey string) (types.Entry, error) {
	var fields string
	err := s.db.QueryRow(`SELECT fields FROM entries WHERE citekey = ?`, citekey).Scan(&fields)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, citekey)
	}
	if err != nil {
		return nil, fmt.Errorf("reading entry %s: %w", citekey, err)
	}
	return decodeEntry(citekey, fields)
}

// List returns all stored entries ordered by citekey.
func (s *Store) List() ([]types.Entry, error) {
	rows, err := s.db.Query(`SELECT citekey, fields FROM entries ORDER BY citekey`)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []types.Entry
	for rows.Next() {
		var key, fields string
		if err := rows.Scan(&key, &fields); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e, err := decodeEntry(key, fields)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the entry under citekey, or returns ErrNotFound.
func (s *Store) Delete(citekey string) error {
	res, err := s.db.Exec(`DELETE FROM entries WHERE citekey = ?`, citekey)
	if err != nil {
		return fmt.Errorf("deleting entry %s: %w", citekey, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, citekey)
	}
	return nil
}

var keyCleanRe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// deriveKey builds "FamilyYear" from the entry, with a numeric suffix if
// that key is already taken by another entry.
func (s *Store) deriveKey(e types.Entry) (string, error) {
	base := "ref"
	if authors := cite.ParseAuthors(e.Field("author")); len(authors) > 0 {
		if fam := keyCleanRe.ReplaceAllString(authors[0].Family, ""); fam != "" {
			base = fam
		}
	}
	base += e.Field("year")

	key := base
	for n := 2; ; n++ {
		var exists int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM entries WHERE citekey = ?`, key).Scan(&exists)
		if err != nil {
			return "", fmt.Errorf("deriving citekey: %w", err)
		}
		if exists == 0 {
			return key, nil
		}
		key = fmt.Sprintf("%s-%d", base, n)
	}
}

func decodeEntry(citekey, fields string) (types.Entry, error) {
	var e types.Entry
	if err := json.Unmarshal([]byte(fields), &e); err != nil {
		return nil, fmt.Errorf("decoding entry %s: %w", citekey, err)
	}
	e["ID"] = citekey
	return e, nil
}
