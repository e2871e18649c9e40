// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data and configuration types for bibcite.
package types

// Entry is a flat bibliographic record: lowercased field names mapped to
// raw values, as produced by the BibTeX and RIS parsers and the Crossref
// client. Two uppercase keys are carried over from the BibTeX ecosystem:
// "ENTRYTYPE" (article, book, ...) and "ID" (the citekey).
type Entry map[string]string

// Field returns the value for key, or "" when the key is absent. A
// missing field is never an error; templates render around empty values.
func (e Entry) Field(key string) string { return e[key] }

// Citekey returns the entry's citekey, or "" when none was assigned.
func (e Entry) Citekey() string { return e["ID"] }
