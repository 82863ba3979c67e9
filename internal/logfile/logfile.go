// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logfile implements the codec for the flat local log format.
//
// A log file is a sequence of blocks:
//
//	<header line>
//	--
//	<body text>
//	<blank line>
//
// where a header line matches `^\d+/\d+/\d+ ` (the whole line, not just the
// date prefix, is the entry key). Literal "--" separator lines are never part
// of a body. Parse and Serialize form a round trip: Parse(Serialize(l)) is
// equal to l for any log produced by Parse.
package logfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-keeplog/models"
)

// ErrParse is returned (wrapped) when the local log file is malformed.
// Any parse failure is whole-file fatal: the pass aborts before any remote
// mutation is attempted.
var ErrParse = errors.New("malformed log file")

var headerPattern = regexp.MustCompile(`^\d+/\d+/\d+ `)

const separatorLine = "--"

// IsHeader reports whether line is an entry header (and therefore a valid
// entry key).
func IsHeader(line string) bool {
	return headerPattern.MatchString(line)
}

// Log is an ordered mapping from entry key to entry text. Keys keep the
// order in which they were first inserted, so a rewrite of the local file is
// deterministic: original file order first, newly pulled keys appended in
// the order they were set.
type Log struct {
	keys    []string
	entries map[string]string
}

// New returns an empty Log.
func New() *Log {
	return &Log{entries: make(map[string]string)}
}

// Set stores text under key. A key seen for the first time is appended to
// the key order; setting an existing key replaces its text in place.
func (l *Log) Set(key, text string) {
	if _, ok := l.entries[key]; !ok {
		l.keys = append(l.keys, key)
	}
	l.entries[key] = text
}

// Get returns the text stored under key.
func (l *Log) Get(key string) (string, bool) {
	text, ok := l.entries[key]
	return text, ok
}

// Has reports whether key is present.
func (l *Log) Has(key string) bool {
	_, ok := l.entries[key]
	return ok
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.keys)
}

// Keys returns the entry keys in insertion order. The returned slice is a
// copy.
func (l *Log) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// Entries returns all entries in insertion order.
func (l *Log) Entries() []models.Entry {
	out := make([]models.Entry, 0, len(l.keys))
	for _, k := range l.keys {
		out = append(out, models.Entry{Key: k, Text: l.entries[k]})
	}
	return out
}

// Parse scans raw into an ordered Log.
//
// A header line opens a new entry. If the same header recurs later in the
// file, the later occurrence replaces the earlier one's content for that key
// (last write wins; pinned by tests). Separator lines are skipped wherever
// they appear. Every other line is appended to the open entry's text.
//
// A content line before the first header has no entry to belong to and makes
// the whole file malformed: Parse returns a wrapped [ErrParse] naming the
// line number.
//
// After scanning, each entry's trailing blank lines are collapsed so the
// text ends in exactly one newline. The identical normalization feeds both
// fingerprinting and comparison; without it a cosmetic trailing blank line
// would be misdetected as a content change.
func Parse(raw []byte) (*Log, error) {
	l := New()

	var current string
	haveCurrent := false

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case IsHeader(line):
			current = strings.TrimRight(line, " \t\r")
			haveCurrent = true
			// A duplicate header resets the entry: earlier content for the
			// same key is discarded.
			l.Set(current, "")
		case strings.TrimSpace(line) == separatorLine:
			// skip
		case !haveCurrent:
			return nil, fmt.Errorf("%w: line %d: content before first entry header", ErrParse, lineNo)
		default:
			l.entries[current] += line + "\n"
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	for key, text := range l.entries {
		l.entries[key] = trimTrailingBlankLines(text)
	}

	return l, nil
}

// ParseFile reads and parses the log file at path. A missing file parses as
// an empty log, so a first pass against a fresh machine can still pull the
// remote entries down.
func ParseFile(path string) (*Log, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return Parse(raw)
}

// Serialize renders the log back into the flat file format, in key order.
// Each block is emitted as header, separator, text; a newline is appended
// when the text does not already end in one, and blocks are separated by
// exactly one blank line.
func Serialize(l *Log) []byte {
	var buf bytes.Buffer
	for _, key := range l.keys {
		text := l.entries[key]

		buf.WriteString(key)
		buf.WriteString("\n")
		buf.WriteString(separatorLine)
		buf.WriteString("\n")
		buf.WriteString(text)
		if text != "" && !strings.HasSuffix(text, "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// WriteFile serializes l and atomically replaces the file at path
// (write-temp-then-rename), so a crash mid-write never leaves a truncated
// log behind. The caller is responsible for taking a backup first.
func WriteFile(path string, l *Log) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp log file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(Serialize(l)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp log file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp log file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace log file: %w", err)
	}

	return nil
}

// trimTrailingBlankLines collapses one or more trailing blank lines into a
// single trailing newline. A body consisting of blank lines only collapses
// to the empty string, which keeps Parse/Serialize a stable round trip for
// entries with no content.
func trimTrailingBlankLines(text string) string {
	for strings.HasSuffix(text, "\n\n") {
		text = text[:len(text)-1]
	}
	if text == "\n" {
		return ""
	}
	return text
}
