package logfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Parse ────────────────────────────────────────────────────────────────────

func TestParse_TwoEntries(t *testing.T) {
	raw := []byte("01/02/20 first\n--\nHello world\n\n01/03/20 second\n--\nline one\nline two\n\n")

	l, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"01/02/20 first", "01/03/20 second"}, l.Keys())

	text, ok := l.Get("01/02/20 first")
	require.True(t, ok)
	assert.Equal(t, "Hello world\n", text)

	text, ok = l.Get("01/03/20 second")
	require.True(t, ok)
	assert.Equal(t, "line one\nline two\n", text)
}

func TestParse_LiteralScenario(t *testing.T) {
	// The exact file from the sync walkthrough: one entry, one body line.
	l, err := Parse([]byte("01/02/20 note\n--\nHello world\n\n"))
	require.NoError(t, err)

	require.Equal(t, 1, l.Len())
	text, ok := l.Get("01/02/20 note")
	require.True(t, ok)
	assert.Equal(t, "Hello world\n", text)
}

func TestParse_SeparatorLinesNeverEnterBody(t *testing.T) {
	raw := []byte("01/02/20 note\n--\nabove\n--\nbelow\n\n")

	l, err := Parse(raw)
	require.NoError(t, err)

	text, _ := l.Get("01/02/20 note")
	assert.Equal(t, "above\nbelow\n", text)
}

// TestParse_DuplicateHeaderLastWins pins the behavior for a header line
// recurring within one file: the later occurrence replaces the earlier
// content entirely, and the key keeps its original position.
func TestParse_DuplicateHeaderLastWins(t *testing.T) {
	raw := []byte("01/02/20 dup\n--\nold content\n\n01/03/20 other\n--\nmiddle\n\n01/02/20 dup\n--\nnew content\n\n")

	l, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"01/02/20 dup", "01/03/20 other"}, l.Keys())

	text, _ := l.Get("01/02/20 dup")
	assert.Equal(t, "new content\n", text)
}

func TestParse_TrailingBlankLinesCollapse(t *testing.T) {
	raw := []byte("01/02/20 note\n--\nbody\n\n\n\n")

	l, err := Parse(raw)
	require.NoError(t, err)

	text, _ := l.Get("01/02/20 note")
	assert.Equal(t, "body\n", text)
}

func TestParse_InteriorBlankLinesKept(t *testing.T) {
	raw := []byte("01/02/20 note\n--\npara one\n\npara two\n\n")

	l, err := Parse(raw)
	require.NoError(t, err)

	text, _ := l.Get("01/02/20 note")
	assert.Equal(t, "para one\n\npara two\n", text)
}

func TestParse_ContentBeforeFirstHeader(t *testing.T) {
	_, err := Parse([]byte("stray line\n01/02/20 note\n--\nbody\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParse_EmptyInput(t *testing.T) {
	l, err := Parse(nil)
	require.NoError(t, err)
	assert.Zero(t, l.Len())
}

func TestParse_HeaderRequiresDateLikePrefix(t *testing.T) {
	// "12/31 note" has only two numeric groups; it is not a header and, with
	// no entry open, makes the file malformed.
	_, err := Parse([]byte("12/31 note\n--\nbody\n"))
	assert.ErrorIs(t, err, ErrParse)
}

// ── Serialize / round trip ───────────────────────────────────────────────────

func TestSerialize_LiteralScenario(t *testing.T) {
	l := New()
	l.Set("01/02/20 note", "Hello world\n")

	assert.Equal(t, "01/02/20 note\n--\nHello world\n\n", string(Serialize(l)))
}

func TestSerialize_AppendsMissingNewline(t *testing.T) {
	l := New()
	l.Set("01/02/20 note", "no trailing newline")

	assert.Equal(t, "01/02/20 note\n--\nno trailing newline\n\n", string(Serialize(l)))
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"single entry", "01/02/20 note\n--\nHello world\n\n"},
		{"multiple entries", "01/02/20 a\n--\none\n\n02/03/20 b\n--\ntwo\nthree\n\n"},
		{"interior blank lines", "01/02/20 a\n--\npara\n\npara two\n\n"},
		{"entry without body", "01/02/20 empty\n--\n\n01/03/20 b\n--\nx\n\n"},
		{"extra trailing blanks", "01/02/20 a\n--\nbody\n\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := Parse([]byte(tt.raw))
			require.NoError(t, err)

			second, err := Parse(Serialize(first))
			require.NoError(t, err)

			require.Equal(t, first.Keys(), second.Keys())
			for _, key := range first.Keys() {
				want, _ := first.Get(key)
				got, _ := second.Get(key)
				assert.Equal(t, want, got, "key %q", key)
			}
		})
	}
}

// ── Log ordering ─────────────────────────────────────────────────────────────

func TestLog_SetAppendsNewKeysInOrder(t *testing.T) {
	l := New()
	l.Set("01/02/20 a", "one\n")
	l.Set("01/03/20 b", "two\n")
	l.Set("01/02/20 a", "replaced\n") // existing key keeps its position
	l.Set("01/04/20 c", "three\n")

	assert.Equal(t, []string{"01/02/20 a", "01/03/20 b", "01/04/20 c"}, l.Keys())

	text, _ := l.Get("01/02/20 a")
	assert.Equal(t, "replaced\n", text)
}

// ── Files ────────────────────────────────────────────────────────────────────

func TestParseFile_MissingFileIsEmptyLog(t *testing.T) {
	l, err := ParseFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, err)
	assert.Zero(t, l.Len())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	l := New()
	l.Set("01/02/20 a", "one\n")
	l.Set("01/03/20 b", "two\n")
	require.NoError(t, WriteFile(path, l))

	got, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, l.Keys(), got.Keys())

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteFile_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("01/01/20 old\n--\nold\n\n"), 0o644))

	l := New()
	l.Set("01/02/20 new", "new\n")
	require.NoError(t, WriteFile(path, l))

	got, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"01/02/20 new"}, got.Keys())
}
