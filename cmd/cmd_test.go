package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepdeck/internal/spacedrep"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/vocab"
)

const wordList = `[
	{"id": 1, "front": "爱", "back": {"meaning": "to love", "hanzi_pinyin": "ài", "part_of_speech": "verb"}},
	{"id": 2, "front": "八", "back": {"meaning": "eight", "hanzi_pinyin": "bā", "part_of_speech": "numeral"}},
	{"id": 3, "front": "爸爸", "back": {"meaning": "dad", "hanzi_pinyin": "bàba", "part_of_speech": "noun"}}
]`

// isolate points every XDG directory at a temp dir and clears PREPDECK_*
// overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, kv := range os.Environ() {
		if k, _, _ := strings.Cut(kv, "="); strings.HasPrefix(k, "PREPDECK_") {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeWords(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(path, []byte(wordList), 0o644))
	return path
}

func seedState(t *testing.T, dbPath string, st store.State) {
	t.Helper()
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.StateRepo().Save(context.Background(), st))
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "prepdeck (devel)\n", out)
}

func TestValidate(t *testing.T) {
	dir := isolate(t)
	out, err := run(t, "validate", writeWords(t, dir))
	require.NoError(t, err)
	assert.Contains(t, out, "3 words OK")
}

func TestValidate_Invalid(t *testing.T) {
	dir := isolate(t)
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"front": 7}]`), 0o644))

	_, err := run(t, "validate", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, vocab.ErrInvalidInput)
}

func TestValidate_RequiresArg(t *testing.T) {
	isolate(t)
	_, err := run(t, "validate")
	assert.Error(t, err)
}

func TestReset_RequiresYes(t *testing.T) {
	isolate(t)
	_, err := run(t, "reset")
	assert.ErrorIs(t, err, errResetNotConfirmed)
}

func TestReset(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "prepdeck.db")
	st := store.DefaultState()
	st.Score = 500
	st.UserProgress[1] = spacedrep.Record{Interval: 2, Reviews: 3}
	seedState(t, dbPath, st)

	out, err := run(t, "reset", "--yes", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress reset")

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.StateRepo().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, store.DefaultState(), got)
}

func TestStats_SortedMostDueFirst(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "prepdeck.db")
	st := store.DefaultState()
	st.Score = 300
	st.Streak = 2
	st.UserProgress[1] = spacedrep.Record{Interval: 5, Reviews: 4}
	st.UserProgress[3] = spacedrep.Record{Interval: 1, Reviews: 1}
	st.UserProgress[9] = spacedrep.Record{Interval: 2, Reviews: 2}
	seedState(t, dbPath, st)

	out, err := run(t, "stats", "--db", dbPath, "--vocab", writeWords(t, dir))
	require.NoError(t, err)

	assert.Contains(t, out, "Score: 300")
	assert.Contains(t, out, "Streak: 2")
	assert.Contains(t, out, "Words studied: 3")

	dad := strings.Index(out, "爸爸")
	unknown := strings.Index(out, "?")
	love := strings.Index(out, "爱")
	require.True(t, dad > 0 && unknown > 0 && love > 0, "missing rows:\n%s", out)
	assert.Less(t, dad, unknown, "interval 1 should precede interval 2")
	assert.Less(t, unknown, love, "interval 2 should precede interval 5")
}

func TestStats_NoProgress(t *testing.T) {
	dir := isolate(t)
	out, err := run(t, "stats", "--db", filepath.Join(dir, "prepdeck.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "No progress yet.")
}

func TestStats_ExplicitMissingConfig(t *testing.T) {
	dir := isolate(t)
	_, err := run(t, "stats", "--config", filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}
