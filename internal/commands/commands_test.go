package commands

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dossier/internal/core/config"
	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/messaging"
	"github.com/colonyops/dossier/internal/store/jsonfile"
)

type testApp struct {
	flags   *Flags
	out     *bytes.Buffer
	letters *LettersCmd
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dataDir := t.TempDir()
	cfg, err := config.Load("", dataDir)
	require.NoError(t, err)

	ta := &testApp{
		flags: &Flags{Config: cfg, DataDir: dataDir},
		out:   &bytes.Buffer{},
	}
	ta.letters = NewLettersCmd(ta.flags)
	ta.letters.stdin = strings.NewReader("")
	return ta
}

// run builds a fresh root command per invocation so parsed flags never leak
// between runs.
func (ta *testApp) run(t *testing.T, args ...string) error {
	t.Helper()
	ta.out.Reset()

	app := &cli.Command{
		Name:           "dossier",
		Writer:         ta.out,
		ErrWriter:      &bytes.Buffer{},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = ta.letters.Register(app)
	app = NewShowCmd(ta.flags).Register(app)
	app = NewConfigValidateCmd(ta.flags).Register(app)
	app = NewDemoCmd(ta.flags).Register(app)
	app = NewDoctorCmd(ta.flags).Register(app)

	return app.Run(context.Background(), append([]string{"dossier"}, args...))
}

func decodeLines[T any](t *testing.T, data string) []T {
	t.Helper()
	var out []T
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		var v T
		require.NoError(t, json.Unmarshal(sc.Bytes(), &v))
		out = append(out, v)
	}
	return out
}

func TestLetters_AddAndList(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run(t, "letters", "add", "--subject", "Hello", "--sender", "Ops", "doc-1", "first", "letter"))
	added := decodeLines[messaging.Letter](t, ta.out.String())
	require.Len(t, added, 1)
	assert.NotEmpty(t, added[0].ID)
	assert.Equal(t, "first letter", added[0].Body)
	assert.Equal(t, "Ops", added[0].Sender)
	assert.Equal(t, "project", added[0].Source, "source defaults to the configured tag")
	assert.False(t, added[0].Read)

	require.NoError(t, ta.run(t, "letters", "list", "doc-1"))
	listed := decodeLines[messaging.Letter](t, ta.out.String())
	require.Len(t, listed, 1)
	assert.Equal(t, added[0].ID, listed[0].ID)
}

func TestLetters_AddFromStdinAndFile(t *testing.T) {
	ta := newTestApp(t)

	ta.letters.stdin = strings.NewReader("  from stdin\n")
	require.NoError(t, ta.run(t, "letters", "add", "doc-1"))

	path := filepath.Join(t.TempDir(), "body.md")
	require.NoError(t, os.WriteFile(path, []byte("from **file**"), 0o644))
	require.NoError(t, ta.run(t, "letters", "add", "-f", path, "doc-1"))

	letters, err := jsonfile.NewLetterStore(ta.flags.Config.LettersDir()).List(context.Background(), "doc-1")
	require.NoError(t, err)
	require.Len(t, letters, 2)
	assert.Equal(t, "from stdin", letters[0].Body)
	assert.Equal(t, "from **file**", letters[1].Body)
}

func TestLetters_AddRejectsEmptyBody(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run(t, "letters", "add", "doc-1")
	require.ErrorIs(t, err, messaging.ErrEmptyBody)
}

func TestLetters_ListUnread(t *testing.T) {
	ta := newTestApp(t)
	store := jsonfile.NewLetterStore(ta.flags.Config.LettersDir())
	ctx := context.Background()

	first, err := store.Add(ctx, messaging.Letter{DocumentID: "doc-1", Body: "one"})
	require.NoError(t, err)
	_, err = store.Add(ctx, messaging.Letter{DocumentID: "doc-1", Body: "two"})
	require.NoError(t, err)
	require.NoError(t, store.MarkRead(ctx, "doc-1", []string{first.ID}))

	require.NoError(t, ta.run(t, "letters", "list", "--unread", "doc-1"))
	listed := decodeLines[messaging.Letter](t, ta.out.String())
	require.Len(t, listed, 1)
	assert.Equal(t, "two", listed[0].Body)
}

func TestLetters_Import(t *testing.T) {
	ta := newTestApp(t)

	path := filepath.Join(t.TempDir(), "letter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"document_id":"doc-9","subject":"Imported","body":"hi"}`), 0o644))

	require.NoError(t, ta.run(t, "letters", "import", "-f", path))
	imported := decodeLines[messaging.Letter](t, ta.out.String())
	require.Len(t, imported, 1)
	assert.Equal(t, "doc-9", imported[0].DocumentID)
	assert.Equal(t, "project", imported[0].Source)
	assert.NotEmpty(t, imported[0].ID)
}

func TestLetters_MissingDocumentID(t *testing.T) {
	ta := newTestApp(t)
	require.ErrorContains(t, ta.run(t, "letters", "list"), "document id is required")
}

func TestDemo_WritesSamples(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run(t, "demo", "--prefix", "x"))
	entries := decodeLines[demoEntry](t, ta.out.String())
	require.Len(t, entries, 5)

	statuses := map[document.Status]bool{}
	docs := jsonfile.NewDocumentStore(ta.flags.Config.DocumentsDir())
	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.ID, "x-"), e.ID)
		d, err := docs.Load(context.Background(), e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.Type, d.Type)
		statuses[d.Status] = true
	}
	assert.Len(t, statuses, 5, "one document per status")
}

func TestDemo_LinkedDocumentAndLetters(t *testing.T) {
	ta := newTestApp(t)
	cmd := NewDemoCmd(ta.flags)
	cmd.prefix = "demo"
	cmd.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	samples := cmd.samples()
	require.Len(t, samples, 5)

	complaint := samples[1]
	require.NotNil(t, complaint.doc.LinkedDocument)
	assert.Equal(t, samples[0].doc.ID, complaint.doc.LinkedDocument.ID)
	assert.Len(t, complaint.letters, 2)
	for _, l := range complaint.letters {
		assert.Equal(t, complaint.doc.ID, l.DocumentID)
	}
}

func TestShow_Plain(t *testing.T) {
	ta := newTestApp(t)
	docs := jsonfile.NewDocumentStore(ta.flags.Config.DocumentsDir())
	require.NoError(t, docs.Save(context.Background(), document.DetailsState{
		ID:     "doc-1",
		Number: "55",
		Type:   document.TypeCertificate,
		Status: document.StatusDone,
	}))

	require.NoError(t, ta.run(t, "show", "--plain", "--width", "120", "doc-1"))
	out := ta.out.String()
	assert.Contains(t, out, "№ 55")
	assert.NotContains(t, out, "\x1b[")
}

func TestShow_MissingDocument(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run(t, "show", "--plain", "--width", "120", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load document nope")
	assert.Contains(t, ta.out.String(), "Retry")
}

func TestConfigValidate(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run(t, "config", "validate"))
	assert.Contains(t, ta.out.String(), "Configuration is valid")

	ta.flags.Config.Theme = "neon"
	require.Error(t, ta.run(t, "config", "validate", "--format", "json"))

	var out validationOutput
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &out))
	assert.False(t, out.Valid)
	require.NotEmpty(t, out.Errors)
	assert.Contains(t, strings.Join(out.Errors, "\n"), "unknown theme")
}

func TestSplitErrors(t *testing.T) {
	assert.Equal(t, []string{"a: bad", "b: worse"}, splitErrors(assertErr("a: bad\n\n  b: worse\n")))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func TestDoctor_OrphanedLettersAutofix(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()
	_, err := jsonfile.NewLetterStore(ta.flags.Config.LettersDir()).Add(ctx, messaging.Letter{DocumentID: "gone", Body: "hi"})
	require.NoError(t, err)

	_ = ta.run(t, "doctor")
	assert.Contains(t, ta.out.String(), "dossier doctor --autofix")

	_ = ta.run(t, "doctor", "--autofix", "--format", "json")
	var out struct {
		Checks []struct {
			Name  string `json:"name"`
			Items []struct {
				Label  string `json:"label"`
				Status string `json:"status"`
			} `json:"items"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &out))

	found := false
	for _, check := range out.Checks {
		for _, item := range check.Items {
			if check.Name == "Letters" && item.Label == "gone" {
				found = true
				assert.Equal(t, "pass", item.Status)
			}
		}
	}
	assert.True(t, found)
	assert.NoFileExists(t, filepath.Join(ta.flags.Config.LettersDir(), "gone.json"))
}
