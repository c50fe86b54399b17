package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zeros.dev/launchpad/pkg/content"
)

type record struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

func TestReadListMissingDocument(t *testing.T) {
	store := content.NewStore(t.TempDir())

	items := content.ReadList[record](store, "ghosts")
	assert.Empty(t, items)
}

func TestReadListCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "broken.md"), []byte("---\nitems: [not: valid: yaml\n---\n"), 0o644)
	require.NoError(t, err)

	store := content.NewStore(dir)
	items := content.ReadList[record](store, "broken")
	assert.Empty(t, items)
}

func TestWriteListRoundTrip(t *testing.T) {
	store := content.NewStore(t.TempDir())

	in := []record{
		{ID: 1, Name: "first"},
		{ID: 2, Name: "second"},
	}
	require.NoError(t, content.WriteList(store, "records", in))

	out := content.ReadList[record](store, "records")
	assert.Equal(t, in, out)
}

func TestWriteListPreservesBody(t *testing.T) {
	dir := t.TempDir()
	body := "# Notes\n\nSome narrative text that must survive rewrites.\n"
	raw := "---\nitems:\n    - id: 1\n      name: first\n---\n" + body
	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.md"), []byte(raw), 0o644))

	store := content.NewStore(dir)

	items := content.ReadList[record](store, "records")
	require.Len(t, items, 1)

	items = append(items, record{ID: 2, Name: "second"})
	require.NoError(t, content.WriteList(store, "records", items))

	gotBody, err := store.ReadBody("records")
	require.NoError(t, err)
	assert.Equal(t, body, gotBody)

	out := content.ReadList[record](store, "records")
	assert.Equal(t, items, out)
}

func TestMutateAppliesAndPersists(t *testing.T) {
	store := content.NewStore(t.TempDir())
	require.NoError(t, content.WriteList(store, "records", []record{{ID: 1, Name: "first"}}))

	err := content.Mutate(store, "records", func(items []record) ([]record, error) {
		items[0].Name = "renamed"
		return items, nil
	})
	require.NoError(t, err)

	out := content.ReadList[record](store, "records")
	require.Len(t, out, 1)
	assert.Equal(t, "renamed", out[0].Name)
}

func TestMutateErrorLeavesDocumentUntouched(t *testing.T) {
	store := content.NewStore(t.TempDir())
	require.NoError(t, content.WriteList(store, "records", []record{{ID: 1, Name: "first"}}))

	err := content.Mutate(store, "records", func(items []record) ([]record, error) {
		return nil, assert.AnError
	})
	require.Error(t, err)

	out := content.ReadList[record](store, "records")
	assert.Len(t, out, 1)
}

func TestSections(t *testing.T) {
	dir := t.TempDir()
	raw := `---
title: Orientation
---
Welcome to the program.
---
title: Scoring
---
How deliverables are assessed.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "playbook.md"), []byte(raw), 0o644))

	store := content.NewStore(dir)
	sections, err := store.Sections("playbook")
	require.NoError(t, err)
	require.Len(t, sections, 2)

	assert.Equal(t, "Orientation", sections[0].Title)
	assert.Equal(t, "Welcome to the program.", sections[0].Content)
	assert.Equal(t, "Scoring", sections[1].Title)
	assert.Equal(t, "How deliverables are assessed.", sections[1].Content)
}
