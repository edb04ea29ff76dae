package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "todos.json"))
	require.NoError(t, err)
	return s
}

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "todos.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestOpen_MalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todos.json")
	s, err := Open(path)
	require.NoError(t, err)

	s.Add("buy milk", "two liters")
	s.Add("write report", "")
	done, err := s.Toggle(2)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NoError(t, s.Save())

	loaded, err := Open(path)
	require.NoError(t, err)

	want, got := s.List(), loaded.List()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].Completed, got[i].Completed)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
		assert.True(t, want[i].UpdatedAt.Equal(got[i].UpdatedAt))
	}
}

func TestAdd_FreshIDs(t *testing.T) {
	t.Parallel()

	s := tempStore(t)
	a := s.Add("one", "")
	b := s.Add("two", "")
	c := s.Add("three", "")
	assert.Equal(t, []int{1, 2, 3}, []int{a.ID, b.ID, c.ID})

	// Deleting the highest id must not cause its reuse in this process.
	require.NoError(t, s.Delete(c.ID))
	d := s.Add("four", "")
	assert.Equal(t, 4, d.ID)
	assert.False(t, d.Completed)
}

func TestOpen_RebuildsIDCounter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todos.json")
	s, err := Open(path)
	require.NoError(t, err)
	s.Add("one", "")
	s.Add("two", "")
	require.NoError(t, s.Delete(1))
	require.NoError(t, s.Save())

	loaded, err := Open(path)
	require.NoError(t, err)
	next := loaded.Add("three", "")
	assert.Equal(t, 3, next.ID)
}

func TestDelete_RemovesID(t *testing.T) {
	t.Parallel()

	s := tempStore(t)
	s.Add("one", "")
	s.Add("two", "")
	s.Add("three", "")

	require.NoError(t, s.Delete(2))
	for _, td := range s.List() {
		assert.NotEqual(t, 2, td.ID)
	}
	assert.Equal(t, 2, s.Len())

	err := s.Delete(2)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 2, nf.ID)
}

func TestToggle_TwiceRestores(t *testing.T) {
	t.Parallel()

	s := tempStore(t)
	td := s.Add("one", "")

	first, err := s.Toggle(td.ID)
	require.NoError(t, err)
	assert.True(t, first.Completed)

	second, err := s.Toggle(td.ID)
	require.NoError(t, err)
	assert.Equal(t, td.Completed, second.Completed)
}

func TestEdit_PartialUpdate(t *testing.T) {
	t.Parallel()

	s := tempStore(t)
	td := s.Add("draft", "first pass")

	title := "final"
	got, err := s.Edit(td.ID, &title, nil)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "first pass", got.Description)

	desc := "second pass"
	got, err = s.Edit(td.ID, nil, &desc)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "second pass", got.Description)
}

func TestEdit_NotFoundLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	s := tempStore(t)
	s.Add("one", "")
	before := s.List()

	title := "nope"
	_, err := s.Edit(99, &title, nil)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 99, nf.ID)
	assert.Equal(t, before, s.List())
}

func TestInsert_RestoresAtPosition(t *testing.T) {
	t.Parallel()

	s := tempStore(t)
	s.Add("one", "")
	removed := s.Add("two", "")
	s.Add("three", "")

	require.NoError(t, s.Delete(removed.ID))
	require.NoError(t, s.Insert(1, removed))

	ids := make([]int, 0, s.Len())
	for _, td := range s.List() {
		ids = append(ids, td.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)

	// Duplicate ids are refused.
	assert.Error(t, s.Insert(0, removed))

	// The id counter moved past the restored id.
	next := s.Add("four", "")
	assert.Equal(t, 4, next.ID)
}

func TestSave_FailsOnUnwritablePath(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "missing-dir", "todos.json"))
	require.NoError(t, err)
	s.Add("one", "")

	err = s.Save()
	var ioerr *IOError
	require.ErrorAs(t, err, &ioerr)
	assert.Equal(t, "write", ioerr.Op)
}

func TestList_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s := tempStore(t)
	s.Add("one", "")

	snapshot := s.List()
	snapshot[0].Title = "mutated"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Title)
}
