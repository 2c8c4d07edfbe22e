package catalog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "decks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func deck(path, title, content string, spacers int) *models.Deck {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.Deck{
		Path:       path,
		Title:      title,
		Content:    content,
		Cells:      10,
		Slides:     4,
		Fragments:  2,
		Spacers:    spacers,
		ModifiedAt: now,
		IndexedAt:  now,
	}
}

func TestPutAndSearch(t *testing.T) {
	c := openTestCatalog(t)

	require.NoError(t, c.Put(deck("/d/intro.ipynb", "Intro to Go", "goroutines and channels", 0)))
	require.NoError(t, c.Put(deck("/d/rust.ipynb", "Ownership", "borrow checker basics", 6)))

	results, err := c.Search("channels", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "/d/intro.ipynb", results[0].Path)
	assert.Equal(t, "Intro to Go", results[0].Title)
	assert.Equal(t, 4, results[0].Slides)

	all, err := c.Search("", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPutReplacesExisting(t *testing.T) {
	c := openTestCatalog(t)

	require.NoError(t, c.Put(deck("/d/a.ipynb", "First", "alpha", 0)))
	require.NoError(t, c.Put(deck("/d/a.ipynb", "Second", "beta", 2)))

	n, err := c.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	results, err := c.Search("alpha", nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = c.Search("beta", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Second", results[0].Title)
}

func TestSearchNeedsCleaning(t *testing.T) {
	c := openTestCatalog(t)

	require.NoError(t, c.Put(deck("/d/clean.ipynb", "Clean", "x", 0)))
	require.NoError(t, c.Put(deck("/d/dirty.ipynb", "Dirty", "x", 4)))

	results, err := c.Search("", &Options{NeedsCleaning: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "/d/dirty.ipynb", results[0].Path)
	assert.True(t, results[0].NeedsCleaning())
}

func TestSearchLimit(t *testing.T) {
	c := openTestCatalog(t)
	for _, p := range []string{"/d/1.ipynb", "/d/2.ipynb", "/d/3.ipynb"} {
		require.NoError(t, c.Put(deck(p, p, "shared words", 0)))
	}

	results, err := c.Search("shared", &Options{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchQuotesInput(t *testing.T) {
	c := openTestCatalog(t)
	require.NoError(t, c.Put(deck("/d/a.ipynb", "Deck", "plain text", 0)))

	// FTS operators in user input must not produce a syntax error
	_, err := c.Search(`plain" OR`, nil)
	assert.NoError(t, err)
}

func TestRemove(t *testing.T) {
	c := openTestCatalog(t)
	require.NoError(t, c.Put(deck("/d/a.ipynb", "Deck", "content", 0)))

	require.NoError(t, c.Remove("/d/a.ipynb"))

	n, err := c.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	results, err := c.Search("content", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFTSQuery(t *testing.T) {
	assert.Equal(t, `"a" "b"`, ftsQuery("a  b"))
	assert.Equal(t, `"say" """hi"""`, ftsQuery(`say "hi"`))
}

func TestAuthorAndTags(t *testing.T) {
	c := openTestCatalog(t)
	d := deck("/d/a.ipynb", "Deck", "body", 0)
	d.Author = "Ada"
	d.Tags = []string{"go", "talks"}
	require.NoError(t, c.Put(d))

	results, err := c.Search("talks", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ada", results[0].Author)
	assert.Equal(t, []string{"go", "talks"}, results[0].Tags)
}
