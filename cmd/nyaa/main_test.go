package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/nyaa"
	main "github.com/fwojciec/nyaa/cmd/nyaa"
	"github.com/fwojciec/nyaa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readListing(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "..", "goquery", "testdata", "listing.html"))
	require.NoError(t, err)
	return string(b)
}

// listingFetcher serves the saved listing for every URL.
func listingFetcher(t *testing.T, fetched *[]string) *mock.Fetcher {
	html := readListing(t)
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			*fetched = append(*fetched, url)
			return html, nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "nyaa")
	assert.Contains(t, stdout.String(), "search")
	assert.Contains(t, stdout.String(), "history")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "nyaa")
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"download"}, &stdout, &stderr)

	require.Error(t, err)
}

func TestMain_Run_Search(t *testing.T) {
	t.Parallel()

	t.Run("prints the parsed listing oldest first", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		m := main.NewMain()
		m.Fetcher = listingFetcher(t, &fetched)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"search", "-q", "show", "-i", "name", "-i", "pages", "-i", "current_page"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://nyaa.si/?c=0_0&f=2&p=1&q=show"}, fetched)
		assert.Equal(t, "[Group] Show - 01 [1080p].mkv\n"+
			"[Other] Show - 02 (Remake)\n"+
			"[Group] Show - 03 [1080p].mkv\n"+
			"Pages: 1 2 (current) 3 \n", stdout.String())
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		m := main.NewMain()
		m.Fetcher = listingFetcher(t, &fetched)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"search", "--json", "-n", "1"}, &stdout, &stderr)

		require.NoError(t, err)
		var got nyaaJSON
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		require.Len(t, got.Entries, 1)
		assert.Equal(t, "[Group] Show - 03 [1080p].mkv", got.Entries[0].Name)
		assert.Equal(t, "https://nyaa.si/view/1003", got.Entries[0].URL)
		assert.Equal(t, uint32(310), got.Entries[0].Seeders)
		require.NotNil(t, got.Pagination)
		assert.Equal(t, uint32(2), got.Pagination.Current.Number)
	})

	t.Run("drops entries repeated on later pages", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		m := main.NewMain()
		m.Fetcher = listingFetcher(t, &fetched)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"search", "--pages", "2", "--rate", "1000", "-i", "name"}, &stdout, &stderr)

		require.NoError(t, err)
		require.Len(t, fetched, 2)
		assert.Contains(t, fetched[1], "p=3")
		assert.Equal(t, 3, strings.Count(stdout.String(), "\n"))
	})

	t.Run("logs fetches when verbose", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		m := main.NewMain()
		m.Fetcher = listingFetcher(t, &fetched)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"search", "-v"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "msg=fetch")
		assert.Contains(t, stderr.String(), "msg=parse")
	})

	t.Run("stays quiet without verbose", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		m := main.NewMain()
		m.Fetcher = listingFetcher(t, &fetched)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"search"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Empty(t, stderr.String())
	})

	t.Run("records history and prints only new entries", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "history.db")
		run := func() string {
			var fetched []string
			m := main.NewMain()
			m.Fetcher = listingFetcher(t, &fetched)
			var stdout, stderr bytes.Buffer
			err := m.Run(context.Background(), []string{"search", "--db", dbPath, "--new", "-i", "name"}, &stdout, &stderr)
			require.NoError(t, err)
			return stdout.String()
		}

		assert.Equal(t, 3, strings.Count(run(), "\n"))
		assert.Empty(t, run())

		m := main.NewMain()
		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"history", "--db", dbPath, "--kind", "danger"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "[Other] Show - 02 (Remake)")
		assert.NotContains(t, stdout.String(), "Show - 03")
	})

	t.Run("archives fetched pages", func(t *testing.T) {
		t.Parallel()

		archive := t.TempDir()
		var fetched []string
		m := main.NewMain()
		m.Fetcher = listingFetcher(t, &fetched)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"search", "--archive", archive}, &stdout, &stderr)

		require.NoError(t, err)
		saved, err := os.ReadFile(filepath.Join(archive, "nyaa.si", "c=0_0&f=2&p=1&q=.html"))
		require.NoError(t, err)
		assert.Equal(t, readListing(t), string(saved))
	})

	t.Run("rejects invalid sources", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"search", "-S", "tokyotosho"}, &stdout, &stderr)

		require.Error(t, err)
	})
}

func TestMain_Run_Parse(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer
	file := filepath.Join("..", "..", "goquery", "testdata", "listing.html")

	err := m.Run(context.Background(), []string{"parse", file, "--url", "https://nyaa.si/?p=2", "-i", "name", "-i", "size", "-i", "parsed_size"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "[Other] Show - 02 (Remake)\n\tSize:       8 KiB (parsed: 8192)\n")
}

func TestMain_Run_History(t *testing.T) {
	t.Parallel()

	t.Run("requires a database", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"history"}, &stdout, &stderr)

		require.Error(t, err)
	})

	t.Run("reports an empty history", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"history", "--db", filepath.Join(t.TempDir(), "h.db")}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No entries recorded")
	})
}

func TestMain_Run_Categories(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"categories", "-S", "sukebei"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "1 - Art")
}

type nyaaJSON struct {
	Entries []struct {
		URL     string `json:"url"`
		Name    string `json:"name"`
		Seeders uint32 `json:"seeders"`
	} `json:"entries"`
	Pagination *nyaa.Pagination `json:"pagination"`
}
