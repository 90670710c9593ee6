package podcasts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "state", "podcasts.yml"))
}

func TestStoreLoadMissingFile(t *testing.T) {
	podcasts, err := tempStore(t).Load()
	require.NoError(t, err)
	assert.Empty(t, podcasts)
}

func TestStoreRoundTrip(t *testing.T) {
	store := tempStore(t)

	saved := []Podcast{
		{Title: "In Our Time", URL: "http://feeds.example/iot.rss"},
		{Title: "Shipping Forecast", URL: "http://feeds.example/shipping.rss"},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestStoreAddSkipsDuplicates(t *testing.T) {
	store := tempStore(t)

	podcasts, err := store.Add(Podcast{Title: "In Our Time", URL: "http://feeds.example/iot.rss"})
	require.NoError(t, err)
	require.Len(t, podcasts, 1)

	// Same URL again, even with a different title: no new entry.
	podcasts, err = store.Add(Podcast{Title: "Renamed", URL: "http://feeds.example/iot.rss"})
	require.NoError(t, err)
	require.Len(t, podcasts, 1)
	assert.Equal(t, "In Our Time", podcasts[0].Title)
}

func TestStoreRemove(t *testing.T) {
	store := tempStore(t)
	_, err := store.Add(Podcast{Title: "A", URL: "http://feeds.example/a.rss"})
	require.NoError(t, err)
	_, err = store.Add(Podcast{Title: "B", URL: "http://feeds.example/b.rss"})
	require.NoError(t, err)

	podcasts, err := store.Remove("http://feeds.example/a.rss")
	require.NoError(t, err)
	require.Len(t, podcasts, 1)
	assert.Equal(t, "B", podcasts[0].Title)

	// Removing an unknown URL is a no-op.
	podcasts, err = store.Remove("http://feeds.example/missing.rss")
	require.NoError(t, err)
	assert.Len(t, podcasts, 1)
}
