package genres

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Load(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Load())

	assert.Equal(t, "Drama", c.Name(18))
	assert.Equal(t, "Science Fiction", c.Name(878))
	assert.Equal(t, "Sci-Fi & Fantasy", c.Name(10765))
}

func TestCatalog_SharedIDs(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Load())

	// 35 appears in both the movie and tv lists with the same name;
	// lookup works regardless of which list supplied it.
	assert.Equal(t, "Comedy", c.Name(35))
}

func TestCatalog_UnknownID(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Load())

	assert.Equal(t, "Unknown", c.Name(999999))
}

func TestCatalog_LookupLoadsLazily(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, "Drama", c.Name(18), "first lookup loads the table")
}

func TestCatalog_ConcurrentFirstLookup(t *testing.T) {
	c := NewCatalog()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "Drama", c.Name(18))
			assert.Equal(t, []string{"Comedy"}, c.Names([]int{35}))
		}()
	}
	wg.Wait()
}

func TestCatalog_Names(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Load())

	assert.Equal(t, []string{"Action", "Unknown"}, c.Names([]int{28, 0}))
}

func TestCatalog_LoadIdempotent(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Load())
	require.NoError(t, c.Load())

	assert.NotEmpty(t, c.All().Movie)
	assert.NotEmpty(t, c.All().TV)
}
