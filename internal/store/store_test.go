package store

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/mmcdole/galleria/internal/config"
	"github.com/mmcdole/galleria/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]func(t *testing.T) domain.Store {
	return map[string]func(t *testing.T) domain.Store{
		"bolt": func(t *testing.T) domain.Store {
			s, err := NewBoltStore(filepath.Join(t.TempDir(), "cache", "galleria.db"))
			require.NoError(t, err)
			return s
		},
		"sqlite": func(t *testing.T) domain.Store {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "galleria.sqlite"))
			require.NoError(t, err)
			return s
		},
		"memory": func(t *testing.T) domain.Store {
			return NewMemoryStore()
		},
	}
}

func TestStoreGetSetDelete(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			_, ok, err := s.Get("cachedPhotos")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("cachedPhotos", []byte(`[{"id":"1"}]`)))
			got, ok, err := s.Get("cachedPhotos")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[{"id":"1"}]`, string(got))

			// full replace, never a merge
			require.NoError(t, s.Set("cachedPhotos", []byte(`[]`)))
			got, ok, err = s.Get("cachedPhotos")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[]`, string(got))

			require.NoError(t, s.Delete("cachedPhotos"))
			_, ok, err = s.Get("cachedPhotos")
			require.NoError(t, err)
			assert.False(t, ok)

			// deleting again is fine
			require.NoError(t, s.Delete("cachedPhotos"))
		})
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			value := []byte("abc")
			require.NoError(t, s.Set("k", value))
			value[0] = 'x'

			got, _, err := s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "abc", string(got))

			got[1] = 'y'
			again, _, err := s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "abc", string(again))
		})
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 20; j++ {
						assert.NoError(t, s.Set("k", []byte("value")))
						_, _, err := s.Get("k")
						assert.NoError(t, err)
					}
				}()
			}
			wg.Wait()

			got, ok, err := s.Get("k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "value", string(got))
		})
	}
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galleria.db")

	s, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("searchHistory", []byte(`["cat"]`)))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Get("searchHistory")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["cat"]`, string(got))
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galleria.sqlite")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("cachedPhotos", []byte(`[{"id":"9"}]`)))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Get("cachedPhotos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"9"}]`, string(got))
}

func TestBoltStoreEmptyPathIsMemoryOnly(t *testing.T) {
	s, err := NewBoltStore("")
	require.NoError(t, err)
	assert.Nil(t, s.db)
	require.NoError(t, s.Set("k", []byte("v")))
	got, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(got))
	assert.NoError(t, s.Close())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(config.CacheConfig{Driver: config.DriverBolt, Path: filepath.Join(dir, "a.db")})
	require.NoError(t, err)
	assert.IsType(t, &BoltStore{}, s)
	require.NoError(t, s.Close())

	s, err = Open(config.CacheConfig{Driver: config.DriverSQLite, Path: filepath.Join(dir, "b.sqlite")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	s, err = Open(config.CacheConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &BoltStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(config.CacheConfig{Driver: "redis"})
	assert.Error(t, err)
}
