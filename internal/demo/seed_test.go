package demo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/nameboard/internal/entities"
)

type memorySeeder struct {
	names   []entities.Name
	failAt  int
	listErr error
}

func (m *memorySeeder) List() ([]entities.Name, error) {
	return m.names, m.listErr
}

func (m *memorySeeder) Create(firstName string, liked bool) (*entities.Name, error) {
	if m.failAt > 0 && len(m.names)+1 == m.failAt {
		return nil, errors.New("disk full")
	}
	n := entities.Name{FirstName: firstName, Liked: liked}
	m.names = append(m.names, n)
	return &n, nil
}

func TestSampleNames(t *testing.T) {
	names := SampleNames()
	require.NotEmpty(t, names)
	for _, n := range names {
		assert.NotEmpty(t, n)
	}
}

func TestSeed(t *testing.T) {
	t.Run("fills an empty store", func(t *testing.T) {
		store := &memorySeeder{}
		created, err := Seed(store)
		require.NoError(t, err)
		assert.Equal(t, len(SampleNames()), created)
		assert.Len(t, store.names, created)
		for _, n := range store.names {
			assert.False(t, n.Liked)
		}
	})

	t.Run("leaves a populated store alone", func(t *testing.T) {
		store := &memorySeeder{names: []entities.Name{{ID: "x", FirstName: "Existing"}}}
		created, err := Seed(store)
		require.NoError(t, err)
		assert.Zero(t, created)
		assert.Len(t, store.names, 1)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		store := &memorySeeder{failAt: 3}
		created, err := Seed(store)
		assert.Error(t, err)
		assert.Equal(t, 2, created)
	})

	t.Run("list failure", func(t *testing.T) {
		_, err := Seed(&memorySeeder{listErr: errors.New("boom")})
		assert.Error(t, err)
	})
}
