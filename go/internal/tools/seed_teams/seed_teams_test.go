package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeStore struct {
	ExistsFunc func(ctx context.Context, name string) (bool, error)
	InsertFunc func(ctx context.Context, t Team) (bool, error)
}

func (f *FakeStore) Exists(ctx context.Context, name string) (bool, error) {
	return f.ExistsFunc(ctx, name)
}

func (f *FakeStore) Insert(ctx context.Context, t Team) (bool, error) {
	return f.InsertFunc(ctx, t)
}

func TestLoadTeams_Embedded(t *testing.T) {
	teams, err := loadTeams("")
	require.NoError(t, err)
	require.Len(t, teams, 8)
	for _, team := range teams {
		assert.NotEmpty(t, team.Name)
		assert.NotEmpty(t, team.Logo)
	}
}

func TestSeed(t *testing.T) {
	teams := []Team{{Name: "Liverpool"}, {Name: "Juventus"}, {Name: "Broken"}}
	existing := map[string]bool{"Liverpool": true}

	var written []string
	store := &FakeStore{
		ExistsFunc: func(_ context.Context, name string) (bool, error) {
			if name == "Broken" {
				return false, errors.New("connection reset")
			}
			return existing[name], nil
		},
		InsertFunc: func(_ context.Context, team Team) (bool, error) {
			if team.Name == "Broken" {
				return false, errors.New("connection reset")
			}
			written = append(written, team.Name)
			return !existing[team.Name], nil
		},
	}

	t.Run("dry run writes nothing", func(t *testing.T) {
		var out bytes.Buffer
		s := seed(context.Background(), store, teams, true, &out)

		assert.Equal(t, summary{Total: 3, Inserted: 1, Skipped: 1, Errors: 1}, s)
		assert.Empty(t, written)
		assert.Contains(t, out.String(), `"Broken"`)
	})

	t.Run("insert", func(t *testing.T) {
		var out bytes.Buffer
		s := seed(context.Background(), store, teams, false, &out)

		assert.Equal(t, summary{Total: 3, Inserted: 1, Skipped: 1, Errors: 1}, s)
		assert.Equal(t, []string{"Liverpool", "Juventus"}, written)
	})
}
