package pg

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFS(t *testing.T) {
	files, err := fs.Glob(migrationFS(), "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, name := range files {
		body, err := fs.ReadFile(migrationFS(), name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"), name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}
