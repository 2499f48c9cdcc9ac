package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/user-directory/internal/repository/memory"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeed(t, `
users:
  - last_name: Doe
    first_name: Jane
    email: jane@example.com
    birth_date: "1990-04-12"
  - last_name: Martin
    first_name: Paul
    email: paul@example.com
    birth_date: "1978-11-30"
`)
	users, err := memory.LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, memory.SeedUser{LastName: "Doe", FirstName: "Jane", Email: "jane@example.com", BirthDate: "1990-04-12"}, users[0])
	assert.Equal(t, "Martin", users[1].LastName)
}

func TestLoadSeedFile_RejectsUnknownKeys(t *testing.T) {
	path := writeSeed(t, `
users:
  - lastname: Doe
`)
	_, err := memory.LoadSeedFile(path)
	assert.Error(t, err)
}

func TestLoadSeedFile_EmptyFile(t *testing.T) {
	users, err := memory.LoadSeedFile(writeSeed(t, ""))
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := memory.LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
