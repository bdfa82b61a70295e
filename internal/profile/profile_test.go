package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_PassesValidation(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, "Sourabh Pandey", p.Name)
	assert.Len(t, p.Education, 4)
	assert.NotEmpty(t, p.Interests)
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Name, p.Name)
}

func TestLoad_PartialOverrideKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "profile.json")
	err := os.WriteFile(path, []byte(`{"name":"Jane Roe","interests":["Cycling"]}`), 0644)
	require.NoError(t, err)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", p.Name)
	assert.Equal(t, []string{"Cycling"}, p.Interests)
	// Untouched fields keep the built-in values.
	assert.Equal(t, Default().Program, p.Program)
	assert.Len(t, p.Education, 4)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse profile JSON")
}

func TestLoad_InvalidEmailRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"email":"not-an-email"}`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestValidate_RequiresName(t *testing.T) {
	p := &Profile{}
	assert.Error(t, p.Validate())
}
