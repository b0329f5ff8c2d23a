package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	content := `[DEFAULT]
user=ocid1.user.oc1..aaa
fingerprint=20:3b:97:13
tenancy=ocid1.tenancy.oc1..bbb
region=me-jeddah-1
key_file=~/.oci/key.pem

[STAGING]
user=ocid1.user.oc1..ccc
fingerprint=aa:bb:cc:dd
tenancy=ocid1.tenancy.oc1..bbb
region=eu-frankfurt-1
key_file=~/.oci/staging.pem
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Contains(t, profiles, "DEFAULT")
	assert.Contains(t, profiles, "STAGING")
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "oci_inventory.xlsx", settings.OutputFile)
	assert.Empty(t, settings.Regions)
}

func TestLoadSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.yaml")
	content := `profile: STAGING
regions:
  - me-jeddah-1
  - eu-frankfurt-1
output_file: staging_inventory.xlsx
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "STAGING", settings.Profile)
	assert.Equal(t, []string{"me-jeddah-1", "eu-frankfurt-1"}, settings.Regions)
	assert.Equal(t, "staging_inventory.xlsx", settings.OutputFile)
}
