package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxGoroutines, cfg.MaxGoroutines)
	assert.Equal(t, DefaultDriver, cfg.Driver)
	assert.Equal(t, DefaultListenAddress, cfg.ListenAddress)
	assert.Equal(t, "", cfg.InstituteFilter)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"max_goroutines": 8,
		"root_directory": "/srv/incoming",
		"connString": "sqlserver://user:pw@db:1433?database=dicom",
		"institute_filter": "General Hospital|Clinic"
	}`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxGoroutines)
	assert.Equal(t, "/srv/incoming", cfg.RootDirectory)
	assert.Equal(t, "sqlserver://user:pw@db:1433?database=dicom", cfg.ConnString)
	assert.Equal(t, "General Hospital|Clinic", cfg.InstituteFilter)
}

func TestEnvOverride(t *testing.T) {
	path := writeConfig(t, `{"max_goroutines": 8}`)
	t.Setenv("GODICOM_MAX_GOROUTINES", "3")
	t.Setenv("GODICOM_DRIVER", "sqlite3")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxGoroutines)
	assert.Equal(t, "sqlite3", cfg.Driver)
}

func TestInvalid(t *testing.T) {
	_, err := LoadFile(writeConfig(t, `{"max_goroutines": 0}`))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, `{"driver": "postgres"}`))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestHomeExpansion(t *testing.T) {
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, `{"root_directory": "~/dicom"}`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "dicom"), cfg.RootDirectory)
}

func TestDicomServer(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `{
		"dicom_server": "pacs.local",
		"dicom_server_port": 11112,
		"dicom_server_remote_aet": "PACS"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "pacs.local", cfg.DicomServer)
	assert.Equal(t, 11112, cfg.DicomServerPort)
	assert.Equal(t, DefaultLocalAET, cfg.DicomServerLocalAET)
	assert.Equal(t, "PACS", cfg.DicomServerRemoteAET)

	_, err = LoadFile(writeConfig(t, `{"dicom_server": "pacs.local"}`))
	assert.Error(t, err)
}
