// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Typesquash Authors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typesquash.yaml")

	squash := false
	cfg := &Config{
		Version:  CurrentConfigVersion,
		RootName: "Payload",
		Indent:   4,
		Squash:   &squash,
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_RejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typesquash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 99\n"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported config version")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typesquash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_IndentBounds(t *testing.T) {
	cfg := &Config{Version: CurrentConfigVersion, Indent: 9}
	assert.ErrorContains(t, cfg.Validate(), "indent")

	cfg.Indent = 8
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefault_FallsBackWhenAbsent(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefault_ReadsWorkingDirectoryFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(DefaultFileName, []byte("version: 1\nrootName: ApiResponse\n"), 0o600))

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "ApiResponse", cfg.RootName)
}
