package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "albumsplit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"audio_bitrate": "192k", "overwrite_existing": true}`), 0644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "192k", settings.AudioBitrate)
	assert.True(t, settings.OverwriteExisting)
	// Everything not in the file stays at its default.
	assert.Equal(t, DefaultSettings().OutputPath, settings.OutputPath)
	assert.Equal(t, "yt-dlp", settings.YtDlpPath)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "albumsplit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "albumsplit.json")

	settings := DefaultSettings()
	settings.CookiesFile = "my-cookies.txt"
	settings.KeepSourceAudio = true
	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestToConfigs(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, settings.OutputPath, settings.ToPathConfig().OutputPath)
	assert.Equal(t, settings.FileNameFormat, settings.ToTrackConfig().FileNameFormat)
}
