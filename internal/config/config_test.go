package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadCfg_BodyLimit(t *testing.T) {
	assert.Equal(t, int64(5<<20)*4/3+1<<20, UploadCfg{MaxFileBytes: 5 << 20}.BodyLimit())
	assert.Equal(t, int64(1024), UploadCfg{MaxFileBytes: 5 << 20, MaxBodyBytes: 1024}.BodyLimit())
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_UPLOAD_MAXBODYBYTES", "4096")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxFileBytes)
	assert.Equal(t, int64(4096), cfg.Upload.BodyLimit())
	assert.True(t, cfg.RateLimit.Enabled)
}
