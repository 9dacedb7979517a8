package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planner_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageProvider_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	p := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}
	ctx := context.Background()

	url, err := p.Upload(ctx, "avatars/7/a.png", strings.NewReader("image-bytes"), 11, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/7/a.png", url)

	path := filepath.Join(dir, "avatars", "7", "a.png")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, p.Delete(ctx, "avatars/7/a.png"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// 重复删除视为成功
	assert.NoError(t, p.Delete(ctx, "avatars/7/a.png"))
}

func TestNewStorageService_DefaultsToLocal(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()}}
	svc := NewStorageService(cfg)

	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
	assert.Equal(t, "/uploads/k.png", svc.GetURL("k.png"))
}
