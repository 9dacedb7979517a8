package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planner_backend/internal/config"
	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/testutil"
	"planner_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// fileHeader 构造一个经过 multipart 解析的上传文件
func fileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func newTestVisionBoard(t *testing.T) (*VisionBoardService, *gorm.DB, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	dir := t.TempDir()
	storage := NewStorageService(&config.Config{Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: dir}})
	return NewVisionBoardService(repository.NewVisionRepository(db), storage), db, dir
}

func storedFiles(t *testing.T, dir string, userID string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(dir, "vision-board", userID))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return entries
}

func TestVisionBoardService_AddItemAndDelete(t *testing.T) {
	svc, _, dir := newTestVisionBoard(t)
	ctx := context.Background()
	png := pngHeader + strings.Repeat("\x00", 64)

	first, err := svc.AddItem(ctx, 1, fileHeader(t, "a.PNG", png), "  Beach house ")
	require.NoError(t, err)
	assert.Equal(t, "Beach house", first.Caption)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "/uploads/"+first.ObjectKey, first.ImageURL)
	assert.True(t, strings.HasSuffix(first.ObjectKey, ".png"))

	second, err := svc.AddItem(ctx, 1, fileHeader(t, "b.png", png), "")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	path := filepath.Join(dir, filepath.FromSlash(first.ObjectKey))
	_, err = os.Stat(path)
	require.NoError(t, err)

	// 其他用户无法删除
	assert.ErrorIs(t, svc.Delete(ctx, 2, first.ID), util.ErrNotFound)
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, first.ID))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	items, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Len(t, storedFiles(t, dir, "1"), 1)
}

func TestVisionBoardService_AddItemRemovesObjectWhenSaveFails(t *testing.T) {
	svc, db, dir := newTestVisionBoard(t)
	ctx := context.Background()

	require.NoError(t, db.Migrator().DropTable(&model.VisionItem{}))

	_, err := svc.AddItem(ctx, 1, fileHeader(t, "a.png", pngHeader+strings.Repeat("\x00", 64)), "")
	require.Error(t, err)
	assert.Empty(t, storedFiles(t, dir, "1"))
}

func TestVisionBoardService_AddItemRejectsBadUploads(t *testing.T) {
	svc, _, dir := newTestVisionBoard(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		filename string
		content  string
		caption  string
		wantErr  error
	}{
		{"扩展名不允许", "notes.txt", pngHeader, "", util.ErrInvalidFileType},
		{"内容不是图片", "fake.png", "plain text, not an image", "", util.ErrInvalidFileType},
		{"说明过长", "a.png", pngHeader, strings.Repeat("x", 256), model.ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, 1, fileHeader(t, tt.filename, tt.content), tt.caption)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, storedFiles(t, dir, "1"))
}

func TestVisionBoardService_Update(t *testing.T) {
	svc, _, _ := newTestVisionBoard(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, 1, fileHeader(t, "a.png", pngHeader+strings.Repeat("\x00", 64)), "Old")
	require.NoError(t, err)

	caption := "New"
	pos := 5
	updated, err := svc.Update(ctx, 1, item.ID, model.VisionItemPatch{Caption: &caption, Position: &pos})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Caption)
	assert.Equal(t, 5, updated.Position)

	_, err = svc.Update(ctx, 2, item.ID, model.VisionItemPatch{Caption: &caption})
	assert.ErrorIs(t, err, util.ErrNotFound)

	neg := -1
	_, err = svc.Update(ctx, 1, item.ID, model.VisionItemPatch{Position: &neg})
	assert.ErrorIs(t, err, model.ErrInvalidField)
}
