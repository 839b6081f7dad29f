package upload_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linemk/perfume-store/internal/lib/upload"
	"github.com/stretchr/testify/assert"
)

func TestSaveHeroImage_Success(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hero")

	url, err := upload.SaveHeroImage(dir, "banner.jpg", strings.NewReader("image-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/hero/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// файл действительно записан в каталог
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	assert.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestSaveHeroImage_UniqueNames(t *testing.T) {
	dir := t.TempDir()

	first, err := upload.SaveHeroImage(dir, "banner.png", strings.NewReader("a"))
	assert.NoError(t, err)
	second, err := upload.SaveHeroImage(dir, "banner.png", strings.NewReader("b"))
	assert.NoError(t, err)

	// имена генерируются заново для каждого файла
	assert.NotEqual(t, first, second)
}

func TestSaveHeroImage_NoExtension(t *testing.T) {
	dir := t.TempDir()

	url, err := upload.SaveHeroImage(dir, "banner", strings.NewReader("a"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/hero/"))
	assert.False(t, strings.Contains(filepath.Base(url), "."))
}
