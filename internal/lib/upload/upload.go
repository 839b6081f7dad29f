package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveHeroImage сохраняет загруженное изображение hero-блока в каталог dir
// под уникальным именем (расширение берется из исходного имени файла)
// и возвращает публичный URL для записи в БД.
func SaveHeroImage(dir, originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	fileName := uuid.NewString() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/hero/" + fileName, nil
}
