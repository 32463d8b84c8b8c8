// Package storage содержит реализацию файлового хранилища изображений.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"estatehub/internal/estate/ports/services"
	"estatehub/pkg/logger"
)

const (
	errMsgCreateDir  = "error creating upload directory"
	errMsgCreateFile = "error creating file"
	errMsgWriteFile  = "error writing file"

	uploadDirPerm = 0o755
)

// DiskStorage реализует интерфейс FileStorage поверх локальной файловой системы.
// Имена файлов дополняются UUID-префиксом, чтобы избежать коллизий.
type DiskStorage struct {
	dir       string
	urlPrefix string
}

// NewDiskStorage создает хранилище в указанном каталоге, создавая его при необходимости.
func NewDiskStorage(dir, urlPrefix string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, uploadDirPerm); err != nil {
		return nil, fmt.Errorf("%s: %w", errMsgCreateDir, err)
	}
	return &DiskStorage{dir: dir, urlPrefix: urlPrefix}, nil
}

// Save сохраняет файл на диск и возвращает публичный URL.
func (s *DiskStorage) Save(ctx context.Context, upload services.Upload) (string, error) {
	log := logger.Log(ctx).With(zap.String("storage", "disk"), zap.String("method", "Save"))

	name := uuid.New().String() + "_" + filepath.Base(upload.Filename)
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		log.Error(ctx, errMsgCreateFile, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errMsgCreateFile, err)
	}

	if _, err := io.Copy(file, upload.Content); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		log.Error(ctx, errMsgWriteFile, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errMsgWriteFile, err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		log.Error(ctx, errMsgWriteFile, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errMsgWriteFile, err)
	}

	log.Debug(ctx, "file saved", zap.String("name", name))
	return s.urlPrefix + "/" + name, nil
}

// Dir возвращает каталог хранилища для публикации статики.
func (s *DiskStorage) Dir() string {
	return s.dir
}
