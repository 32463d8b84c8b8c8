package services

import (
	"context"
	"io"
)

// Upload представляет один загружаемый файл.
type Upload struct {
	Filename string
	Content  io.Reader
}

// FileStorage определяет интерфейс для хранения загруженных файлов.
// Save возвращает публичную ссылку на сохраненный файл.
type FileStorage interface {
	Save(ctx context.Context, upload Upload) (string, error)
}
