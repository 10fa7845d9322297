package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
)

// сигнатуры всех поддерживаемых форматов укладываются в первые 262 байта
const sniffLen = 262

// AllowedKinds разрешённые расширения по реальному типу содержимого
var AllowedKinds = map[string]bool{
	"png": true,
	"jpg": true,
	"gif": true,
	"mp4": true,
	"mov": true,
	"avi": true,
}

// UploadStore файловое хранилище медиа к отчётам и документов ответчиков.
// Возвращает непрозрачную ссылку (имя файла), которую ядро хранит как есть.
type UploadStore struct {
	rootPath string
	maxBytes int64
}

func NewUploadStore(rootPath string, maxBytes int64) (*UploadStore, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}
	return &UploadStore{rootPath: rootPath, maxBytes: maxBytes}, nil
}

// Save проверяет тип по магическим байтам и сохраняет файл под случайным именем
func (s *UploadStore) Save(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("storage: не удалось прочитать файл: %w", err)
	}
	head = head[:n]

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown || !AllowedKinds[kind.Extension] {
		return "", apperror.Validation("unsupported file type, allowed: png, jpg, gif, mp4, mov, avi")
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + kind.Extension
	targetPath := filepath.Join(s.rootPath, name)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limited := io.LimitedReader{R: io.MultiReader(bytes.NewReader(head), r), N: s.maxBytes + 1}
	written, err := io.Copy(f, &limited)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: ошибка записи файла: %w", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(tempPath)
		return "", apperror.Validation("file exceeds the %d byte limit", s.maxBytes)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}
	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}
	return name, nil
}

// Path путь к сохранённому файлу; имена с разделителями каталогов отклоняются
func (s *UploadStore) Path(name string) (string, error) {
	if !validName(name) {
		return "", apperror.New(apperror.ErrCodeNotFound, "file not found")
	}
	p := filepath.Join(s.rootPath, name)
	if _, err := os.Stat(p); err != nil {
		return "", apperror.New(apperror.ErrCodeNotFound, "file not found")
	}
	return p, nil
}

// Remove удаляет сохранённый файл; отсутствующий файл не считается ошибкой
func (s *UploadStore) Remove(name string) error {
	if !validName(name) {
		return apperror.New(apperror.ErrCodeNotFound, "file not found")
	}
	if err := os.Remove(filepath.Join(s.rootPath, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл %s: %w", name, err)
	}
	return nil
}

func validName(name string) bool {
	return name != "" && name == filepath.Base(name) && !strings.HasPrefix(name, ".") && !strings.HasSuffix(name, ".tmp")
}
