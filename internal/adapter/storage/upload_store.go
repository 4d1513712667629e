package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hadjerbacha/cetic-ged/internal/core/ports"
)

// PublicPrefix is the URL prefix under which the upload directory is served.
// Database rows store public paths, never filesystem paths.
const PublicPrefix = "/uploads"

type UploadStore struct {
	dir string
}

var _ ports.FileStore = (*UploadStore)(nil)

func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

func (s *UploadStore) Dir() string {
	return s.dir
}

func (s *UploadStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		_ = src.Close()
	}()

	name := fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(),
		shortSuffix(),
		strings.ToLower(filepath.Ext(file.Filename)),
	)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	return PublicPrefix + "/" + name, nil
}

func (s *UploadStore) Remove(publicPath string) error {
	diskPath, ok := s.Resolve(publicPath)
	if !ok {
		return nil
	}

	err := os.Remove(diskPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Resolve maps a public path back to its location inside the upload
// directory. Paths that do not point at a direct child of the directory
// resolve to nothing.
func (s *UploadStore) Resolve(publicPath string) (string, bool) {
	name := strings.TrimPrefix(publicPath, PublicPrefix+"/")
	if name == publicPath || name == "" {
		return "", false
	}
	if filepath.Base(name) != name {
		return "", false
	}
	return filepath.Join(s.dir, name), true
}

func shortSuffix() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:9]
}
