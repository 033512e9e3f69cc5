package testutil

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/Ning0612/FakeFTP/internal/domain"
)

// FixedTime is the modification time staged by NewFixture
var FixedTime = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

// NewFixture creates a named entry with FixedTime; opts apply afterwards
func NewFixture(name string, opts ...domain.FileOption) *domain.File {
	base := []domain.FileOption{
		domain.WithName(name),
		domain.WithLastModifiedTime(FixedTime),
	}
	return domain.NewFile(append(base, opts...)...)
}

// MemFs returns an in-memory filesystem for config tests
func MemFs() afero.Fs {
	return afero.NewMemMapFs()
}

// WriteFile writes content to fs, creating parent directories
func WriteFile(t *testing.T, fs afero.Fs, path, content string) string {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// RandomString generates a random string of the given length
func RandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
