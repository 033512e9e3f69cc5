package config

import (
	"fmt"
	"time"

	"github.com/Ning0612/FakeFTP/internal/domain"
	"github.com/Ning0612/FakeFTP/internal/logger"
)

// Config represents a fixture set plus logging for fakeftp
type Config struct {
	Log LogConfig `mapstructure:"log"`

	// Fixtures are the directory entries the mock server reports
	Fixtures []Fixture `mapstructure:"fixtures"`
}

// Fixture is one entry as written in the config file.
// Pointer fields stay nil when the key is absent, so unset survives loading.
type Fixture struct {
	Name             *string    `mapstructure:"name"`
	Data             *string    `mapstructure:"data"`
	Bytes            *int64     `mapstructure:"bytes"`
	Type             string     `mapstructure:"type"`
	LastModifiedTime *time.Time `mapstructure:"last_modified_time"`
	Directory        *string    `mapstructure:"directory"`
}

// LogConfig mirrors logger.Config in file form
type LogConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig configures rotated file output
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks the fixture set; the entries themselves stay permissive
func (c *Config) Validate() error {
	for i, f := range c.Fixtures {
		if f.Name == nil && f.Directory == nil {
			return fmt.Errorf("%w: fixture %d has neither name nor directory", domain.ErrConfigInvalid, i)
		}
		if _, err := domain.ParseTransferMode(f.Type); err != nil {
			return fmt.Errorf("%w: fixture %d: %w: %q", domain.ErrConfigInvalid, i, err, f.Type)
		}
	}
	return nil
}

// Files builds the fixture entries. Keys absent from the file leave the
// matching fields unset, and bytes is applied after data so it wins.
func (c *Config) Files() []*domain.File {
	files := make([]*domain.File, 0, len(c.Fixtures))
	for _, fx := range c.Fixtures {
		files = append(files, fx.File())
	}
	return files
}

// File converts one fixture; call Validate first so Type parses
func (fx Fixture) File() *domain.File {
	var opts []domain.FileOption
	if fx.Name != nil {
		opts = append(opts, domain.WithName(*fx.Name))
	}
	if fx.Data != nil {
		opts = append(opts, domain.WithData([]byte(*fx.Data)))
	}
	if fx.Bytes != nil {
		opts = append(opts, domain.WithBytes(*fx.Bytes))
	}
	if mode, err := domain.ParseTransferMode(fx.Type); err == nil && mode != domain.ModeUnset {
		opts = append(opts, domain.WithMode(mode))
	}
	if fx.LastModifiedTime != nil {
		opts = append(opts, domain.WithLastModifiedTime(*fx.LastModifiedTime))
	}
	if fx.Directory != nil {
		opts = append(opts, domain.WithDirectory(*fx.Directory))
	}
	return domain.NewFile(opts...)
}

// Logger converts the log section into a logger.Config
func (l LogConfig) Logger() logger.Config {
	return logger.Config{
		Level:  logger.ParseLevel(l.Level),
		Format: logger.ParseFormat(l.Format),
		File: logger.FileConfig{
			Path:       l.File.Path,
			MaxSizeMB:  l.File.MaxSizeMB,
			MaxAgeDays: l.File.MaxAgeDays,
			MaxBackups: l.File.MaxBackups,
			Compress:   l.File.Compress,
		},
	}
}
