package domain

import "errors"

// Fixture errors
var (
	// ErrNotFound indicates no fixture matches the requested name
	ErrNotFound = errors.New("fixture not found")

	// ErrInvalidMode indicates an unknown transfer mode name
	ErrInvalidMode = errors.New("invalid transfer mode")

	// ErrNoModTime indicates the fixture has no modification time staged
	ErrNoModTime = errors.New("modification time unavailable")

	// ErrNoData indicates the fixture has no payload staged
	ErrNoData = errors.New("no data staged")
)

// Config errors - 設定檔錯誤
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)
