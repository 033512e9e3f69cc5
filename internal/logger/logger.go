package logger

import (
	"fmt"
	"sync"
)

var (
	defaultLogger Logger = nopLogger{}
	mu            sync.RWMutex
	initialized   bool
)

// Init 初始化全域 logger
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return fmt.Errorf("logger already initialized; call Shutdown() before re-initializing")
	}

	l, err := New(config)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	defaultLogger = l
	initialized = true
	return nil
}

// Get 取得全域 logger; returns a no-op logger before Init
func Get() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// With 建立帶 context 的子 logger
func With(args ...any) Logger {
	return Get().With(args...)
}

// Shutdown closes the global logger and resets it to no-op
func Shutdown() error {
	mu.Lock()
	if !initialized {
		mu.Unlock()
		return nil
	}
	l := defaultLogger
	defaultLogger = nopLogger{}
	initialized = false
	mu.Unlock()

	return l.Close()
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (n nopLogger) With(args ...any) Logger     { return n }
func (nopLogger) Close() error                  { return nil }
