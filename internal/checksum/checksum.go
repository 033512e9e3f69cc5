// Package checksum hashes staged fixture payloads for HASH replies.
package checksum

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"
)

// Algorithm names a hash as it appears on the FTP control channel
type Algorithm string

const (
	MD5    Algorithm = "MD5"
	SHA1   Algorithm = "SHA-1"
	SHA256 Algorithm = "SHA-256"
)

// ParseAlgorithm accepts HASH/OPTS spellings such as "sha-256" or "sha256"
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.ReplaceAll(s, "-", "")) {
	case "MD5":
		return MD5, nil
	case "SHA1":
		return SHA1, nil
	case "SHA256":
		return SHA256, nil
	}
	return "", fmt.Errorf("unsupported algorithm: %s", s)
}

// Options configures the calculator
type Options struct {
	// MaxSize: payloads larger than this are refused (0 = unlimited)
	MaxSize int64

	// BufferSize: size of buffer for streaming reads
	BufferSize int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		MaxSize:    16 * 1024 * 1024, // 16MB
		BufferSize: 32 * 1024,        // 32KB
	}
}

// Calculator computes payload digests
type Calculator struct {
	opts Options
}

// NewCalculator creates a calculator with the given options
func NewCalculator(opts Options) *Calculator {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultOptions().BufferSize
	}
	return &Calculator{opts: opts}
}

// Sum is Calculate over an in-memory payload
func (c *Calculator) Sum(ctx context.Context, data []byte, algo Algorithm) (string, error) {
	return c.Calculate(ctx, bytes.NewReader(data), algo)
}

// Calculate streams reader through the hash and returns lowercase hex
func (c *Calculator) Calculate(ctx context.Context, reader io.Reader, algo Algorithm) (string, error) {
	var h hash.Hash
	switch algo {
	case MD5:
		h = md5.New()
	case SHA1:
		h = sha1.New()
	case SHA256:
		h = sha256.New()
	default:
		return "", fmt.Errorf("unsupported algorithm: %s", algo)
	}

	if c.opts.MaxSize > 0 {
		reader = io.LimitReader(reader, c.opts.MaxSize+1)
	}

	buf := make([]byte, c.opts.BufferSize)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		n, err := reader.Read(buf)
		if n > 0 {
			total += int64(n)
			if c.opts.MaxSize > 0 && total > c.opts.MaxSize {
				return "", fmt.Errorf("payload exceeds maximum (%d bytes)", c.opts.MaxSize)
			}
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read error: %w", err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
