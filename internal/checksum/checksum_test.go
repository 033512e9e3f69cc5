package checksum

import (
	"context"
	"strings"
	"testing"
)

func TestSum_KnownVectors(t *testing.T) {
	calc := NewCalculator(DefaultOptions())
	ctx := context.Background()

	tests := []struct {
		algo Algorithm
		in   string
		want string
	}{
		{MD5, "hello world", "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{SHA1, "hello world", "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{SHA256, "hello world", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{MD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo)+"/"+tt.in, func(t *testing.T) {
			got, err := calc.Sum(ctx, []byte(tt.in), tt.algo)
			if err != nil {
				t.Fatalf("Sum failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculate_MaxSize(t *testing.T) {
	calc := NewCalculator(Options{MaxSize: 10, BufferSize: 4})

	if _, err := calc.Calculate(context.Background(), strings.NewReader(strings.Repeat("x", 11)), MD5); err == nil {
		t.Fatal("expected error for payload exceeding MaxSize")
	}
	if _, err := calc.Calculate(context.Background(), strings.NewReader(strings.Repeat("x", 10)), MD5); err != nil {
		t.Fatalf("payload at MaxSize should pass: %v", err)
	}
}

func TestCalculate_Cancelled(t *testing.T) {
	calc := NewCalculator(DefaultOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := calc.Sum(ctx, []byte("data"), SHA256); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestCalculate_Unsupported(t *testing.T) {
	calc := NewCalculator(DefaultOptions())
	if _, err := calc.Sum(context.Background(), nil, Algorithm("CRC32")); err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"md5":     MD5,
		"SHA-1":   SHA1,
		"sha256":  SHA256,
		"Sha-256": SHA256,
	}
	for in, want := range tests {
		got, err := ParseAlgorithm(in)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseAlgorithm("crc32"); err == nil {
		t.Error("ParseAlgorithm(crc32) should fail")
	}
}
