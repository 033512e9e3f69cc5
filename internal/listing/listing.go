// Package listing renders fixture entries as FTP reply text.
package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ning0612/FakeFTP/internal/checksum"
	"github.com/Ning0612/FakeFTP/internal/domain"
)

const (
	// listTimeLayout is the ls -l style timestamp used in LIST lines
	listTimeLayout = "Jan 02 15:04"

	// mdtmLayout is the RFC 3659 time-val
	mdtmLayout = "20060102150405"
)

// Lookuper resolves a fixture by name
type Lookuper interface {
	Lookup(name string) (*domain.File, error)
	List(dir string) []*domain.File
}

// ListLine renders f as one LIST line; unset bytes render as 0
func ListLine(f *domain.File) string {
	return fmt.Sprintf("-rw-r--r--\t1\towner\tgroup\t%d\t%s\t%s",
		f.Bytes(),
		f.LastModifiedTime().Format(listTimeLayout),
		f.FullName(),
	)
}

// List renders LIST lines joined with CRLF
func List(files []*domain.File) string {
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, ListLine(f))
	}
	return joinLines(lines)
}

// NameList renders NLST output joined with CRLF
func NameList(files []*domain.File) string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.FullName())
	}
	return joinLines(names)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

// Responder answers metadata commands from a fixture table
type Responder struct {
	files Lookuper
	calc  *checksum.Calculator
}

// NewResponder creates a Responder over files
func NewResponder(files Lookuper) *Responder {
	return &Responder{
		files: files,
		calc:  checksum.NewCalculator(checksum.DefaultOptions()),
	}
}

// Size answers SIZE
func (r *Responder) Size(name string) string {
	f, err := r.files.Lookup(name)
	if err != nil {
		return notFound(name)
	}
	return fmt.Sprintf("213 %d", f.Bytes())
}

// ModTime answers MDTM in UTC
func (r *Responder) ModTime(name string) string {
	f, err := r.files.Lookup(name)
	if err != nil {
		return notFound(name)
	}
	if !f.HasLastModifiedTime() {
		return fmt.Sprintf("550 %s: %v", name, domain.ErrNoModTime)
	}
	return "213 " + f.LastModifiedTime().UTC().Format(mdtmLayout)
}

// Hash answers HASH with "213 <algo> 0-<end> <digest> <name>"
func (r *Responder) Hash(ctx context.Context, name string, algo checksum.Algorithm) string {
	f, err := r.files.Lookup(name)
	if err != nil {
		return notFound(name)
	}
	if !f.HasData() {
		return fmt.Sprintf("550 %s: %v", name, domain.ErrNoData)
	}

	sum, err := r.calc.Sum(ctx, f.Data(), algo)
	if err != nil {
		return fmt.Sprintf("504 %s: %v", name, err)
	}

	end := len(f.Data()) - 1
	if end < 0 {
		end = 0
	}
	return fmt.Sprintf("213 %s 0-%d %s %s", algo, end, sum, f.FullName())
}

// List answers LIST for dir
func (r *Responder) List(dir string) string {
	return List(r.files.List(dir))
}

// NameList answers NLST for dir
func (r *Responder) NameList(dir string) string {
	return NameList(r.files.List(dir))
}

// ParseModTime parses an MDTM reply back into a time, for client-side assertions
func ParseModTime(reply string) (time.Time, error) {
	code, val, ok := strings.Cut(strings.TrimSpace(reply), " ")
	if !ok || code != "213" {
		return time.Time{}, errors.New("not a 213 reply: " + reply)
	}
	return time.ParseInLocation(mdtmLayout, val, time.UTC)
}

func notFound(name string) string {
	return fmt.Sprintf("550 %s: No such file", name)
}
