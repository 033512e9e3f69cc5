package domain

import (
	"strings"
	"time"
)

// TransferMode tags which FTP data-connection mode a fixture is staged for
type TransferMode int

const (
	ModeUnset TransferMode = iota
	ModeActive
	ModePassive
)

// String returns the string representation of the mode
func (m TransferMode) String() string {
	switch m {
	case ModeActive:
		return "active"
	case ModePassive:
		return "passive"
	default:
		return ""
	}
}

// ParseTransferMode parses a mode name (case-insensitive)
// The empty string parses to ModeUnset
func ParseTransferMode(s string) (TransferMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ModeUnset, nil
	case "active":
		return ModeActive, nil
	case "passive":
		return ModePassive, nil
	}
	return ModeUnset, ErrInvalidMode
}

// File is a directory entry reported by the mock FTP server.
// Every field is optional; the Has* methods tell "never set" apart from
// "set to the zero value". Setters accept any value without validation.
type File struct {
	name    string
	data    []byte
	bytes   int64
	mode    TransferMode
	modTime time.Time
	dir     string

	hasName    bool
	hasData    bool
	hasBytes   bool
	hasModTime bool
	hasDir     bool
}

// FileOption sets one field of a File at construction time
type FileOption func(*File)

// WithName sets the base name
func WithName(name string) FileOption {
	return func(f *File) { f.SetName(name) }
}

// WithBytes sets the reported size
func WithBytes(n int64) FileOption {
	return func(f *File) { f.SetBytes(n) }
}

// WithMode sets the transfer mode tag
func WithMode(m TransferMode) FileOption {
	return func(f *File) { f.SetMode(m) }
}

// WithLastModifiedTime sets the modification time
func WithLastModifiedTime(t time.Time) FileOption {
	return func(f *File) { f.SetLastModifiedTime(t) }
}

// WithDirectory sets the containing directory
func WithDirectory(dir string) FileOption {
	return func(f *File) { f.SetDirectory(dir) }
}

// WithData sets the payload, and bytes along with it.
// Options apply in order, so a later WithBytes overrides the derived size.
func WithData(data []byte) FileOption {
	return func(f *File) { f.SetData(data) }
}

// NewFile creates a File; omitted options leave their fields unset
func NewFile(opts ...FileOption) *File {
	f := &File{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the base name
func (f *File) Name() string {
	return f.name
}

func (f *File) HasName() bool {
	return f.hasName
}

func (f *File) SetName(name string) {
	f.name = name
	f.hasName = true
}

// Bytes returns the reported size
func (f *File) Bytes() int64 {
	return f.bytes
}

func (f *File) HasBytes() bool {
	return f.hasBytes
}

// SetBytes overrides the reported size; it is not re-derived until the next data write
func (f *File) SetBytes(n int64) {
	f.bytes = n
	f.hasBytes = true
}

// Data returns the stored payload as-is
func (f *File) Data() []byte {
	return f.data
}

func (f *File) HasData() bool {
	return f.hasData
}

// SetData stores the payload and sets bytes to its length
func (f *File) SetData(data []byte) {
	f.data = data
	f.hasData = true
	f.SetBytes(int64(len(data)))
}

// SetDataString is SetData for string payloads; bytes is the UTF-8 length
func (f *File) SetDataString(s string) {
	f.SetData([]byte(s))
}

// Mode returns the transfer mode tag
func (f *File) Mode() TransferMode {
	return f.mode
}

func (f *File) HasMode() bool {
	return f.mode != ModeUnset
}

func (f *File) SetMode(m TransferMode) {
	f.mode = m
}

// LastModifiedTime returns exactly the instant that was stored
func (f *File) LastModifiedTime() time.Time {
	return f.modTime
}

func (f *File) HasLastModifiedTime() bool {
	return f.hasModTime
}

func (f *File) SetLastModifiedTime(t time.Time) {
	f.modTime = t
	f.hasModTime = true
}

// Directory returns the containing path
func (f *File) Directory() string {
	return f.dir
}

func (f *File) HasDirectory() bool {
	return f.hasDir
}

func (f *File) SetDirectory(dir string) {
	f.dir = dir
	f.hasDir = true
}

// IsPassive returns true if the entry is tagged passive
func (f *File) IsPassive() bool {
	return f.mode == ModePassive
}

// IsActive returns true if the entry is tagged active
func (f *File) IsActive() bool {
	return f.mode == ModeActive
}

// FullName returns the name joined onto the directory with a single '/'.
// An unset or empty directory yields the bare name.
func (f *File) FullName() string {
	if f.dir == "" {
		return f.name
	}
	dir := strings.TrimRight(f.dir, "/")
	name := strings.TrimLeft(f.name, "/")
	return dir + "/" + name
}
