package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Attributes(t *testing.T) {
	t.Run("name", func(t *testing.T) {
		f := NewFile()
		f.SetName("some name")
		assert.Equal(t, "some name", f.Name())
		assert.True(t, f.HasName())
	})

	t.Run("last modified time", func(t *testing.T) {
		f := NewFile()
		now := time.Now()
		f.SetLastModifiedTime(now)
		// monotonic clock reading must survive, so compare with ==
		assert.True(t, f.LastModifiedTime() == now)
	})

	t.Run("bytes", func(t *testing.T) {
		f := NewFile()
		f.SetBytes(87)
		assert.Equal(t, int64(87), f.Bytes())
	})

	t.Run("data", func(t *testing.T) {
		f := NewFile()
		f.SetDataString("some data")
		assert.Equal(t, []byte("some data"), f.Data())
		assert.Equal(t, int64(len("some data")), f.Bytes())
	})
}

func TestFile_DataThenBytes(t *testing.T) {
	f := NewFile()
	f.SetData([]byte("abcdef"))
	f.SetBytes(2)
	assert.Equal(t, int64(2), f.Bytes(), "explicit bytes is not re-derived")

	f.SetData([]byte("xyz"))
	assert.Equal(t, int64(3), f.Bytes(), "data write re-derives bytes")
}

func TestFile_EmptyDataIsSet(t *testing.T) {
	f := NewFile()
	f.SetData(nil)
	assert.True(t, f.HasData())
	assert.True(t, f.HasBytes())
	assert.Zero(t, f.Bytes())
}

func TestFile_NoValidation(t *testing.T) {
	f := NewFile()
	f.SetBytes(-5)
	f.SetMode(TransferMode(42))
	f.SetName("a/b")

	assert.Equal(t, int64(-5), f.Bytes())
	assert.Equal(t, TransferMode(42), f.Mode())
	assert.False(t, f.IsActive())
	assert.False(t, f.IsPassive())
	assert.Equal(t, "a/b", f.Name())
}

func TestNewFile_Setup(t *testing.T) {
	now := time.Now()

	t.Run("without attributes", func(t *testing.T) {
		f := NewFile()
		assert.False(t, f.HasName())
		assert.False(t, f.HasBytes())
		assert.False(t, f.HasMode())
		assert.False(t, f.HasData())
		assert.False(t, f.HasLastModifiedTime())
		assert.False(t, f.HasDirectory())
		assert.Equal(t, ModeUnset, f.Mode())
	})

	t.Run("name", func(t *testing.T) {
		f := NewFile(WithName("filename"))
		assert.Equal(t, "filename", f.Name())
		assert.False(t, f.HasBytes())
		assert.False(t, f.HasMode())
	})

	t.Run("name and bytes", func(t *testing.T) {
		f := NewFile(WithName("filename"), WithBytes(104))
		assert.Equal(t, "filename", f.Name())
		assert.Equal(t, int64(104), f.Bytes())
		assert.False(t, f.HasMode())
	})

	t.Run("name bytes and type", func(t *testing.T) {
		f := NewFile(WithName("filename"), WithBytes(104), WithMode(ModePassive))
		assert.Equal(t, int64(104), f.Bytes())
		assert.Equal(t, ModePassive, f.Mode())
	})

	t.Run("name bytes type and last modified time", func(t *testing.T) {
		f := NewFile(WithName("filename"), WithBytes(104), WithMode(ModePassive), WithLastModifiedTime(now))
		assert.Equal(t, ModePassive, f.Mode())
		assert.True(t, f.LastModifiedTime() == now)
	})

	t.Run("all positional fields", func(t *testing.T) {
		f := NewFile(
			WithName("filename"),
			WithBytes(104),
			WithMode(ModePassive),
			WithLastModifiedTime(now),
			WithDirectory("some/dir"),
		)
		assert.Equal(t, "filename", f.Name())
		assert.Equal(t, int64(104), f.Bytes())
		assert.Equal(t, ModePassive, f.Mode())
		assert.True(t, f.LastModifiedTime() == now)
		assert.Equal(t, "some/dir", f.Directory())
	})

	t.Run("zero values are set", func(t *testing.T) {
		f := NewFile(WithName(""), WithBytes(0), WithDirectory(""))
		assert.True(t, f.HasName())
		assert.True(t, f.HasBytes())
		assert.True(t, f.HasDirectory())
	})

	t.Run("options apply in order", func(t *testing.T) {
		f := NewFile(WithData([]byte("data")), WithBytes(99))
		assert.Equal(t, int64(99), f.Bytes())

		f = NewFile(WithBytes(99), WithData([]byte("data")))
		assert.Equal(t, int64(4), f.Bytes())
	})
}

func TestFile_ModePredicates(t *testing.T) {
	tests := []struct {
		mode    TransferMode
		passive bool
		active  bool
	}{
		{ModePassive, true, false},
		{ModeActive, false, true},
		{ModeUnset, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			f := NewFile()
			f.SetMode(tt.mode)
			assert.Equal(t, tt.passive, f.IsPassive())
			assert.Equal(t, tt.active, f.IsActive())
		})
	}
}

func TestFile_FullName(t *testing.T) {
	tests := []struct {
		name string
		opts []FileOption
		want string
	}{
		{"no directory", []FileOption{WithName("somename.txt")}, "somename.txt"},
		{"empty directory", []FileOption{WithName("somename.txt"), WithDirectory("")}, "somename.txt"},
		{"directory", []FileOption{WithName("somename.txt"), WithDirectory("some/dir")}, "some/dir/somename.txt"},
		{"trailing separator", []FileOption{WithName("somename.txt"), WithDirectory("some/dir/")}, "some/dir/somename.txt"},
		{"leading separator on name", []FileOption{WithName("/somename.txt"), WithDirectory("some/dir")}, "some/dir/somename.txt"},
		{"root directory", []FileOption{WithName("a.txt"), WithDirectory("/")}, "/a.txt"},
		{"no name", []FileOption{WithDirectory("some/dir")}, "some/dir/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFile(tt.opts...).FullName())
		})
	}
}

func TestFile_FullNameTracksFields(t *testing.T) {
	f := NewFile(WithName("a.txt"))
	assert.Equal(t, "a.txt", f.FullName())

	f.SetDirectory("pub")
	assert.Equal(t, "pub/a.txt", f.FullName())

	f.SetName("b.txt")
	assert.Equal(t, "pub/b.txt", f.FullName())
}

func TestParseTransferMode(t *testing.T) {
	tests := []struct {
		in      string
		want    TransferMode
		wantErr bool
	}{
		{"", ModeUnset, false},
		{"active", ModeActive, false},
		{"PASSIVE", ModePassive, false},
		{" passive ", ModePassive, false},
		{"extended", ModeUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTransferMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidMode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}
