package model

import (
	"io/fs"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name string
		size uint64
		want string
	}{
		{name: "zero", size: 0, want: "0"},
		{name: "below one kilobyte", size: 999, want: "999"},
		{name: "just below boundary", size: 1023, want: "1023"},
		{name: "one kilobyte", size: 1024, want: "1K"},
		{name: "fractional kilobytes", size: 1536, want: "1.5K"},
		{name: "one megabyte", size: 1024 * 1024, want: "1M"},
		{name: "fractional megabytes", size: 5*1024*1024 + 512*1024, want: "5.5M"},
		{name: "one gigabyte", size: 1073741824, want: "1G"},
		{name: "terabyte stays in gigabytes", size: 1 << 40, want: "1024G"},
		{name: "large fractional gigabytes", size: 3<<40 + 1<<29, want: "3072.5G"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanSize(tt.size))
		})
	}
}

func TestFormatTime(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		mtime time.Time
		want  string
	}{
		{
			name:  "same year uses clock time",
			mtime: time.Date(2026, time.March, 4, 9, 7, 0, 0, time.Local),
			want:  "4 Mar 09:07",
		},
		{
			name:  "previous year uses year",
			mtime: time.Date(2024, time.December, 31, 23, 59, 0, 0, time.Local),
			want:  "31 Dec  2024",
		},
		{
			name:  "future year uses year",
			mtime: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.Local),
			want:  "1 Jan  2027",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.mtime, now))
		})
	}
}

func TestPermissions(t *testing.T) {
	tests := []struct {
		name string
		mode fs.FileMode
		want string
	}{
		{name: "regular file", mode: 0o644, want: "-rw-r--r--"},
		{name: "directory", mode: fs.ModeDir | 0o755, want: "drwxr-xr-x"},
		{name: "symlink", mode: fs.ModeSymlink | 0o777, want: "lrwxrwxrwx"},
		{name: "named pipe", mode: fs.ModeNamedPipe | 0o600, want: "prw-------"},
		{name: "socket", mode: fs.ModeSocket | 0o755, want: "srwxr-xr-x"},
		{name: "block device", mode: fs.ModeDevice | 0o660, want: "brw-rw----"},
		{name: "char device", mode: fs.ModeDevice | fs.ModeCharDevice | 0o666, want: "crw-rw-rw-"},
		{name: "setuid executable", mode: fs.ModeSetuid | 0o755, want: "-rwsr-xr-x"},
		{name: "setgid without exec", mode: fs.ModeSetgid | 0o640, want: "-rw-r-S---"},
		{name: "sticky directory", mode: fs.ModeDir | fs.ModeSticky | 0o777, want: "drwxrwxrwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Permissions(tt.mode)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 10)
		})
	}
}

func TestKindAndColor(t *testing.T) {
	assert.Equal(t, KindFile, KindOf(0o644))
	assert.Equal(t, KindDirectory, KindOf(fs.ModeDir|0o755))
	assert.Equal(t, KindOther, KindOf(fs.ModeNamedPipe))

	assert.Equal(t, ColorDirectory, ColorOf(KindDirectory, fs.ModeDir|0o755))
	assert.Equal(t, ColorFile, ColorOf(KindFile, 0o644))
	assert.Equal(t, ColorExecutable, ColorOf(KindFile, 0o744))
	assert.Equal(t, ColorOther, ColorOf(KindOther, fs.ModeSocket|0o777))
}

func TestParseSortField(t *testing.T) {
	for input, want := range map[string]SortField{
		"":      SortByName,
		"name":  SortByName,
		"SIZE":  SortBySize,
		" time": SortByTime,
	} {
		got, err := ParseSortField(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseSortField("owner")
	assert.Error(t, err)
}

func TestSortInterfaces(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Name: "b", Size: 2048, HumanSize: "2K", ModTime: base.Add(2 * time.Hour)},
		{Name: "A", Size: 900, HumanSize: "900", ModTime: base},
		{Name: "a", Size: 1536, HumanSize: "1.5K", ModTime: base.Add(time.Hour)},
	}

	names := func(es []Entry) []string {
		out := make([]string, len(es))
		for i, e := range es {
			out[i] = e.Name
		}
		return out
	}

	sort.Stable(ByName(entries))
	assert.Equal(t, []string{"A", "a", "b"}, names(entries))

	// "900" sorts after "2K" as a string but before it by size.
	sort.Stable(BySize(entries))
	assert.Equal(t, []string{"A", "a", "b"}, names(entries))

	sort.Stable(ByTime(entries))
	assert.Equal(t, []string{"A", "a", "b"}, names(entries))
}
