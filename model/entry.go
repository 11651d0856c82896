package model

import (
	"fmt"
	"io/fs"
	"math"
	"time"
)

// UnknownOwner is shown when the owning uid has no resolvable user name.
const UnknownOwner = "unknown"

const (
	shortTimeLayout = "2 Jan 15:04"
	longTimeLayout  = "2 Jan  2006"
)

var sizeUnits = []string{"", "K", "M", "G"}

type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	KindOther
)

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "other"
	}
}

// KindOf classifies a mode by its file-type bits.
func KindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDirectory
	default:
		return KindOther
	}
}

// ColorClass selects how an entry name is painted. It never takes part in ordering.
type ColorClass int

const (
	ColorFile ColorClass = iota
	ColorDirectory
	ColorExecutable
	ColorOther
)

// ColorOf maps a kind and its mode bits to a color class.
func ColorOf(kind EntryKind, mode fs.FileMode) ColorClass {
	switch kind {
	case KindDirectory:
		return ColorDirectory
	case KindFile:
		if mode&0o111 != 0 {
			return ColorExecutable
		}
		return ColorFile
	default:
		return ColorOther
	}
}

// Entry is the metadata of one listed path. Fields past Color are only
// populated when a detailed listing was requested.
type Entry struct {
	Path  string
	Name  string
	Kind  EntryKind
	Color ColorClass

	Mode        fs.FileMode
	Permissions string
	Owner       string
	Size        uint64
	HumanSize   string
	ModTime     time.Time
	TimeStr     string
}

func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// HumanSize renders a byte count with binary prefixes up to G.
func HumanSize(size uint64) string {
	value := float64(size)
	unit := sizeUnits[0]
	for _, u := range sizeUnits {
		unit = u
		if value < 1024 || u == sizeUnits[len(sizeUnits)-1] {
			break
		}
		value /= 1024
	}

	if value != math.Floor(value) {
		return fmt.Sprintf("%.1f%s", value, unit)
	}
	return fmt.Sprintf("%d%s", uint64(value), unit)
}

// FormatTime uses the short "day month hh:mm" form for the current year and
// "day month  year" otherwise.
func FormatTime(mtime, now time.Time) string {
	mtime = mtime.Local()
	if mtime.Year() == now.Local().Year() {
		return mtime.Format(shortTimeLayout)
	}
	return mtime.Format(longTimeLayout)
}

// Permissions returns an ls style mode string such as "drwxr-xr-x".
// FileMode.String is avoided since it prints more than one type letter.
func Permissions(mode fs.FileMode) string {
	b := []byte(mode.Perm().String())
	switch {
	case mode&fs.ModeDevice != 0:
		if mode&fs.ModeCharDevice != 0 {
			b[0] = 'c'
		} else {
			b[0] = 'b'
		}
	case mode&fs.ModeCharDevice != 0:
		b[0] = 'c'
	case mode&fs.ModeDir != 0:
		b[0] = 'd'
	case mode&fs.ModeSymlink != 0:
		b[0] = 'l'
	case mode&fs.ModeNamedPipe != 0:
		b[0] = 'p'
	case mode&fs.ModeSocket != 0:
		b[0] = 's'
	default:
		b[0] = '-'
	}

	patch := func(i int, set bool, lower, upper byte) {
		if !set {
			return
		}
		if b[i] == 'x' {
			b[i] = lower
		} else {
			b[i] = upper
		}
	}
	patch(3, mode&fs.ModeSetuid != 0, 's', 'S')
	patch(6, mode&fs.ModeSetgid != 0, 's', 'S')
	patch(9, mode&fs.ModeSticky != 0, 't', 'T')

	return string(b)
}
