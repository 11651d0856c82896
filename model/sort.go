package model

import (
	"fmt"
	"strings"
)

type SortField int

const (
	SortByName SortField = iota
	SortBySize
	SortByTime
)

func (f SortField) String() string {
	switch f {
	case SortBySize:
		return "size"
	case SortByTime:
		return "time"
	default:
		return "name"
	}
}

// ParseSortField accepts name, size or time. An empty string means name.
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortByName, nil
	case "size":
		return SortBySize, nil
	case "time":
		return SortByTime, nil
	default:
		return SortByName, fmt.Errorf("invalid sort field %q, must be one of: name, size, time", s)
	}
}

// ByName orders entries by name in code point order.
type ByName []Entry

func (a ByName) Len() int           { return len(a) }
func (a ByName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByName) Less(i, j int) bool { return a[i].Name < a[j].Name }

type BySize []Entry

func (a BySize) Len() int           { return len(a) }
func (a BySize) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a BySize) Less(i, j int) bool { return a[i].Size < a[j].Size }

type ByTime []Entry

func (a ByTime) Len() int           { return len(a) }
func (a ByTime) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByTime) Less(i, j int) bool { return a[i].ModTime.Before(a[j].ModTime) }
