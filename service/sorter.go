package service

import (
	"sort"

	"github.com/nanaki-93/lsr/model"
)

// Sort orders entries in place. Brief listings have no size or time data,
// so they are always ordered by name. Equal keys keep their scan order.
func Sort(entries []model.Entry, field model.SortField, detailed bool) {
	if !detailed {
		field = model.SortByName
	}

	switch field {
	case model.SortBySize:
		sort.Stable(model.BySize(entries))
	case model.SortByTime:
		sort.Stable(model.ByTime(entries))
	default:
		sort.Stable(model.ByName(entries))
	}
}
