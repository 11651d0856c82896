package render

import (
	"fmt"
	"io"

	"github.com/nanaki-93/lsr/model"
)

const timeColumnWidth = 12

// RenderDetailed prints one line per entry:
//
//	permissions [size] owner time name
//
// Size and owner are right aligned to the widest value in the listing.
func RenderDetailed(w io.Writer, entries []model.Entry, showSize bool, scheme *Scheme) error {
	owners := make([]string, len(entries))
	sizes := make([]string, len(entries))
	for i, e := range entries {
		owners[i] = e.Owner
		sizes[i] = e.HumanSize
	}
	ownerWidth := widest(owners)
	sizeWidth := widest(sizes)

	for _, e := range entries {
		line := scheme.permissions.Sprint(e.Permissions) + " "
		if showSize {
			line += scheme.size.Sprintf("%*s", sizeWidth, e.HumanSize) + " "
		}
		line += scheme.owner.Sprintf("%*s", ownerWidth, e.Owner) + " "
		line += scheme.time.Sprintf("%*s", timeColumnWidth, e.TimeStr) + " "
		line += scheme.Name(e.Color).Sprint(e.Name)

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
