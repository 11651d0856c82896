package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/nanaki-93/lsr/model"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", s)
	}
}

// Scheme holds the colors used by both renderers.
// Blue: directories and timestamps
// Green: executables and sizes
// Yellow: owners
// Cyan: anything that is not a file or directory
type Scheme struct {
	directory   *color.Color
	file        *color.Color
	executable  *color.Color
	other       *color.Color
	permissions *color.Color
	size        *color.Color
	owner       *color.Color
	time        *color.Color
}

// NewScheme builds the color scheme. In auto mode fatih/color decides from
// the terminal and NO_COLOR; the other modes force colors on or off.
func NewScheme(mode ColorMode) *Scheme {
	s := &Scheme{
		directory:   color.New(color.FgBlue, color.Bold),
		file:        color.New(color.Reset),
		executable:  color.New(color.FgGreen, color.Bold),
		other:       color.New(color.FgCyan, color.Bold),
		permissions: color.New(color.Reset),
		size:        color.New(color.FgGreen, color.Bold),
		owner:       color.New(color.FgYellow, color.Bold),
		time:        color.New(color.FgBlue),
	}

	for _, c := range s.all() {
		switch mode {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
	}
	return s
}

func (s *Scheme) all() []*color.Color {
	return []*color.Color{s.directory, s.file, s.executable, s.other, s.permissions, s.size, s.owner, s.time}
}

// Name returns the color for an entry name of the given class.
func (s *Scheme) Name(class model.ColorClass) *color.Color {
	switch class {
	case model.ColorDirectory:
		return s.directory
	case model.ColorExecutable:
		return s.executable
	case model.ColorOther:
		return s.other
	default:
		return s.file
	}
}
