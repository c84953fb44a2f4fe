package view

import "fmt"

// SpecMode selects how binding a measure spec's size is. A measure spec
// packs a size and a mode into one int; parents hand specs to children
// during the measure pass to communicate how much room is available.
type SpecMode int

const (
	// Unspecified imposes no constraint; the child picks its own size.
	Unspecified SpecMode = 0
	// Exactly forces the child to the given size.
	Exactly SpecMode = 1
	// AtMost allows any size up to the given limit.
	AtMost SpecMode = 2
)

func (m SpecMode) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case Exactly:
		return "Exactly"
	case AtMost:
		return "AtMost"
	default:
		return fmt.Sprintf("SpecMode(%d)", int(m))
	}
}

const (
	specModeShift = 30
	specModeMask  = 0x3 << specModeShift
	specSizeMask  = 1<<specModeShift - 1
)

// MakeMeasureSpec packs size and mode into a measure spec.
func MakeMeasureSpec(size int, mode SpecMode) int {
	return (size & specSizeMask) | (int(mode) << specModeShift)
}

// SpecSize extracts the size from a measure spec.
func SpecSize(spec int) int { return spec & specSizeMask }

// SpecModeOf extracts the mode from a measure spec.
func SpecModeOf(spec int) SpecMode { return SpecMode((spec & specModeMask) >> specModeShift) }

// ResolveSize reconciles a view's preferred size with a measure spec:
// Exactly wins outright, AtMost caps the preference, Unspecified keeps it.
func ResolveSize(preferred, spec int) int {
	size := SpecSize(spec)
	switch SpecModeOf(spec) {
	case Exactly:
		return size
	case AtMost:
		if preferred > size {
			return size
		}
		return preferred
	default:
		return preferred
	}
}
