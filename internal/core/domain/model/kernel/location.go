package kernel

import (
	"fmt"
	"strings"

	"hangerflow/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned for a Location without a level.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location level")

// Location addresses a point inside a building: level, column grid, zone and
// elevation. Every part is free text as provided by the model (for example
// level "L2", grid "C-4", zone "East", elevation "12'-6\""). A hanger needs at
// least a level; packages group hangers by level and zone.
type Location struct {
	level     string
	grid      string
	zone      string
	elevation string
}

// NewLocation trims all parts. It fails when level is empty.
func NewLocation(level, grid, zone, elevation string) (Location, error) {
	loc := Location{
		level:     strings.TrimSpace(level),
		grid:      strings.TrimSpace(grid),
		zone:      strings.TrimSpace(zone),
		elevation: strings.TrimSpace(elevation),
	}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Validate returns ErrLocationIsNotConstructed for a location without a level.
func (l Location) Validate() error {
	if l.level == "" {
		return ErrLocationIsNotConstructed
	}
	return nil
}

func (l Location) Level() string     { return l.level }
func (l Location) Grid() string      { return l.grid }
func (l Location) Zone() string      { return l.zone }
func (l Location) Elevation() string { return l.elevation }

// InArea reports whether the location lies on the given level and zone.
// An empty zone matches any zone on the level.
func (l Location) InArea(level, zone string) bool {
	if !strings.EqualFold(l.level, strings.TrimSpace(level)) {
		return false
	}
	zone = strings.TrimSpace(zone)
	return zone == "" || strings.EqualFold(l.zone, zone)
}

// String returns e.g. "L2/C-4/East@12'-6\"".
func (l Location) String() string {
	return fmt.Sprintf("%s/%s/%s@%s", l.level, l.grid, l.zone, l.elevation)
}
