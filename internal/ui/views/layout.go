package views

// Padding of the main container, in cells
const (
	PadTop  = 1
	PadLeft = 2
)

// ZoneKind identifies what a screen region belongs to
type ZoneKind int

const (
	ZoneNone ZoneKind = iota
	ZoneQuery
	ZoneField
	ZoneRow    // suggestion row, Index is the suggestion index
	ZoneDelete // delete control, Index is the selected list index
)

// Zone is a single-line screen region [X0, X1) on row Y
type Zone struct {
	Kind  ZoneKind
	Index int
	X0    int
	X1    int
	Y     int
}

// Layout lists the interactive regions of a rendered frame
type Layout struct {
	Zones []Zone
}

// Hit returns the zone under the cell at x, y
func (l Layout) Hit(x, y int) (Zone, bool) {
	for _, z := range l.Zones {
		if y == z.Y && x >= z.X0 && x < z.X1 {
			return z, true
		}
	}
	return Zone{Kind: ZoneNone, Index: -1}, false
}

// Find returns the first zone of the given kind and index
func (l Layout) Find(kind ZoneKind, index int) (Zone, bool) {
	for _, z := range l.Zones {
		if z.Kind == kind && z.Index == index {
			return z, true
		}
	}
	return Zone{}, false
}

// frame collects rendered lines and the zones on them
type frame struct {
	lines []string
	zones []Zone
}

// add appends a line and returns its row number
func (f *frame) add(line string) int {
	f.lines = append(f.lines, line)
	return len(f.lines) - 1
}

func (f *frame) zone(kind ZoneKind, index, x0, x1, y int) {
	f.zones = append(f.zones, Zone{
		Kind:  kind,
		Index: index,
		X0:    x0 + PadLeft,
		X1:    x1 + PadLeft,
		Y:     y + PadTop,
	})
}
