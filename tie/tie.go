package tie

// Direction is the side a tie curve bends to. The zero value means "no
// applicable tie" when reported by a calculator and "automatic" inside
// an Alter record. The signed values let chord computations treat an
// undecided direction as 0 and fall through.
type Direction int8

const (
	DirectionNone Direction = 0
	Over          Direction = 1
	Under         Direction = -1
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Over:
		return "over"
	case Under:
		return "under"
	}
	return "none"
}

// Endpoint names the two ends of a tie curve: the start point at the
// right side of the first entry, and the end point at the left side of
// the second one.
type Endpoint int8

const (
	StartPoint Endpoint = iota
	EndPoint
)

// String returns a human-readable representation of the endpoint.
func (ep Endpoint) String() string {
	if ep == EndPoint {
		return "end"
	}
	return "start"
}

// OuterMode is the per-tie outer placement override of an Alter record.
type OuterMode int8

const (
	OuterDefault OuterMode = iota // follow the document option
	OuterOn
	OuterOff
)

// Alter is the per-tie modification record a user may have attached to
// a tie. The zero value describes an untouched tie start. Alter records
// are owned by the caller; the calculators only read them.
type Alter struct {
	Direction Direction // DirectionNone = automatic
	Outer     OuterMode
	// Start is true for the record of a tie start, false for the
	// record of a tie end continuing from the previous entry.
	Start bool
}
