package score

// Durations are measured in EDUs (enigma duration units), 1024 per
// quarter note. Only the whole-note threshold matters for tie layout,
// the rest are provided for fixture readability.
const (
	DurWhole   = 4096
	DurHalf    = 2048
	DurQuarter = 1024
	DurEighth  = 512
	Dur16th    = 256
)

// Note is a read-only view of a single notehead inside an entry.
//
// Staff positions are counted in steps from the middle staff line
// (positive = up). Within an entry, notes are ordered by ascending
// position; Index 0 is the lowest note.
type Note interface {
	Position() int // staff position in steps, 0 = middle line
	Index() int    // chord slot, 0 = lowest note
	Entry() Entry

	TieToNext() bool
	TieFromPrevious() bool

	// Second-interval adjacency, as the engraver lays the chord out.
	UpperSecond() bool          // upper note of a second interval
	LowerSecond() bool          // lower note of a second interval
	NonAlignedSecond() bool     // horizontally displaced to avoid glyph overlap
	UpstemSecondOffset() bool   // displaced to the right of an up-stem
	DownstemSecondOffset() bool // displaced to the left of a down-stem

	// SplitStemUp reports which half of a split-stem entry the note
	// belongs to. Meaningful only when Entry().SplitStem() is true.
	SplitStemUp() bool

	AccidentalCount() int
	DotCount() int
}

// Entry is a read-only view of a note entry (a rest, a single note or a
// chord) within one staff, layer and voice.
type Entry interface {
	NoteCount() int
	Note(i int) Note // i in [0, NoteCount), ascending by position

	StemUp() bool
	Duration() int // EDUs
	IsRest() bool
	IsGrace() bool

	// Next and Previous navigate within the same staff, layer and
	// voice, crossing measure boundaries. They return nil at the edges
	// of the document.
	Next() Entry
	Previous() Entry

	Measure() int
	Staff() int
	Layer() int

	Voice2() bool       // entry belongs to the second voice of its layer
	Voice2Launch() bool // entry launches a second voice
	// Voice2Entry returns the first entry of the second voice launched
	// at this entry, or nil.
	Voice2Entry() Entry

	SplitStem() bool
	FlipTie() bool
}

// Options is the preferences view the calculators consume. Snapshots
// should be constructed once per document pass and handed down the
// whole call chain; the calculators never re-fetch them.
type Options interface {
	Tie() TieOptions
	Layer(n int) LayerOptions
	// StemReversal returns the staff position at which automatic stems
	// change direction for the given staff.
	StemReversal(staff int) int
}

// Systems maps a measure number to the index of the staff system that
// contains it. A nil Systems stands for scroll view, where the whole
// piece is one endless system.
type Systems interface {
	SystemOf(measure int) int
}

// StemDir returns the stem direction of an entry as a signed unit:
// +1 for an up-stem, -1 for a down-stem, 0 for entries without a stem
// (rests and nil entries).
func StemDir(e Entry) int {
	if e == nil || e.IsRest() {
		return 0
	}
	if e.StemUp() {
		return 1
	}
	return -1
}
