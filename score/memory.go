package score

import "sort"

// Doc is an in-memory notation document. It implements the read-only
// views the calculators consume and doubles as the fixture builder for
// tests and command line tools.
//
// Entries must be appended in temporal order per staff/layer/voice
// stream; AddEntry links them into a doubly linked entry chain on the
// fly.
type Doc struct {
	streams map[streamKey][]*DocEntry
	order   []*DocEntry
	breaks  []int // first measure of each staff system, ascending
}

type streamKey struct {
	staff, layer int
	voice2       bool
}

// NewDoc returns an empty document.
func NewDoc() *Doc {
	return &Doc{streams: make(map[streamKey][]*DocEntry)}
}

// EntrySpec describes one entry to be appended to a document. Zero
// values for Measure, Staff and Layer mean 1. Stem selects the stem
// direction: +1 up, -1 down, 0 for automatic stemming by mean note
// position against the middle line.
type EntrySpec struct {
	Measure, Staff, Layer int
	Voice2                bool
	Voice2Launch          bool
	Duration              int // EDUs, 0 = quarter
	Stem                  int
	Rest                  bool
	Grace                 bool
	SplitStem             bool
	FlipTie               bool
	Notes                 []NoteSpec
}

// NoteSpec describes one note of an entry.
type NoteSpec struct {
	Position        int
	TieToNext       bool
	TieFromPrevious bool
	Accidentals     int
	Dots            int
	// SplitUp assigns the note to the up-stem half of a split-stem
	// entry.
	SplitUp bool
}

// AddEntry appends an entry to the document. Notes are sorted ascending
// by staff position and their second-interval adjacency flags are
// derived from positions and stem direction, the way the engraver lays
// out the chord.
func (d *Doc) AddEntry(spec EntrySpec) *DocEntry {
	if spec.Measure == 0 {
		spec.Measure = 1
	}
	if spec.Staff == 0 {
		spec.Staff = 1
	}
	if spec.Layer == 0 {
		spec.Layer = 1
	}
	if spec.Duration == 0 {
		spec.Duration = DurQuarter
	}
	e := &DocEntry{doc: d, spec: spec}
	e.notes = make([]*DocNote, len(spec.Notes))
	for i, ns := range spec.Notes {
		e.notes[i] = &DocNote{entry: e, spec: ns}
	}
	sort.SliceStable(e.notes, func(i, j int) bool {
		return e.notes[i].spec.Position < e.notes[j].spec.Position
	})
	e.stemUp = resolveStem(spec, e.notes)
	deriveSeconds(e)
	key := streamKey{staff: spec.Staff, layer: spec.Layer, voice2: spec.Voice2}
	if prev := d.lastInStream(key); prev != nil {
		prev.next = e
		e.prev = prev
	}
	d.streams[key] = append(d.streams[key], e)
	d.order = append(d.order, e)
	tracer().Debugf("added entry m%d with %d notes", spec.Measure, len(e.notes))
	return e
}

func (d *Doc) lastInStream(key streamKey) *DocEntry {
	s := d.streams[key]
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Entries returns all entries in insertion order.
func (d *Doc) Entries() []*DocEntry { return d.order }

// SetSystemBreaks declares the first measure of each staff system, in
// ascending order. Without breaks the document is a single system.
func (d *Doc) SetSystemBreaks(measures ...int) { d.breaks = measures }

// SystemOf implements Systems: the index of the staff system holding a
// measure.
func (d *Doc) SystemOf(measure int) int {
	sys := 0
	for i, first := range d.breaks {
		if measure >= first {
			sys = i
		}
	}
	return sys
}

var _ Systems = (*Doc)(nil)

func resolveStem(spec EntrySpec, notes []*DocNote) bool {
	if spec.Stem > 0 {
		return true
	}
	if spec.Stem < 0 {
		return false
	}
	sum := 0
	for _, n := range notes {
		sum += n.spec.Position
	}
	// automatic stemming: below the middle line stems go up
	return len(notes) > 0 && sum < 0
}

// deriveSeconds computes the adjacency flags of second intervals. With
// an up-stem the upper note of a second is displaced to the right of
// the stem, with a down-stem the lower note is displaced to the left.
func deriveSeconds(e *DocEntry) {
	for i, n := range e.notes {
		if i > 0 && n.spec.Position-e.notes[i-1].spec.Position == 1 {
			n.upperSecond = true
		}
		if i < len(e.notes)-1 && e.notes[i+1].spec.Position-n.spec.Position == 1 {
			n.lowerSecond = true
		}
	}
	for _, n := range e.notes {
		n.upstemOffset = e.stemUp && n.upperSecond
		n.downstemOffset = !e.stemUp && n.lowerSecond
		n.nonAligned = n.upstemOffset || n.downstemOffset
	}
}

// --- Entry implementation --------------------------------------------

// DocEntry is the in-memory Entry implementation.
type DocEntry struct {
	doc        *Doc
	spec       EntrySpec
	notes      []*DocNote
	stemUp     bool
	next, prev *DocEntry
}

var _ Entry = (*DocEntry)(nil)

func (e *DocEntry) NoteCount() int { return len(e.notes) }

func (e *DocEntry) Note(i int) Note {
	if i < 0 || i >= len(e.notes) {
		return nil
	}
	return e.notes[i]
}

func (e *DocEntry) StemUp() bool    { return e.stemUp }
func (e *DocEntry) Duration() int   { return e.spec.Duration }
func (e *DocEntry) IsRest() bool    { return e.spec.Rest }
func (e *DocEntry) IsGrace() bool   { return e.spec.Grace }
func (e *DocEntry) Measure() int    { return e.spec.Measure }
func (e *DocEntry) Staff() int      { return e.spec.Staff }
func (e *DocEntry) Layer() int      { return e.spec.Layer }
func (e *DocEntry) Voice2() bool    { return e.spec.Voice2 }
func (e *DocEntry) SplitStem() bool { return e.spec.SplitStem }
func (e *DocEntry) FlipTie() bool   { return e.spec.FlipTie }

func (e *DocEntry) Voice2Launch() bool { return e.spec.Voice2Launch }

func (e *DocEntry) Next() Entry {
	if e.next == nil {
		return nil
	}
	return e.next
}

func (e *DocEntry) Previous() Entry {
	if e.prev == nil {
		return nil
	}
	return e.prev
}

// Voice2Entry returns the first second-voice entry of the measure this
// entry launches a voice in, or nil.
func (e *DocEntry) Voice2Entry() Entry {
	if !e.spec.Voice2Launch {
		return nil
	}
	key := streamKey{staff: e.spec.Staff, layer: e.spec.Layer, voice2: true}
	for _, cand := range e.doc.streams[key] {
		if cand.spec.Measure == e.spec.Measure {
			return cand
		}
	}
	return nil
}

// --- Note implementation ---------------------------------------------

// DocNote is the in-memory Note implementation.
type DocNote struct {
	entry          *DocEntry
	spec           NoteSpec
	upperSecond    bool
	lowerSecond    bool
	nonAligned     bool
	upstemOffset   bool
	downstemOffset bool
}

var _ Note = (*DocNote)(nil)

func (n *DocNote) Position() int { return n.spec.Position }

func (n *DocNote) Index() int {
	for i, cand := range n.entry.notes {
		if cand == n {
			return i
		}
	}
	return -1
}

func (n *DocNote) Entry() Entry               { return n.entry }
func (n *DocNote) TieToNext() bool            { return n.spec.TieToNext }
func (n *DocNote) TieFromPrevious() bool      { return n.spec.TieFromPrevious }
func (n *DocNote) UpperSecond() bool          { return n.upperSecond }
func (n *DocNote) LowerSecond() bool          { return n.lowerSecond }
func (n *DocNote) NonAlignedSecond() bool     { return n.nonAligned }
func (n *DocNote) UpstemSecondOffset() bool   { return n.upstemOffset }
func (n *DocNote) DownstemSecondOffset() bool { return n.downstemOffset }
func (n *DocNote) SplitStemUp() bool          { return n.spec.SplitUp }
func (n *DocNote) AccidentalCount() int       { return n.spec.Accidentals }
func (n *DocNote) DotCount() int              { return n.spec.Dots }
