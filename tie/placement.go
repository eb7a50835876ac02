package tie

import "github.com/MBonnice/notation/score"

// Placement is the direction-qualified anchoring class of one tie
// endpoint.
type Placement int8

const (
	PlacementNone Placement = iota
	InnerOver
	InnerUnder
	OuterNoteOver
	OuterNoteUnder
	OuterStemOver
	OuterStemUnder
)

// String returns a human-readable representation of the placement.
func (p Placement) String() string {
	switch p {
	case InnerOver:
		return "inner-over"
	case InnerUnder:
		return "inner-under"
	case OuterNoteOver:
		return "outer-note-over"
	case OuterNoteUnder:
		return "outer-note-under"
	case OuterStemOver:
		return "outer-stem-over"
	case OuterStemUnder:
		return "outer-stem-under"
	}
	return "none"
}

// IsInner reports whether the placement hugs the note.
func (p Placement) IsInner() bool {
	return p == InnerOver || p == InnerUnder
}

// IsOuter reports whether the placement sits at an outer position.
func (p Placement) IsOuter() bool {
	return p != PlacementNone && !p.IsInner()
}

func inner(d Direction) Placement {
	if d == Over {
		return InnerOver
	}
	return InnerUnder
}

func outerNote(d Direction) Placement {
	if d == Over {
		return OuterNoteOver
	}
	return OuterNoteUnder
}

func outerStem(d Direction) Placement {
	if d == Over {
		return OuterStemOver
	}
	return OuterStemUnder
}

// Placements computes the placement of both endpoints of note n's tie.
// dir may be a precomputed effective direction; DirectionNone recomputes
// it through ResolveDirection. forPageView selects page view semantics,
// which differ from scroll view in one documented quirk below.
//
// The start endpoint is classified on n itself. The end endpoint, for a
// tie start, is classified on the tied-to note with that note's own
// chord geometry; without a resolvable far end, observed host fallback
// rules apply. For a tie-end record (alter.Start false) the visible
// curve fragment rides entirely at n, so both endpoints classify on n.
//
// Ties never mix an inner endpoint with an outer one: if either
// endpoint comes out inner, both are forced to that inner value.
func Placements(n score.Note, alter *Alter, forPageView bool, dir Direction, opts score.Options) (Placement, Placement) {
	if n == nil || n.Entry() == nil {
		return PlacementNone, PlacementNone
	}
	if alter == nil {
		alter = &Alter{Start: true}
	}
	if opts == nil {
		opts = score.DefaultOptions()
	}
	if dir == DirectionNone {
		dir = ResolveDirection(n, alter, opts)
	}
	start := endpointPlacement(n, dir, alter, opts)
	var end Placement
	if !alter.Start {
		end = endpointPlacement(n, dir, alter, opts)
	} else if to := TiedTo(n); to != nil {
		end = endpointPlacement(to, dir, alter, opts)
	} else {
		end = danglingEndPlacement(n, dir, forPageView)
	}
	// consistency: an inner endpoint drags the other endpoint inner
	if start.IsInner() {
		end = start
	} else if end.IsInner() {
		start = end
	}
	tracer().Debugf("tie at %d placed %s/%s", n.Position(), start, end)
	return start, end
}

// endpointPlacement classifies one endpoint on the note that anchors
// it. Only the outermost note on the curve side of its chord is
// eligible for outer placement; eligibility becomes outer placement
// through the per-tie override or, absent one, the document option.
func endpointPlacement(n score.Note, dir Direction, alter *Alter, opts score.Options) Placement {
	e := n.Entry()
	eligible := (dir == Under && n.Index() == 0) ||
		(dir == Over && n.Index() == e.NoteCount()-1)
	outer := false
	if eligible {
		switch alter.Outer {
		case OuterOn:
			outer = true
		case OuterOff:
			outer = false
		default:
			outer = opts.Tie().UseOuterPlacement
		}
	}
	if !outer {
		return inner(dir)
	}
	if e.Duration() >= score.DurWhole {
		// no stem to clear
		return outerNote(dir)
	}
	// Seconds abut the stem, which changes the side the curve must
	// clear: a note displaced as a downstem second anchors at the
	// notehead, everything else at the stem.
	if n.DownstemSecondOffset() {
		return outerNote(dir)
	}
	return outerStem(dir)
}

// danglingEndPlacement applies the host-observed fallbacks for a tie
// start without a resolvable far end: ties to a rest or to nothing
// anchor at the stem, ties across an empty measure pull inner, and
// otherwise the displacement of the nearest note in the next entry
// decides between inner and an outer-stem style placement.
func danglingEndPlacement(n score.Note, dir Direction, forPageView bool) Placement {
	next := n.Entry().Next()
	switch {
	case next == nil || next.IsRest():
		return outerStem(dir)
	case next.Measure() > n.Entry().Measure()+1:
		// the adjacent measure is empty; the consistency pass will pull
		// the start endpoint inner as well
		return inner(dir)
	}
	nearest := nearestNote(next, n.Position())
	if nearest == nil {
		return outerStem(dir)
	}
	disp := nearest.Position() - n.Position()
	if (dir == Over && disp > 0) || (dir == Under && disp < 0) {
		// the nearest note intrudes on the curve side
		return inner(dir)
	}
	offset := nearest.DownstemSecondOffset()
	if !offset && score.StemDir(next) < 0 && forPageView {
		// Finale ORs together the upstem-second flags of the whole
		// chord when it is down-stemmed. Observed in page view;
		// scroll view below 130% does not reproduce it reliably.
		for i := 0; i < next.NoteCount(); i++ {
			offset = offset || next.Note(i).UpstemSecondOffset()
		}
	}
	if offset {
		return outerNote(dir)
	}
	return outerStem(dir)
}

// nearestNote returns the note of e closest in staff position to pos.
func nearestNote(e score.Entry, pos int) score.Note {
	var best score.Note
	bestDist := 0
	for i := 0; i < e.NoteCount(); i++ {
		cand := e.Note(i)
		dist := cand.Position() - pos
		if dist < 0 {
			dist = -dist
		}
		if best == nil || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}
