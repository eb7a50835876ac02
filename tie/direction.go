package tie

import "github.com/MBonnice/notation/score"

// DefaultDirection computes the side a tie of note n bends to from
// chord geometry and stem directions alone, ignoring all per-tie and
// per-layer overrides. forTieEnd selects the tie arriving at n over the
// tie leaving it.
//
// DirectionNone is returned when n has no applicable tie for the
// requested role. That is a normal outcome, not an error.
func DefaultDirection(n score.Note, forTieEnd bool, opts score.Options) Direction {
	if n == nil || n.Entry() == nil {
		return DirectionNone
	}
	if forTieEnd && !n.TieFromPrevious() {
		return DirectionNone
	}
	if !forTieEnd && !n.TieToNext() {
		return DirectionNone
	}
	if opts == nil {
		opts = score.DefaultOptions()
	}
	e := n.Entry()
	stem := score.StemDir(e)
	if e.NoteCount() > 1 {
		return chordDefault(n, e, stem, opts)
	}
	// Single note. When the adjacent entry stems the other way, the
	// mixed-stem option may force a side.
	if adj := adjacentEntry(n, forTieEnd); adj != nil {
		if adjStem := score.StemDir(adj); adjStem != 0 && adjStem != stem {
			switch opts.Tie().MixedStemDirection {
			case score.MixedStemOver:
				return Over
			case score.MixedStemUnder:
				return Under
			}
		}
	}
	return stemFallback(stem)
}

// chordDefault resolves the direction for a note of a chord. Outermost
// notes are fixed unconditionally; inner notes follow the chord
// direction policy with the staff's stem reversal position as the
// final tie break.
func chordDefault(n score.Note, e score.Entry, stem int, opts score.Options) Direction {
	count := e.NoteCount()
	switch n.Index() {
	case 0:
		return Under
	case count - 1:
		return Over
	}
	inner := DirectionNone
	tieOpts := opts.Tie()
	switch tieOpts.ChordDirection {
	case score.ChordDirSplitByHalf:
		// the middle note of an odd chord stays undecided here
		if 2*n.Index() < count-1 {
			inner = Under
		} else if 2*n.Index() > count-1 {
			inner = Over
		}
	case score.ChordDirOutsideInside:
		if stem > 0 {
			inner = Under
		} else {
			inner = Over
		}
	}
	if inner == DirectionNone || tieOpts.ChordDirection == score.ChordDirStemReversal {
		if n.Position() < opts.StemReversal(e.Staff()) {
			inner = Under
		} else {
			inner = Over
		}
	}
	// Opposing seconds: the displaced note of a second would collide
	// with its neighbor's tie, so its default flips.
	if tieOpts.OpposingSeconds {
		if inner == Over && n.LowerSecond() && !n.UpperSecond() {
			inner = Under
		} else if inner == Under && n.UpperSecond() && !n.LowerSecond() {
			inner = Over
		}
	}
	tracer().Debugf("inner chord note at %d defaults %s", n.Position(), inner)
	return inner
}

// adjacentEntry finds the entry whose stem direction competes with the
// note's own. Tie ends look at the entry immediately preceding the
// note's entry, no matter which entry actually ties into the note;
// Finale does the same, so the asymmetry stays. Tie starts follow the
// span to the tied-to note, and peek one entry past an intervening
// rest when the span does not resolve.
func adjacentEntry(n score.Note, forTieEnd bool) score.Entry {
	if forTieEnd {
		return n.Entry().Previous()
	}
	if to := TiedTo(n); to != nil {
		return to.Entry()
	}
	next := n.Entry().Next()
	if next != nil && next.IsRest() {
		return next.Next()
	}
	return next
}

// ResolveDirection computes the effective tie direction of note n,
// layering per-tie, split-stem, per-layer and voice overrides on top of
// DefaultDirection. The chain is strict: the first matching override
// wins, there is no blending. The result is always Over or Under for a
// non-nil note.
func ResolveDirection(n score.Note, alter *Alter, opts score.Options) Direction {
	if n == nil || n.Entry() == nil {
		return DirectionNone
	}
	if alter == nil {
		alter = &Alter{Start: true}
	}
	if alter.Direction != DirectionNone {
		return alter.Direction
	}
	if opts == nil {
		opts = score.DefaultOptions()
	}
	e := n.Entry()
	stem := score.StemDir(e)
	if e.SplitStem() {
		// each half of a split stem keeps its ties on its own side
		if n.SplitStemUp() {
			return Over
		}
		return Under
	}
	if lo := opts.Layer(e.Layer()); lo.FreezeStems && lo.FreezeTiesSameDirection {
		if lo.FreezeStemsUp {
			return Over
		}
		return Under
	}
	if e.Voice2() || e.Voice2Launch() {
		return followStem(stem)
	}
	if e.FlipTie() {
		return followStem(stem)
	}
	d := DefaultDirection(n, !alter.Start, opts)
	if d == DirectionNone {
		// no applicable tie; keep the two-valued contract anyway
		d = stemFallback(stem)
	}
	return d
}

// followStem puts the tie on the stem side, the convention for second
// voices and flipped ties.
func followStem(stem int) Direction {
	if stem > 0 {
		return Over
	}
	return Under
}

// stemFallback puts the tie opposite the stem, the engraving default
// for single notes.
func stemFallback(stem int) Direction {
	if stem > 0 {
		return Under
	}
	return Over
}
