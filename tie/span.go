package tie

import "github.com/MBonnice/notation/score"

// TiedTo returns the note that n ties to in the following entry of the
// same layer and voice, or nil if the tie has no resolvable far end.
//
// A note in the next entry matches if it sits on the same staff
// position as n and carries the tie-from-previous flag. Matching by
// staff position (not by pitch) means a key signature change under the
// tie is tolerated while a clef change is not; this mirrors the host
// and is a known limitation, not a bug.
func TiedTo(n score.Note) score.Note {
	return span(n, false)
}

// TiedFrom returns the note that n is tied from in the preceding entry
// of the same layer and voice, or nil.
func TiedFrom(n score.Note) score.Note {
	return span(n, true)
}

// span finds the far end of n's tie. forTieEnd selects the backward
// search (who ties into n) over the forward one (who n ties to).
func span(n score.Note, forTieEnd bool) score.Note {
	if n == nil || n.Entry() == nil {
		return nil
	}
	var adjacent score.Entry
	if forTieEnd {
		adjacent = n.Entry().Previous()
	} else {
		adjacent = n.Entry().Next()
	}
	if adjacent == nil {
		return nil
	}
	// a tie into or out of a rest never resolves
	if adjacent.IsRest() || adjacent.IsGrace() {
		return nil
	}
	if m := matchInEntry(adjacent, n.Position(), forTieEnd); m != nil {
		return m
	}
	// an entry launching a second voice hides tie targets in that
	// voice's first entry
	if v2 := adjacent.Voice2Entry(); v2 != nil && !v2.IsRest() && !v2.IsGrace() {
		if m := matchInEntry(v2, n.Position(), forTieEnd); m != nil {
			return m
		}
	}
	return nil
}

func matchInEntry(e score.Entry, position int, forTieEnd bool) score.Note {
	for i := 0; i < e.NoteCount(); i++ {
		cand := e.Note(i)
		if cand.Position() != position {
			continue
		}
		if forTieEnd && cand.TieToNext() {
			return cand
		}
		if !forTieEnd && cand.TieFromPrevious() {
			return cand
		}
	}
	return nil
}
