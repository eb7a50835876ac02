package tie

import "github.com/MBonnice/notation/score"

// Connect names the discrete anchor a tie endpoint attaches to. The
// host's renderer consumes these codes; this package only classifies.
type Connect int8

const (
	ConnectNone Connect = iota
	ConnectSystemStart
	ConnectSystemEnd
	ConnectAccidental // start point shifted clear of a single accidental
	ConnectDot        // end point shifted clear of augmentation dots
	ConnectNoteRightTop
	ConnectNoteRightBottom
	ConnectEntryRightTop
	ConnectEntryRightBottom
	ConnectNoteLeftTop
	ConnectNoteLeftBottom
	ConnectEntryLeftTop
	ConnectEntryLeftBottom
	ConnectStemTop // outer-stem, over
	ConnectStemBottom
	ConnectHeadTop // outer-note, over
	ConnectHeadBottom
)

var connectNames = map[Connect]string{
	ConnectNone:             "none",
	ConnectSystemStart:      "system-start",
	ConnectSystemEnd:        "system-end",
	ConnectAccidental:       "accidental",
	ConnectDot:              "dot",
	ConnectNoteRightTop:     "note-right-top",
	ConnectNoteRightBottom:  "note-right-bottom",
	ConnectEntryRightTop:    "entry-right-top",
	ConnectEntryRightBottom: "entry-right-bottom",
	ConnectNoteLeftTop:      "note-left-top",
	ConnectNoteLeftBottom:   "note-left-bottom",
	ConnectEntryLeftTop:     "entry-left-top",
	ConnectEntryLeftBottom:  "entry-left-bottom",
	ConnectStemTop:          "stem-top",
	ConnectStemBottom:       "stem-bottom",
	ConnectHeadTop:          "head-top",
	ConnectHeadBottom:       "head-bottom",
}

// String returns a human-readable representation of the connect code.
func (c Connect) String() string {
	if s, ok := connectNames[c]; ok {
		return s
	}
	return "unknown"
}

// ConnectionCode maps a placement, direction and endpoint role to the
// anchor code of that endpoint. n is the note whose tie is being
// classified, for both endpoint roles; accidental and dot avoidance
// read that note's own glyph context.
//
// System boundaries are special-cased first: the start point of a
// tie-end record always anchors at the system start, and the end point
// of a tie start anchors at the system end when the note is the last
// entry of the document or, in page view, when the span crosses a
// system boundary. sys may be nil in scroll view.
func ConnectionCode(n score.Note, p Placement, d Direction, ep Endpoint,
	forTieEnd, forPageView bool, opts score.Options, sys score.Systems) Connect {
	//
	if n == nil || n.Entry() == nil {
		return ConnectNone
	}
	if opts == nil {
		opts = score.DefaultOptions()
	}
	if ep == StartPoint && forTieEnd {
		return ConnectSystemStart
	}
	if ep == EndPoint && !forTieEnd {
		to := TiedTo(n)
		if to == nil && n.Entry().Next() == nil {
			return ConnectSystemEnd
		}
		// Scroll view keeps the curve in one piece regardless of system
		// breaks; Finale is so flaky about this below 130% zoom that we
		// only honor breaks in page view.
		if forPageView && to != nil && sys != nil &&
			sys.SystemOf(to.Entry().Measure()) != sys.SystemOf(n.Entry().Measure()) {
			return ConnectSystemEnd
		}
	}
	switch p {
	case OuterStemOver:
		return ConnectStemTop
	case OuterStemUnder:
		return ConnectStemBottom
	case OuterNoteOver:
		return ConnectHeadTop
	case OuterNoteUnder:
		return ConnectHeadBottom
	case InnerOver, InnerUnder:
		return innerCode(n, d, ep, opts)
	}
	return ConnectNone
}

// innerCode picks the anchor of an inner endpoint: accidental and dot
// avoidance first, then note-vs-entry anchoring for non-aligned
// seconds. A displaced second widens the entry box on the stem-up
// right side and the stem-down left side.
func innerCode(n score.Note, d Direction, ep Endpoint, opts score.Options) Connect {
	top := d == Over
	tieOpts := opts.Tie()
	if ep == StartPoint {
		if tieOpts.BeforeSingleAccidental && n.AccidentalCount() == 1 {
			return ConnectAccidental
		}
		if n.NonAlignedSecond() && n.Entry().StemUp() {
			return pick(top, ConnectEntryRightTop, ConnectEntryRightBottom)
		}
		return pick(top, ConnectNoteRightTop, ConnectNoteRightBottom)
	}
	dots := n.DotCount()
	if (dots == 1 && tieOpts.AfterSingleDot) || (dots > 1 && tieOpts.AfterMultipleDots) {
		return ConnectDot
	}
	if n.NonAlignedSecond() && !n.Entry().StemUp() {
		return pick(top, ConnectEntryLeftTop, ConnectEntryLeftBottom)
	}
	return pick(top, ConnectNoteLeftTop, ConnectNoteLeftBottom)
}

func pick(top bool, over, under Connect) Connect {
	if top {
		return over
	}
	return under
}
