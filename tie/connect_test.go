package tie_test

import (
	. "github.com/MBonnice/notation/tie"
	"testing"

	"github.com/MBonnice/notation/internal/scoretest"
	"github.com/MBonnice/notation/score"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTieEndStartsAtSystemStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation.tie")
	defer teardown()
	//
	doc := score.NewDoc()
	_, end := scoretest.TiedPair(doc, 1, 0, 1, 1)
	c := ConnectionCode(end, InnerUnder, Under, StartPoint, true, false, nil, doc)
	if c != ConnectSystemStart {
		t.Errorf("expected a tie end to start at the system start, got %s", c)
	}
}

func TestLastEntryEndsAtSystemEnd(t *testing.T) {
	doc := score.NewDoc()
	e := doc.AddEntry(score.EntrySpec{Measure: 1, Stem: 1,
		Notes: []score.NoteSpec{{Position: 0, TieToNext: true}}})
	c := ConnectionCode(e.Note(0), OuterStemUnder, Under, EndPoint, false, false, nil, doc)
	if c != ConnectSystemEnd {
		t.Errorf("expected the last document entry to end at the system end, got %s", c)
	}
}

func TestCrossSystemTieEndsAtSystemEnd(t *testing.T) {
	doc := score.NewDoc()
	doc.SetSystemBreaks(1, 2)
	start, _ := scoretest.TiedPair(doc, 1, 0, 1, 1)
	// page view honors the break
	c := ConnectionCode(start, InnerUnder, Under, EndPoint, false, true, nil, doc)
	if c != ConnectSystemEnd {
		t.Errorf("expected page view to split the tie at the system end, got %s", c)
	}
	// scroll view keeps the curve in one piece
	c = ConnectionCode(start, InnerUnder, Under, EndPoint, false, false, nil, doc)
	if c != ConnectNoteLeftBottom {
		t.Errorf("expected scroll view to keep the inner anchor, got %s", c)
	}
}

func TestOuterPlacementCodes(t *testing.T) {
	doc := score.NewDoc()
	start, _ := scoretest.TiedPair(doc, 1, 0, 1, 1)
	cases := []struct {
		placement Placement
		want      Connect
	}{
		{OuterStemOver, ConnectStemTop},
		{OuterStemUnder, ConnectStemBottom},
		{OuterNoteOver, ConnectHeadTop},
		{OuterNoteUnder, ConnectHeadBottom},
	}
	for _, tc := range cases {
		c := ConnectionCode(start, tc.placement, Under, StartPoint, false, false, nil, doc)
		if c != tc.want {
			t.Errorf("expected %s for placement %s, got %s", tc.want, tc.placement, c)
		}
	}
}

func TestInnerStartCodes(t *testing.T) {
	doc := score.NewDoc()
	start, _ := scoretest.TiedPair(doc, 1, 0, 1, 1)
	if c := ConnectionCode(start, InnerOver, Over, StartPoint, false, false, nil, doc); c != ConnectNoteRightTop {
		t.Errorf("expected note-right-top, got %s", c)
	}
	if c := ConnectionCode(start, InnerUnder, Under, StartPoint, false, false, nil, doc); c != ConnectNoteRightBottom {
		t.Errorf("expected note-right-bottom, got %s", c)
	}
}

func TestAccidentalAvoidance(t *testing.T) {
	doc := score.NewDoc()
	doc.AddEntry(score.EntrySpec{Measure: 1, Stem: 1,
		Notes: []score.NoteSpec{{Position: 0, TieToNext: true, Accidentals: 1}}})
	doc.AddEntry(score.EntrySpec{Measure: 2, Stem: 1,
		Notes: []score.NoteSpec{{Position: 0, TieFromPrevious: true}}})
	n := doc.Entries()[0].Note(0)
	opts := score.DefaultOptions()
	opts.TieOpts.BeforeSingleAccidental = true
	if c := ConnectionCode(n, InnerUnder, Under, StartPoint, false, false, opts, doc); c != ConnectAccidental {
		t.Errorf("expected accidental anchor, got %s", c)
	}
	// only a single accidental triggers the rule
	opts2 := score.DefaultOptions()
	if c := ConnectionCode(n, InnerUnder, Under, StartPoint, false, false, opts2, doc); c != ConnectNoteRightBottom {
		t.Errorf("expected plain note anchor without the option, got %s", c)
	}
}

func TestDotAvoidance(t *testing.T) {
	mk := func(dots int) score.Note {
		doc := score.NewDoc()
		doc.AddEntry(score.EntrySpec{Measure: 1, Stem: 1,
			Notes: []score.NoteSpec{{Position: 0, TieToNext: true, Dots: dots}}})
		doc.AddEntry(score.EntrySpec{Measure: 2, Stem: 1,
			Notes: []score.NoteSpec{{Position: 0, TieFromPrevious: true}}})
		return doc.Entries()[0].Note(0)
	}
	opts := score.DefaultOptions()
	opts.TieOpts.AfterSingleDot = true
	if c := ConnectionCode(mk(1), InnerUnder, Under, EndPoint, true, false, opts, nil); c != ConnectDot {
		t.Errorf("expected dot anchor for one dot, got %s", c)
	}
	if c := ConnectionCode(mk(2), InnerUnder, Under, EndPoint, true, false, opts, nil); c != ConnectNoteLeftBottom {
		t.Errorf("expected two dots to miss the single-dot option, got %s", c)
	}
	opts.TieOpts.AfterMultipleDots = true
	if c := ConnectionCode(mk(2), InnerUnder, Under, EndPoint, true, false, opts, nil); c != ConnectDot {
		t.Errorf("expected dot anchor for multiple dots, got %s", c)
	}
	if c := ConnectionCode(mk(0), InnerUnder, Under, EndPoint, true, false, opts, nil); c != ConnectNoteLeftBottom {
		t.Errorf("expected undotted note to keep the note anchor, got %s", c)
	}
}

func TestNonAlignedSecondAnchoring(t *testing.T) {
	// up-stem: the second is displaced right, widening the entry box on
	// the start side
	doc := score.NewDoc()
	first, _ := scoretest.TiedChords(doc, 1, 1, 0, 1)
	upper := first.Note(1)
	if !upper.NonAlignedSecond() {
		t.Fatal("fixture should displace the upper note")
	}
	if c := ConnectionCode(upper, InnerOver, Over, StartPoint, false, false, nil, doc); c != ConnectEntryRightTop {
		t.Errorf("expected entry-right-top for an up-stem second, got %s", c)
	}
	if c := ConnectionCode(upper, InnerOver, Over, EndPoint, true, false, nil, doc); c != ConnectNoteLeftTop {
		t.Errorf("expected note-left-top at the end of an up-stem second, got %s", c)
	}
	// down-stem: the displacement mirrors to the left, the end side
	doc = score.NewDoc()
	first, _ = scoretest.TiedChords(doc, 1, -1, 0, 1)
	lower := first.Note(0)
	if !lower.NonAlignedSecond() {
		t.Fatal("fixture should displace the lower note")
	}
	if c := ConnectionCode(lower, InnerUnder, Under, EndPoint, true, false, nil, doc); c != ConnectEntryLeftBottom {
		t.Errorf("expected entry-left-bottom for a down-stem second, got %s", c)
	}
	if c := ConnectionCode(lower, InnerUnder, Under, StartPoint, true, false, nil, doc); c != ConnectSystemStart {
		t.Errorf("expected system start for a tie-end start point, got %s", c)
	}
	if c := ConnectionCode(lower, InnerUnder, Under, StartPoint, false, false, nil, doc); c != ConnectNoteRightBottom {
		t.Errorf("expected note-right-bottom at the start of a down-stem second, got %s", c)
	}
}

func TestConnectionCodeNone(t *testing.T) {
	if c := ConnectionCode(nil, InnerOver, Over, StartPoint, false, false, nil, nil); c != ConnectNone {
		t.Errorf("expected none for nil note, got %s", c)
	}
	doc := score.NewDoc()
	start, _ := scoretest.TiedPair(doc, 1, 0, 1, 1)
	if c := ConnectionCode(start, PlacementNone, DirectionNone, StartPoint, false, false, nil, doc); c != ConnectNone {
		t.Errorf("expected none for missing placement, got %s", c)
	}
}
