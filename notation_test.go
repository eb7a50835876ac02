package notation_test

import (
	"testing"

	"github.com/MBonnice/notation"
	"github.com/MBonnice/notation/internal/scoretest"
	"github.com/MBonnice/notation/score"
	"github.com/MBonnice/notation/tie"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTieGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation")
	defer teardown()
	//
	doc := score.NewDoc()
	start, _ := scoretest.TiedPair(doc, 1, -4, 1, 1)
	c := notation.TieGeometry(start, nil, false, nil, doc)
	if c.Direction != tie.Under {
		t.Errorf("expected a stem-up single note to tie under, got %s", c.Direction)
	}
	if c.Start != tie.InnerUnder || c.End != tie.InnerUnder {
		t.Errorf("expected inner placements with factory options, got %s/%s", c.Start, c.End)
	}
	if c.StartCode != tie.ConnectNoteRightBottom || c.EndCode != tie.ConnectNoteLeftBottom {
		t.Errorf("expected plain note anchors, got %s/%s", c.StartCode, c.EndCode)
	}
}

func TestTieGeometryEndRecord(t *testing.T) {
	doc := score.NewDoc()
	_, end := scoretest.TiedPair(doc, 1, -4, 1, 1)
	c := notation.TieGeometry(end, &tie.Alter{Start: false}, false, nil, doc)
	if c.StartCode != tie.ConnectSystemStart {
		t.Errorf("expected a tie end to anchor at the system start, got %s", c.StartCode)
	}
	if c.EndCode != tie.ConnectNoteLeftBottom {
		t.Errorf("expected the arriving endpoint at the note, got %s", c.EndCode)
	}
}

func TestTieGeometryHonorsOverride(t *testing.T) {
	doc := score.NewDoc()
	start, _ := scoretest.TiedPair(doc, 1, -4, 1, 1)
	c := notation.TieGeometry(start, &tie.Alter{Direction: tie.Over, Start: true}, false, nil, doc)
	if c.Direction != tie.Over {
		t.Errorf("expected the explicit override to win, got %s", c.Direction)
	}
	if c.Start != tie.InnerOver {
		t.Errorf("expected placements to follow the override, got %s", c.Start)
	}
}
