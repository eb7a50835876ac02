package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MBonnice/notation"
	"github.com/MBonnice/notation/internal/scoretest"
	"github.com/MBonnice/notation/tie"
	"github.com/pterm/pterm"
)

func entriesOp(intp *Intp, op *Op) (error, bool) {
	if intp.doc == nil {
		return ERR_NO_SCORE, false
	}
	data := [][]string{
		{"Index", "Measure", "Staff", "Layer", "Stem", "Dur", "Notes"},
	}
	for i, e := range intp.doc.Entries() {
		stem := "down"
		if e.IsRest() {
			stem = "rest"
		} else if e.StemUp() {
			stem = "up"
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", e.Measure()),
			fmt.Sprintf("%d", e.Staff()),
			fmt.Sprintf("%d", e.Layer()),
			stem,
			fmt.Sprintf("%d", e.Duration()),
			formatNoteList(intp, i),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func formatNoteList(intp *Intp, inx int) string {
	e := intp.doc.Entries()[inx]
	if e.IsRest() {
		return "-"
	}
	parts := make([]string, 0, e.NoteCount())
	for j := 0; j < e.NoteCount(); j++ {
		n := e.Note(j)
		s := fmt.Sprintf("%d", n.Position())
		if n.TieToNext() {
			s += "~"
		}
		if n.TieFromPrevious() {
			s = "~" + s
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// tieRecord picks the tie record of the current note: the start record
// if the note ties forward, otherwise the end record.
func tieRecord(intp *Intp) (*tie.Alter, error) {
	n, err := intp.currentNote()
	if err != nil {
		return nil, err
	}
	if n.TieToNext() {
		return &tie.Alter{Start: true}, nil
	}
	if n.TieFromPrevious() {
		return &tie.Alter{Start: false}, nil
	}
	return nil, errors.New("note carries no tie")
}

func dirOp(intp *Intp, op *Op) (error, bool) {
	n, err := intp.currentNote()
	if err != nil {
		return err, false
	}
	alter, err := tieRecord(intp)
	if err != nil {
		return err, false
	}
	d := tie.ResolveDirection(n, alter, intp.opts)
	pterm.Printf("tie of note at position %d curves %s\n", n.Position(), d)
	return nil, false
}

func placeOp(intp *Intp, op *Op) (error, bool) {
	n, err := intp.currentNote()
	if err != nil {
		return err, false
	}
	alter, err := tieRecord(intp)
	if err != nil {
		return err, false
	}
	d := tie.ResolveDirection(n, alter, intp.opts)
	start, end := tie.Placements(n, alter, intp.pageView, d, intp.opts)
	pterm.Printf("tie placement is %s / %s\n", start, end)
	return nil, false
}

func codeOp(intp *Intp, op *Op) (error, bool) {
	n, err := intp.currentNote()
	if err != nil {
		return err, false
	}
	alter, err := tieRecord(intp)
	if err != nil {
		return err, false
	}
	c := notation.TieGeometry(n, alter, intp.pageView, intp.opts, intp.doc)
	data := [][]string{
		{"Endpoint", "Placement", "Connect"},
		{"start", c.Start.String(), c.StartCode.String()},
		{"end", c.End.String(), c.EndCode.String()},
	}
	pterm.Printf("tie curves %s\n", c.Direction)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func reportOp(intp *Intp, op *Op) (error, bool) {
	if intp.doc == nil {
		return ERR_NO_SCORE, false
	}
	pterm.Print(scoretest.Report(intp.doc, intp.opts, intp.doc, intp.pageView))
	return nil, false
}

func optionsOp(intp *Intp, op *Op) (error, bool) {
	if intp.opts == nil {
		return ERR_NO_SCORE, false
	}
	t := intp.opts.Tie()
	data := [][]string{
		{"Option", "Value"},
		{"chord-direction", t.ChordDirection.String()},
		{"mixed-stem", t.MixedStemDirection.String()},
		{"outer-placement", fmt.Sprintf("%v", t.UseOuterPlacement)},
		{"opposing-seconds", fmt.Sprintf("%v", t.OpposingSeconds)},
		{"before-single-accidental", fmt.Sprintf("%v", t.BeforeSingleAccidental)},
		{"after-single-dot", fmt.Sprintf("%v", t.AfterSingleDot)},
		{"after-multiple-dots", fmt.Sprintf("%v", t.AfterMultipleDots)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
