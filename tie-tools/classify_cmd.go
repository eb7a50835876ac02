package main

import (
	"fmt"

	"github.com/MBonnice/notation"
	"github.com/MBonnice/notation/tie"
	"github.com/thatisuday/commando"
)

func runClassifyCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	doc, opts := mustLoadScore(args["score"])
	entryInx := mustFlagInt(flags["entry"], "entry")
	noteInx := mustFlagInt(flags["note"], "note")
	forTieEnd := mustFlagBool(flags["end"], "end")
	forPageView := mustFlagBool(flags["page-view"], "page-view")

	entries := doc.Entries()
	if entryInx < 0 || entryInx >= len(entries) {
		fatalf("entry index %d out of range (entries: %d)", entryInx, len(entries))
	}
	e := entries[entryInx]
	if noteInx < 0 || noteInx >= e.NoteCount() {
		fatalf("note index %d out of range (notes: %d)", noteInx, e.NoteCount())
	}
	n := e.Note(noteInx)
	if forTieEnd && !n.TieFromPrevious() {
		fatalf("note %d of entry %d does not end a tie", noteInx, entryInx)
	}
	if !forTieEnd && !n.TieToNext() {
		fatalf("note %d of entry %d does not start a tie", noteInx, entryInx)
	}

	alter := &tie.Alter{Start: !forTieEnd}
	c := notation.TieGeometry(n, alter, forPageView, opts, doc)
	fmt.Printf("Entry:     %d (measure %d, staff %d, layer %d)\n",
		entryInx, e.Measure(), e.Staff(), e.Layer())
	fmt.Printf("Note:      %d (position %d)\n", noteInx, n.Position())
	fmt.Printf("Direction: %s\n", c.Direction)
	fmt.Printf("Placement: %s / %s\n", c.Start, c.End)
	fmt.Printf("Connect:   %s / %s\n", c.StartCode, c.EndCode)
	if to := tie.TiedTo(n); to != nil {
		fmt.Printf("Tied to:   measure %d position %d\n", to.Entry().Measure(), to.Position())
	}
	if from := tie.TiedFrom(n); from != nil {
		fmt.Printf("Tied from: measure %d position %d\n", from.Entry().Measure(), from.Position())
	}
}
