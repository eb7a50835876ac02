package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MBonnice/notation/score"
	"github.com/thatisuday/commando"
)

func runInspectCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	doc, opts := mustLoadScore(args["score"])

	t := opts.Tie()
	fmt.Printf("Chord direction:  %s\n", t.ChordDirection)
	fmt.Printf("Mixed stems:      %s\n", t.MixedStemDirection)
	fmt.Printf("Outer placement:  %v\n", t.UseOuterPlacement)
	fmt.Printf("Opposing seconds: %v\n", t.OpposingSeconds)

	if len(opts.Layers) > 0 {
		nums := make([]int, 0, len(opts.Layers))
		for n := range opts.Layers {
			nums = append(nums, n)
		}
		sort.Ints(nums)
		for _, num := range nums {
			l := opts.Layers[num]
			fmt.Printf("Layer %d: freeze-stems=%v up=%v same-direction=%v\n",
				num, l.FreezeStems, l.FreezeStemsUp, l.FreezeTiesSameDirection)
		}
	}

	entries := doc.Entries()
	fmt.Printf("Entries (%d):\n", len(entries))
	for i, e := range entries {
		fmt.Printf("  %2d: m%d staff=%d layer=%d %s dur=%d %s\n",
			i, e.Measure(), e.Staff(), e.Layer(),
			formatStem(e), e.Duration(), formatNotes(e))
	}
}

func formatStem(e score.Entry) string {
	if e.IsRest() {
		return "rest"
	}
	if e.StemUp() {
		return "up"
	}
	return "down"
}

func formatNotes(e score.Entry) string {
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
	return "[" + strings.Join(parts, " ") + "]"
}
