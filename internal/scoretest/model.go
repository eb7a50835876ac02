// Package scoretest provides fabricated in-memory scores for tests and
// for the interactive tools. It intentionally only covers the shapes
// the tie calculators care about.
package scoretest

import "github.com/MBonnice/notation/score"

// TiedPair appends two single-note entries tied to each other and
// returns both notes. stem1 and stem2 select stem directions as in
// score.EntrySpec.
func TiedPair(doc *score.Doc, measure, pos, stem1, stem2 int) (start, end score.Note) {
	e1 := doc.AddEntry(score.EntrySpec{
		Measure: measure,
		Stem:    stem1,
		Notes:   []score.NoteSpec{{Position: pos, TieToNext: true}},
	})
	e2 := doc.AddEntry(score.EntrySpec{
		Measure: measure + 1,
		Stem:    stem2,
		Notes:   []score.NoteSpec{{Position: pos, TieFromPrevious: true}},
	})
	return e1.Note(0), e2.Note(0)
}

// TiedChords appends two chord entries with identical note positions,
// every note tied forward from the first entry into the second.
func TiedChords(doc *score.Doc, measure, stem int, positions ...int) (first, second *score.DocEntry) {
	var from, to []score.NoteSpec
	for _, pos := range positions {
		from = append(from, score.NoteSpec{Position: pos, TieToNext: true})
		to = append(to, score.NoteSpec{Position: pos, TieFromPrevious: true})
	}
	first = doc.AddEntry(score.EntrySpec{Measure: measure, Stem: stem, Notes: from})
	second = doc.AddEntry(score.EntrySpec{Measure: measure + 1, Stem: stem, Notes: to})
	return first, second
}

// DemoScore builds the small three-measure score the tools load when
// no fixture is given: a tied chord pair in layer 1, a dotted
// single note in layer 2 tied over a system break, and default options.
func DemoScore() (*score.Doc, *score.Opts) {
	doc := score.NewDoc()
	doc.SetSystemBreaks(1, 3)
	doc.AddEntry(score.EntrySpec{
		Measure: 1,
		Stem:    1,
		Notes: []score.NoteSpec{
			{Position: -3, TieToNext: true},
			{Position: 0, TieToNext: true},
		},
	})
	doc.AddEntry(score.EntrySpec{
		Measure: 1,
		Layer:   2,
		Stem:    -1,
		Notes:   []score.NoteSpec{{Position: 2, TieToNext: true, Dots: 1}},
	})
	doc.AddEntry(score.EntrySpec{
		Measure: 2,
		Stem:    1,
		Notes: []score.NoteSpec{
			{Position: -3, TieFromPrevious: true},
			{Position: 0, TieFromPrevious: true},
		},
	})
	doc.AddEntry(score.EntrySpec{
		Measure: 2,
		Layer:   2,
		Stem:    -1,
		Notes:   []score.NoteSpec{{Position: 2, TieFromPrevious: true, TieToNext: true}},
	})
	doc.AddEntry(score.EntrySpec{
		Measure: 3,
		Layer:   2,
		Stem:    -1,
		Notes:   []score.NoteSpec{{Position: 2, TieFromPrevious: true}},
	})
	return doc, score.DefaultOptions()
}
