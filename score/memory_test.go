package score

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ModelTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation.score")
	defer teardown()
	suite.Run(t, new(ModelTestEnviron))
}

// --- Tests -----------------------------------------------------------------

func (env *ModelTestEnviron) TestNotesSortedByPosition() {
	doc := NewDoc()
	e := doc.AddEntry(EntrySpec{Notes: []NoteSpec{
		{Position: 4}, {Position: -3}, {Position: 0},
	}})
	env.Equal(3, e.NoteCount(), "expected three notes")
	env.Equal(-3, e.Note(0).Position(), "expected lowest note at index 0")
	env.Equal(4, e.Note(2).Position(), "expected highest note at the top index")
	env.Equal(1, e.Note(1).Index(), "expected Index to report the chord slot")
	env.Nil(e.Note(3), "expected out-of-range note access to yield nil")
}

func (env *ModelTestEnviron) TestAutomaticStemming() {
	doc := NewDoc()
	low := doc.AddEntry(EntrySpec{Notes: []NoteSpec{{Position: -4}}})
	high := doc.AddEntry(EntrySpec{Measure: 2, Notes: []NoteSpec{{Position: 4}}})
	env.True(low.StemUp(), "expected a note below the middle line to stem up")
	env.False(high.StemUp(), "expected a note above the middle line to stem down")
	forced := doc.AddEntry(EntrySpec{Measure: 3, Stem: -1, Notes: []NoteSpec{{Position: -4}}})
	env.False(forced.StemUp(), "expected explicit stemming to win")
}

func (env *ModelTestEnviron) TestSecondDerivation() {
	doc := NewDoc()
	up := doc.AddEntry(EntrySpec{Stem: 1, Notes: []NoteSpec{{Position: 0}, {Position: 1}}})
	env.True(up.Note(1).UpperSecond(), "expected the top note to be an upper second")
	env.True(up.Note(1).UpstemSecondOffset(), "expected up-stem displacement of the upper note")
	env.True(up.Note(1).NonAlignedSecond(), "expected the displaced note to be non-aligned")
	env.False(up.Note(0).NonAlignedSecond(), "expected the lower note to stay aligned")

	down := doc.AddEntry(EntrySpec{Measure: 2, Stem: -1, Notes: []NoteSpec{{Position: 0}, {Position: 1}}})
	env.True(down.Note(0).LowerSecond(), "expected the bottom note to be a lower second")
	env.True(down.Note(0).DownstemSecondOffset(), "expected down-stem displacement of the lower note")
	env.False(down.Note(1).NonAlignedSecond(), "expected the upper note to stay aligned")
}

func (env *ModelTestEnviron) TestEntryChaining() {
	doc := NewDoc()
	e1 := doc.AddEntry(EntrySpec{Measure: 1, Notes: []NoteSpec{{Position: 0}}})
	e2 := doc.AddEntry(EntrySpec{Measure: 2, Notes: []NoteSpec{{Position: 0}}})
	other := doc.AddEntry(EntrySpec{Measure: 1, Layer: 2, Notes: []NoteSpec{{Position: 2}}})
	env.Equal(Entry(e2), e1.Next(), "expected entries of one stream to chain")
	env.Equal(Entry(e1), e2.Previous(), "expected the back link")
	env.Nil(e1.Previous(), "expected nil at the document start")
	env.Nil(other.Next(), "expected layers to form separate streams")
}

func (env *ModelTestEnviron) TestVoice2Lookup() {
	doc := NewDoc()
	launch := doc.AddEntry(EntrySpec{Measure: 1, Voice2Launch: true, Notes: []NoteSpec{{Position: 3}}})
	v2 := doc.AddEntry(EntrySpec{Measure: 1, Voice2: true, Notes: []NoteSpec{{Position: -3}}})
	plain := doc.AddEntry(EntrySpec{Measure: 2, Notes: []NoteSpec{{Position: 3}}})
	env.Equal(Entry(v2), launch.Voice2Entry(), "expected the launch to find its second voice")
	env.Nil(plain.Voice2Entry(), "expected no second voice without a launch")
}

func (env *ModelTestEnviron) TestSystemLookup() {
	doc := NewDoc()
	env.Equal(0, doc.SystemOf(7), "expected a single endless system without breaks")
	doc.SetSystemBreaks(1, 5, 9)
	env.Equal(0, doc.SystemOf(4), "expected measure 4 on the first system")
	env.Equal(1, doc.SystemOf(5), "expected measure 5 to open the second system")
	env.Equal(2, doc.SystemOf(12), "expected trailing measures on the last system")
}

func (env *ModelTestEnviron) TestStemDir() {
	doc := NewDoc()
	up := doc.AddEntry(EntrySpec{Stem: 1, Notes: []NoteSpec{{Position: 0}}})
	rest := doc.AddEntry(EntrySpec{Measure: 2, Rest: true})
	env.Equal(1, StemDir(up), "expected +1 for an up-stem")
	env.Equal(0, StemDir(rest), "expected 0 for a rest")
	env.Equal(0, StemDir(nil), "expected 0 for nil")
}

func (env *ModelTestEnviron) TestOptionsDefaults() {
	opts := DefaultOptions()
	env.Equal(ChordDirSplitByHalf, opts.Tie().ChordDirection, "expected split-by-half factory default")
	env.Equal(MixedStemAutomatic, opts.Tie().MixedStemDirection, "expected automatic mixed stems")
	env.False(opts.Tie().UseOuterPlacement, "expected outer placement off")
	env.Equal(LayerOptions{}, opts.Layer(3), "expected zero options for unconfigured layers")
	env.Equal(0, opts.StemReversal(1), "expected the middle line as reversal default")
}
