package score

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Score fixtures are TOML files carrying document-wide options, layer
// options, system breaks and a flat list of entries. They drive the
// command line tools and parts of the test suite.

type fixture struct {
	Options      fixtureOptions `toml:"options"`
	Layers       []fixtureLayer `toml:"layer"`
	Systems      []int          `toml:"systems"`
	StemReversal map[string]int `toml:"stem-reversal"`
	Entries      []fixtureEntry `toml:"entry"`
}

type fixtureOptions struct {
	ChordDirection         string `toml:"chord-direction"`
	MixedStem              string `toml:"mixed-stem"`
	OuterPlacement         bool   `toml:"outer-placement"`
	OpposingSeconds        bool   `toml:"opposing-seconds"`
	BeforeSingleAccidental bool   `toml:"before-single-accidental"`
	AfterSingleDot         bool   `toml:"after-single-dot"`
	AfterMultipleDots      bool   `toml:"after-multiple-dots"`
}

type fixtureLayer struct {
	Number                  int  `toml:"number"`
	FreezeStems             bool `toml:"freeze-stems"`
	FreezeStemsUp           bool `toml:"freeze-stems-up"`
	FreezeTiesSameDirection bool `toml:"freeze-ties-same-direction"`
	IgnoreHiddenNotes       bool `toml:"ignore-hidden-notes"`
	UseRestOffset           bool `toml:"use-rest-offset"`
}

type fixtureEntry struct {
	Measure      int           `toml:"measure"`
	Staff        int           `toml:"staff"`
	Layer        int           `toml:"layer"`
	Voice2       bool          `toml:"voice2"`
	Voice2Launch bool          `toml:"launch"`
	Duration     int           `toml:"duration"`
	Stem         int           `toml:"stem"`
	Rest         bool          `toml:"rest"`
	Grace        bool          `toml:"grace"`
	SplitStem    bool          `toml:"split-stem"`
	FlipTie      bool          `toml:"flip-tie"`
	Notes        []fixtureNote `toml:"note"`
}

type fixtureNote struct {
	Position        int  `toml:"position"`
	TieToNext       bool `toml:"tie-to-next"`
	TieFromPrevious bool `toml:"tie-from-previous"`
	Accidentals     int  `toml:"accidentals"`
	Dots            int  `toml:"dots"`
	SplitUp         bool `toml:"split-up"`
}

// LoadTOML reads a score fixture file and builds the in-memory document
// together with its options snapshot.
func LoadTOML(path string) (*Doc, *Opts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return ParseTOML(data)
}

// ParseTOML builds a document and options snapshot from TOML fixture
// data.
func ParseTOML(data []byte) (*Doc, *Opts, error) {
	var fix fixture
	if err := toml.Unmarshal(data, &fix); err != nil {
		return nil, nil, errScoreFormat(err.Error())
	}
	opts, err := fix.Options.build()
	if err != nil {
		return nil, nil, err
	}
	for _, l := range fix.Layers {
		if l.Number <= 0 {
			return nil, nil, errScoreFormat("layer number must be positive")
		}
		if opts.Layers == nil {
			opts.Layers = make(map[int]LayerOptions)
		}
		opts.Layers[l.Number] = LayerOptions{
			FreezeStems:             l.FreezeStems,
			FreezeStemsUp:           l.FreezeStemsUp,
			FreezeTiesSameDirection: l.FreezeTiesSameDirection,
			IgnoreHiddenNotes:       l.IgnoreHiddenNotes,
			UseRestOffset:           l.UseRestOffset,
		}
	}
	for staff, pos := range fix.StemReversal {
		s, err := strconv.Atoi(staff)
		if err != nil {
			return nil, nil, errScoreFormat(fmt.Sprintf("stem-reversal staff key '%s' is not a number", staff))
		}
		if opts.Reversal == nil {
			opts.Reversal = make(map[int]int)
		}
		opts.Reversal[s] = pos
	}
	doc := NewDoc()
	doc.SetSystemBreaks(fix.Systems...)
	for i, fe := range fix.Entries {
		if fe.Rest && len(fe.Notes) > 0 {
			return nil, nil, errScoreFormat(fmt.Sprintf("entry %d is a rest but carries notes", i))
		}
		spec := EntrySpec{
			Measure:      fe.Measure,
			Staff:        fe.Staff,
			Layer:        fe.Layer,
			Voice2:       fe.Voice2,
			Voice2Launch: fe.Voice2Launch,
			Duration:     fe.Duration,
			Stem:         fe.Stem,
			Rest:         fe.Rest,
			Grace:        fe.Grace,
			SplitStem:    fe.SplitStem,
			FlipTie:      fe.FlipTie,
		}
		for _, fn := range fe.Notes {
			spec.Notes = append(spec.Notes, NoteSpec{
				Position:        fn.Position,
				TieToNext:       fn.TieToNext,
				TieFromPrevious: fn.TieFromPrevious,
				Accidentals:     fn.Accidentals,
				Dots:            fn.Dots,
				SplitUp:         fn.SplitUp,
			})
		}
		doc.AddEntry(spec)
	}
	tracer().Infof("parsed score fixture with %d entries", len(fix.Entries))
	return doc, opts, nil
}

func (fo fixtureOptions) build() (*Opts, error) {
	opts := DefaultOptions()
	switch fo.ChordDirection {
	case "", "split-by-half":
		opts.TieOpts.ChordDirection = ChordDirSplitByHalf
	case "outside-inside":
		opts.TieOpts.ChordDirection = ChordDirOutsideInside
	case "stem-reversal":
		opts.TieOpts.ChordDirection = ChordDirStemReversal
	default:
		return nil, errScoreFormat(fmt.Sprintf("unknown chord-direction '%s'", fo.ChordDirection))
	}
	switch fo.MixedStem {
	case "", "automatic":
		opts.TieOpts.MixedStemDirection = MixedStemAutomatic
	case "over":
		opts.TieOpts.MixedStemDirection = MixedStemOver
	case "under":
		opts.TieOpts.MixedStemDirection = MixedStemUnder
	default:
		return nil, errScoreFormat(fmt.Sprintf("unknown mixed-stem '%s'", fo.MixedStem))
	}
	opts.TieOpts.UseOuterPlacement = fo.OuterPlacement
	opts.TieOpts.OpposingSeconds = fo.OpposingSeconds
	opts.TieOpts.BeforeSingleAccidental = fo.BeforeSingleAccidental
	opts.TieOpts.AfterSingleDot = fo.AfterSingleDot
	opts.TieOpts.AfterMultipleDots = fo.AfterMultipleDots
	return opts, nil
}
