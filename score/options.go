package score

// ChordDirectionPolicy selects how the host decides tie directions for
// the inner notes of a chord.
type ChordDirectionPolicy int8

const (
	// ChordDirSplitByHalf puts ties of the lower half of a chord under
	// and ties of the upper half over.
	ChordDirSplitByHalf ChordDirectionPolicy = iota
	// ChordDirOutsideInside orients inner ties by the entry's stem
	// direction.
	ChordDirOutsideInside
	// ChordDirStemReversal orients inner ties by the staff's stem
	// reversal position.
	ChordDirStemReversal
)

// String returns a human-readable representation of the policy.
func (p ChordDirectionPolicy) String() string {
	switch p {
	case ChordDirSplitByHalf:
		return "split-by-half"
	case ChordDirOutsideInside:
		return "outside-inside"
	case ChordDirStemReversal:
		return "stem-reversal"
	}
	return "unknown"
}

// MixedStemPolicy selects the tie side for single notes whose tie span
// connects entries with opposing stem directions.
type MixedStemPolicy int8

const (
	MixedStemAutomatic MixedStemPolicy = iota // fall through to the stem rule
	MixedStemOver
	MixedStemUnder
)

// String returns a human-readable representation of the policy.
func (p MixedStemPolicy) String() string {
	switch p {
	case MixedStemAutomatic:
		return "automatic"
	case MixedStemOver:
		return "over"
	case MixedStemUnder:
		return "under"
	}
	return "unknown"
}

// TieOptions is a snapshot of the document-wide tie settings.
type TieOptions struct {
	ChordDirection     ChordDirectionPolicy
	MixedStemDirection MixedStemPolicy
	UseOuterPlacement  bool
	// OpposingSeconds flips the inner default for the displaced note of
	// a second interval, so the two ties do not collide.
	OpposingSeconds bool
	// BeforeSingleAccidental moves a tie start clear of a single
	// accidental.
	BeforeSingleAccidental bool
	// AfterSingleDot and AfterMultipleDots move a tie end clear of
	// augmentation dots.
	AfterSingleDot   bool
	AfterMultipleDots bool
}

// LayerOptions is a snapshot of per-layer settings. FreezeStemsUp and
// FreezeTiesSameDirection only apply while FreezeStems is set.
type LayerOptions struct {
	FreezeStems             bool
	FreezeStemsUp           bool
	FreezeTiesSameDirection bool
	IgnoreHiddenNotes       bool
	UseRestOffset           bool
}

// Opts is a concrete Options snapshot, suitable for fixtures and for
// callers that assemble preference values themselves.
type Opts struct {
	TieOpts  TieOptions
	Layers   map[int]LayerOptions
	Reversal map[int]int // staff number -> stem reversal position
}

var _ Options = (*Opts)(nil)

// Tie returns the document-wide tie settings.
func (o *Opts) Tie() TieOptions { return o.TieOpts }

// Layer returns the settings of notation layer n (1-based). Layers
// without explicit settings report the zero value.
func (o *Opts) Layer(n int) LayerOptions {
	if o.Layers == nil {
		return LayerOptions{}
	}
	return o.Layers[n]
}

// StemReversal returns the stem reversal position configured for a
// staff, defaulting to the middle staff line.
func (o *Opts) StemReversal(staff int) int {
	if o.Reversal == nil {
		return 0
	}
	return o.Reversal[staff]
}

// DefaultOptions returns the host's factory settings: split-by-half
// chord ties, automatic mixed-stem handling, outer placement off and no
// accidental or dot avoidance.
func DefaultOptions() *Opts {
	return &Opts{}
}
