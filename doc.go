/*
Package notation classifies tie geometry for music engraving.

There is a certain confusion with the nomenclature of engraving. We
will stick to the following definitions:

▪︎ A "tie" is the curved mark connecting two notes of the same pitch
across entries, indicating one sustained sound. It is not a slur, even
though the two curves look alike.

▪︎ An "entry" is a rhythmic slot on a staff holding a rest, a single
note or a chord. A "chord" is an entry with more than one note.

▪︎ A "system" is one row of music on a page, grouping the staves that
are printed together. In scroll view a piece is a single endless
system.

The package reproduces the tie placement decisions of Finale's
engraving engine: which way a tie curves, whether its endpoints hug
the note, the stem or an outer position, and which discrete anchor
each endpoint connects to. The decisions were reverse engineered from
host behavior; several of them are quirks kept deliberately for
compatibility. The calculators themselves live in package tie, the
document views they consume in package score.

# Status

Does not yet model cross-staff entries.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'notation'
func tracer() tracing.Trace {
	return tracing.Select("notation")
}
