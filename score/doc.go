/*
Package score models the slice of a notation document that tie
classification needs to see: note entries, their notes, document-wide
engraving options and the partitioning of measures into staff systems.

The model is a set of read-only capability interfaces. Calculators in
package tie consume nothing but these interfaces, so they can be driven
by a live document binding as well as by fabricated in-memory scores
(see Doc).

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package score

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'notation.score'
func tracer() tracing.Trace {
	return tracing.Select("notation.score")
}

// errScoreFormat produces user level errors for score fixture parsing.
func errScoreFormat(message string) error {
	return fmt.Errorf("score format: %s", message)
}
