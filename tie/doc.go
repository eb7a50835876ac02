/*
Package tie classifies ties the way the Finale engraving engine does.

A tie connects two notes of the same staff position across adjacent
entries. Before the host draws the curve it decides three things: the
side the curve bends to (over or under), the placement of each endpoint
(hugging the note, hugging the stem, or an outer position), and a
discrete connection code per endpoint that names the anchor the curve
attaches to. This package reimplements those three decisions as pure
functions over the read-only document views of package score.

Much of the logic reproduces observed host behavior rather than a
principled rule set. Branches that exist only for compatibility are
kept as separate, named special cases and commented as such; smoothing
them into a general formula would silently change classifications.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tie

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'notation.tie'
func tracer() tracing.Trace {
	return tracing.Select("notation.tie")
}
