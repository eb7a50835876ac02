package scoretest

import (
	"fmt"
	"strings"

	"github.com/MBonnice/notation"
	"github.com/MBonnice/notation/score"
	"github.com/MBonnice/notation/tie"
)

// Report classifies every tie record of a document and renders one
// line per record. Tie ends come before tie starts of the same note,
// matching their temporal order. The output is deterministic and used
// for golden comparisons as well as by the command line tools.
func Report(doc *score.Doc, opts score.Options, sys score.Systems, forPageView bool) string {
	sb := strings.Builder{}
	for i, e := range doc.Entries() {
		for j := 0; j < e.NoteCount(); j++ {
			n := e.Note(j)
			if n.TieFromPrevious() {
				alter := &tie.Alter{Start: false}
				writeLine(&sb, i, j, n, "end", notation.TieGeometry(n, alter, forPageView, opts, sys))
			}
			if n.TieToNext() {
				alter := &tie.Alter{Start: true}
				writeLine(&sb, i, j, n, "start", notation.TieGeometry(n, alter, forPageView, opts, sys))
			}
		}
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, i, j int, n score.Note, role string, c notation.TieClassification) {
	fmt.Fprintf(sb, "entry %d m%d note %d pos %d %s: dir=%s place=%s/%s code=%s/%s\n",
		i, n.Entry().Measure(), j, n.Position(), role,
		c.Direction, c.Start, c.End, c.StartCode, c.EndCode)
}
