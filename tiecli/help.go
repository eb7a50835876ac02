package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "dir", "direction":
		pterm.Info.Println("Tie direction")
		pterm.Println(`
	'dir' resolves the curve side for the tie of the current note.
	Manual overrides and frozen layers win over the automatic rule;
	the automatic rule follows stems and chord geometry.
	Over means the tie curves above the notehead, Under below.
	`)
	case "place", "placement":
		pterm.Info.Println("Tie placement")
		pterm.Println(`
	'place' classifies both endpoints of the tie of the current note.
	Inner placements start at the notehead edge, outer placements
	over or under the notehead or the stem. Both endpoints of one tie
	agree on inner vs. outer.
	`)
	case "code", "connect":
		pterm.Info.Println("Connection codes")
		pterm.Println(`
	'code' prints the anchor code of each endpoint: the glyph corner
	or score landmark the curve attaches to. Ties broken across staff
	systems anchor at system-start and system-end.
	`)
	case "load", "score":
		pterm.Info.Println("Score fixtures")
		pterm.Println(`
	'load:FILE' reads a TOML score fixture. 'load' without an
	argument restores the built-in demo score. Use 'entries' to list
	the document and 'entry:N' / 'note:N' to move the cursor.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	load[:FILE]  load a score fixture (TOML), or the demo score
	entries      list all entries of the document
	entry:N      select entry N
	note:N       select note N of the current entry
	dir          curve side of the tie of the current note
	place        endpoint placements of the tie
	code         endpoint connection codes of the tie
	report       classify every tie record of the document
	options      show the document options snapshot
	page         toggle page view / scroll view
	quit         leave (<ctrl>D works as well)

	'help:dir', 'help:place', 'help:code' and 'help:load' give details.
	`)
	}
}
