package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MBonnice/notation/internal/scoretest"
	"github.com/MBonnice/notation/score"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("tie-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for inspecting tie direction and placement decisions on score fixtures.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("report").
		SetDescription("Classify every tie record of a score fixture and print one line per record.").
		SetShortDescription("tie classification report").
		AddArgument("score", "score fixture file (TOML), or '-' for the built-in demo score", "-").
		AddFlag("page-view,p", "classify for page view instead of scroll view", commando.Bool, nil).
		SetAction(runReportCommand)

	commando.
		Register("classify").
		SetDescription("Classify the tie of a single note of a score fixture.").
		SetShortDescription("classify one tie").
		AddArgument("score", "score fixture file (TOML), or '-' for the built-in demo score", "-").
		AddFlag("entry,e", "entry index (order of appearance in the fixture)", commando.Int, 0).
		AddFlag("note,n", "note index within the entry (0 = lowest)", commando.Int, 0).
		AddFlag("end", "classify the tie-end record instead of the tie-start", commando.Bool, nil).
		AddFlag("page-view,p", "classify for page view instead of scroll view", commando.Bool, nil).
		SetAction(runClassifyCommand)

	commando.
		Register("inspect").
		SetDescription("Print the document structure of a score fixture: options, layers, systems and entries.").
		SetShortDescription("fixture diagnostics").
		AddArgument("score", "score fixture file (TOML), or '-' for the built-in demo score", "-").
		SetAction(runInspectCommand)

	commando.Parse(nil)
}

func mustLoadScore(arg commando.ArgValue) (*score.Doc, *score.Opts) {
	path := strings.TrimSpace(arg.Value)
	if path == "" || path == "-" {
		return scoretest.DemoScore()
	}
	doc, opts, err := score.LoadTOML(path)
	if err != nil {
		fatalf("cannot load score %s: %v", path, err)
	}
	return doc, opts
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "tie-tools: "+format+"\n", args...)
	os.Exit(1)
}
