package main

import (
	"fmt"

	"github.com/MBonnice/notation/internal/scoretest"
	"github.com/thatisuday/commando"
)

func runReportCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	doc, opts := mustLoadScore(args["score"])
	forPageView := mustFlagBool(flags["page-view"], "page-view")
	fmt.Print(scoretest.Report(doc, opts, doc, forPageView))
}
