package scoretest

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/sebdah/goldie/v2"
)

func TestDemoReportGolden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation.tie")
	defer teardown()
	//
	doc, opts := DemoScore()
	out := Report(doc, opts, doc, true)
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "demo_report", []byte(out))
}
