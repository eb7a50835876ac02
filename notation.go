package notation

import (
	"github.com/MBonnice/notation/score"
	"github.com/MBonnice/notation/tie"
)

// TieClassification is the complete classification of one tie: the
// side it curves to, the placement of both endpoints and the anchor
// code of both endpoints.
type TieClassification struct {
	Direction tie.Direction
	Start     tie.Placement
	End       tie.Placement
	StartCode tie.Connect
	EndCode   tie.Connect
}

// TieGeometry runs the full classification chain for the tie of one
// note: effective direction, endpoint placements and connection codes.
//
// alter may be nil for an untouched tie start. opts may be nil to use
// host defaults, sys may be nil for scroll view. This is a convenience
// API for the very common one-call case; clients that classify many
// ties of one document should load an Options snapshot once and call
// the package tie calculators directly.
func TieGeometry(n score.Note, alter *tie.Alter, forPageView bool, opts score.Options, sys score.Systems) TieClassification {
	if alter == nil {
		alter = &tie.Alter{Start: true}
	}
	if opts == nil {
		opts = score.DefaultOptions()
	}
	dir := tie.ResolveDirection(n, alter, opts)
	start, end := tie.Placements(n, alter, forPageView, dir, opts)
	forTieEnd := !alter.Start
	c := TieClassification{
		Direction: dir,
		Start:     start,
		End:       end,
		StartCode: tie.ConnectionCode(n, start, dir, tie.StartPoint, forTieEnd, forPageView, opts, sys),
		EndCode:   tie.ConnectionCode(n, end, dir, tie.EndPoint, forTieEnd, forPageView, opts, sys),
	}
	tracer().Debugf("tie classified %s %s/%s", dir, start, end)
	return c
}
