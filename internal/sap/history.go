package sap

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/time/rate"
)

// HistoryNode is one recorded Outcome and the index of the node that
// caused it (-1 for a root cause like StartBattle). Edges are implicit in
// ParentID, giving a forest of causal trees rather than petgraph's general
// graph — sufficient for the strictly-tree-shaped cascade spec.md §4.6
// describes (every Outcome has at most one cause).
type HistoryNode struct {
	Outcome  Outcome
	ParentID int
}

// History is the optional causal-graph recorder from spec.md §4.6: purely
// additive bookkeeping alongside the trigger queue, never consulted by the
// engine itself. Rate-limited the same way the teacher's EventLog limits
// event writes, so a misbehaving rule that fires thousands of triggers
// degrades to dropped history nodes instead of unbounded memory growth.
type History struct {
	Nodes   []HistoryNode
	limiter *rate.Limiter
	dropped int
}

// NewHistory returns a recorder capped at ratePerSecond node recordings
// (burst allows short bursts typical of a single cascade).
func NewHistory(ratePerSecond float64, burst int) *History {
	return &History{limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst)}
}

// record appends a node for outcome caused by the node at parentID (-1 for
// none), returning the new node's ID, or -1 if the rate limiter dropped it.
func (h *History) record(outcome Outcome, parentID int) int {
	if h == nil {
		return -1
	}
	if !h.limiter.Allow() {
		h.dropped++
		return -1
	}
	h.Nodes = append(h.Nodes, HistoryNode{Outcome: outcome, ParentID: parentID})
	return len(h.Nodes) - 1
}

// Dropped reports how many node recordings the rate limiter discarded.
func (h *History) Dropped() int {
	if h == nil {
		return 0
	}
	return h.dropped
}

// RenderPNG draws the causal forest to path: one circle per node labeled
// with its Status, one line per parent edge, laid out in recording order.
// Reuses the teacher's fogleman/gg canvas-drawing idiom (circles, lines,
// text labels) from its avatar/stream-frame compositing, repurposed here
// for debug visual export instead of stream overlays.
func (h *History) RenderPNG(path string, width, height int) error {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	n := len(h.Nodes)
	if n == 0 {
		return dc.SavePNG(path)
	}
	xStep := float64(width) / float64(n+1)
	positions := make([][2]float64, n)
	for i := range h.Nodes {
		positions[i] = [2]float64{xStep * float64(i+1), float64(height) / 2}
	}

	dc.SetColor(color.RGBA{R: 100, G: 100, B: 100, A: 255})
	dc.SetLineWidth(1)
	for i, node := range h.Nodes {
		if node.ParentID < 0 || node.ParentID >= n {
			continue
		}
		p := positions[node.ParentID]
		c := positions[i]
		dc.DrawLine(p[0], p[1], c[0], c[1])
		dc.Stroke()
	}

	for i, node := range h.Nodes {
		p := positions[i]
		dc.SetColor(color.RGBA{R: 70, G: 130, B: 180, A: 255})
		dc.DrawCircle(p[0], p[1], 10)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(fmt.Sprintf("%d:%s", i, node.Outcome.Status), p[0], p[1]+18, 0.5, 0.5)
	}

	return dc.SavePNG(path)
}
