// Package compare runs every search kernel over the probes of a grid and
// reports, per key, what each kernel found and how many comparisons it spent.
package compare

import (
	"context"
	"fmt"

	"github.com/aloncha/Kelas-Alpro/internal/ctxlog"
	"github.com/aloncha/Kelas-Alpro/internal/grid"
	"github.com/aloncha/Kelas-Alpro/internal/search"
)

// Result is one kernel's answer for one key.
type Result struct {
	Found       bool `json:"found" yaml:"found"`
	Index       *int `json:"index,omitempty" yaml:"index,omitempty"`
	Comparisons int  `json:"comparisons" yaml:"comparisons"`
}

func newResult(pos search.Position, comparisons int) Result {
	r := Result{Comparisons: comparisons}
	if idx, ok := pos.Index(); ok {
		r.Found = true
		r.Index = &idx
	}
	return r
}

// String renders the index or "absent".
func (r Result) String() string {
	if !r.Found {
		return "absent"
	}
	return fmt.Sprintf("%d", *r.Index)
}

// Outcome holds both kernels' results for a single key.
type Outcome struct {
	Key    int    `json:"key" yaml:"key"`
	Linear Result `json:"linear" yaml:"linear"`
	Binary Result `json:"binary" yaml:"binary"`
	Agree  bool   `json:"agree" yaml:"agree"`
}

// ProbeReport aggregates the outcomes of one probe block.
type ProbeReport struct {
	Probe         string    `json:"probe" yaml:"probe"`
	Dataset       string    `json:"dataset" yaml:"dataset"`
	Size          int       `json:"size" yaml:"size"`
	Distinct      bool      `json:"distinct" yaml:"distinct"`
	LinearTotal   int       `json:"linear_comparisons" yaml:"linear_comparisons"`
	BinaryTotal   int       `json:"binary_comparisons" yaml:"binary_comparisons"`
	Disagreements int       `json:"disagreements" yaml:"disagreements"`
	Outcomes      []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Report is the result of running a whole grid.
type Report struct {
	Probes        []ProbeReport `json:"probes" yaml:"probes"`
	Disagreements int           `json:"disagreements" yaml:"disagreements"`
}

// Run probes every key of every probe in g with both kernels.
func Run(ctx context.Context, g *grid.Grid) *Report {
	logger := ctxlog.FromContext(ctx)
	report := &Report{Probes: make([]ProbeReport, 0, len(g.Probes))}

	for _, p := range g.Probes {
		seq := p.Dataset.Sequence
		pr := ProbeReport{
			Probe:    p.Name,
			Dataset:  p.Dataset.Name,
			Size:     seq.Len(),
			Distinct: seq.Distinct(),
			Outcomes: make([]Outcome, 0, len(p.Keys)),
		}

		for _, key := range p.Keys {
			lPos, lCmp := search.LinearProbe(seq, key)
			bPos, bCmp := search.BinaryProbe(seq, key, 0, seq.Len()-1)

			o := Outcome{
				Key:    key,
				Linear: newResult(lPos, lCmp),
				Binary: newResult(bPos, bCmp),
				Agree:  agree(seq, lPos, bPos),
			}
			if !o.Agree {
				pr.Disagreements++
				logger.Warn("Kernels disagree.", "probe", p.Name, "key", key, "linear", lPos, "binary", bPos)
			}
			pr.LinearTotal += lCmp
			pr.BinaryTotal += bCmp
			pr.Outcomes = append(pr.Outcomes, o)
		}

		logger.Debug("Probe finished.",
			"probe", p.Name,
			"keys", len(p.Keys),
			"linear_comparisons", pr.LinearTotal,
			"binary_comparisons", pr.BinaryTotal,
		)
		report.Disagreements += pr.Disagreements
		report.Probes = append(report.Probes, pr)
	}

	return report
}

// agree reports whether both kernels reached the same answer. With duplicate
// values binary search may land on any copy, so found positions agree when
// they hold the same value.
func agree(seq []int, linear, binary search.Position) bool {
	li, lok := linear.Index()
	bi, bok := binary.Index()
	if lok != bok {
		return false
	}
	return !lok || seq[li] == seq[bi]
}
