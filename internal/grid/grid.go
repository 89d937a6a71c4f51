// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"fmt"

	"github.com/aloncha/Kelas-Alpro/internal/ctxlog"
	"github.com/aloncha/Kelas-Alpro/internal/dataset"
	"github.com/aloncha/Kelas-Alpro/internal/fsutil"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Dataset is a named sequence declared by a `dataset` block.
type Dataset struct {
	Name     string
	Sequence dataset.Sequence
	Range    hcl.Range
}

// Probe is a `probe` block: a list of keys to look up in one dataset.
type Probe struct {
	Name    string
	Dataset *Dataset
	Keys    []int
	Range   hcl.Range
}

// Grid is the merged content of one or more grid files.
type Grid struct {
	Datasets []*Dataset
	Probes   []*Probe
}

// Dataset returns the dataset declared under name, or nil.
func (g *Grid) Dataset(name string) *Dataset {
	for _, d := range g.Datasets {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// hclGridFile is the top-level shape of a grid file for decoding.
type hclGridFile struct {
	Datasets []*hclDataset `hcl:"dataset,block"`
	Probes   []*hclProbe   `hcl:"probe,block"`
}

type hclDataset struct {
	Name   string         `hcl:"name,label"`
	Size   hcl.Expression `hcl:"size,optional"`
	Values hcl.Expression `hcl:"values,optional"`
	Body   hcl.Body       `hcl:",body"`
}

type hclProbe struct {
	Name    string         `hcl:"name,label"`
	Dataset hcl.Expression `hcl:"dataset"`
	Keys    hcl.Expression `hcl:"keys"`
	Body    hcl.Body       `hcl:",body"`
}

// Load reads every .hcl file at path (a file or a directory) and builds a
// validated Grid.
func Load(ctx context.Context, path string) (*Grid, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading grid from path.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find grid files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl grid files found in %s", path)
	}

	parser := hclparse.NewParser()
	var merged hclGridFile
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := decodeInto(hclFile, file, &merged); err != nil {
			return nil, err
		}
		logger.Debug("Grid file decoded.", "file", file)
	}

	return build(ctx, &merged)
}

// LoadSource builds a Grid from a single in-memory file.
func LoadSource(ctx context.Context, filename string, src []byte) (*Grid, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	var parsed hclGridFile
	if err := decodeInto(hclFile, filename, &parsed); err != nil {
		return nil, err
	}
	return build(ctx, &parsed)
}

func decodeInto(file *hcl.File, filename string, merged *hclGridFile) error {
	var parsed hclGridFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	merged.Datasets = append(merged.Datasets, parsed.Datasets...)
	merged.Probes = append(merged.Probes, parsed.Probes...)
	return nil
}

func build(ctx context.Context, raw *hclGridFile) (*Grid, error) {
	logger := ctxlog.FromContext(ctx)
	evalCtx := newEvalContext()
	var diags hcl.Diagnostics
	g := &Grid{}

	for _, rd := range raw.Datasets {
		d, dDiags := newDataset(rd, evalCtx)
		diags = append(diags, dDiags...)
		if d == nil {
			continue
		}
		if prev := g.Dataset(d.Name); prev != nil {
			diags = append(diags, duplicateBlock("dataset", d.Name, prev.Range, d.Range))
			continue
		}
		g.Datasets = append(g.Datasets, d)
	}

	seen := make(map[string]hcl.Range)
	for _, rp := range raw.Probes {
		p, pDiags := newProbe(rp, g, evalCtx)
		diags = append(diags, pDiags...)
		if p == nil {
			continue
		}
		if prev, ok := seen[p.Name]; ok {
			diags = append(diags, duplicateBlock("probe", p.Name, prev, p.Range))
			continue
		}
		seen[p.Name] = p.Range
		g.Probes = append(g.Probes, p)
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid grid: %w", diags)
	}
	if len(g.Probes) == 0 {
		return nil, fmt.Errorf("invalid grid: no probe blocks declared")
	}

	logger.Debug("Grid built.", "datasets", len(g.Datasets), "probes", len(g.Probes))
	return g, nil
}

func duplicateBlock(kind, name string, first, again hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Duplicate %s %q", kind, name),
		Detail:   fmt.Sprintf("A %s named %q was already declared at %s.", kind, name, first),
		Subject:  again.Ptr(),
	}
}
