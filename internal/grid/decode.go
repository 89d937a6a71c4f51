package grid

import (
	"fmt"

	"github.com/aloncha/Kelas-Alpro/internal/dataset"
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext exposes the functions grid expressions may call.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"range":  stdlib.RangeFunc,
			"concat": stdlib.ConcatFunc,
			"min":    stdlib.MinFunc,
			"max":    stdlib.MaxFunc,
		},
	}
}

func newDataset(rd *hclDataset, evalCtx *hcl.EvalContext) (*Dataset, hcl.Diagnostics) {
	rng := rd.Body.MissingItemRange()

	sizeVal, diags := rd.Size.Value(evalCtx)
	valuesVal, valuesDiags := rd.Values.Value(evalCtx)
	diags = append(diags, valuesDiags...)
	if diags.HasErrors() {
		return nil, diags
	}

	hasSize, hasValues := !sizeVal.IsNull(), !valuesVal.IsNull()
	if hasSize == hasValues {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid dataset",
			Detail:   fmt.Sprintf("Dataset %q must set exactly one of \"size\" or \"values\".", rd.Name),
			Subject:  rng.Ptr(),
		})
	}

	var (
		seq     dataset.Sequence
		err     error
		subject = rd.Values.Range()
	)
	if hasSize {
		subject = rd.Size.Range()
		var n int
		if err = decodeValue(sizeVal, cty.Number, &n); err == nil {
			seq, err = dataset.Build(n)
		}
	} else {
		var values []int
		if err = decodeValue(valuesVal, cty.List(cty.Number), &values); err == nil {
			seq, err = dataset.FromValues(values)
		}
	}
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid dataset",
			Detail:   fmt.Sprintf("Dataset %q: %s.", rd.Name, err),
			Subject:  subject.Ptr(),
		})
	}

	return &Dataset{Name: rd.Name, Sequence: seq, Range: rng}, diags
}

func newProbe(rp *hclProbe, g *Grid, evalCtx *hcl.EvalContext) (*Probe, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	var name string
	nameVal, nameDiags := rp.Dataset.Value(evalCtx)
	diags = append(diags, nameDiags...)
	if !nameDiags.HasErrors() {
		if err := decodeValue(nameVal, cty.String, &name); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid dataset reference",
				Detail:   fmt.Sprintf("Probe %q: %s.", rp.Name, err),
				Subject:  rp.Dataset.Range().Ptr(),
			})
		}
	}

	var keys []int
	keysVal, keysDiags := rp.Keys.Value(evalCtx)
	diags = append(diags, keysDiags...)
	if !keysDiags.HasErrors() {
		if err := decodeValue(keysVal, cty.List(cty.Number), &keys); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid keys",
				Detail:   fmt.Sprintf("Probe %q: %s.", rp.Name, err),
				Subject:  rp.Keys.Range().Ptr(),
			})
		} else if len(keys) == 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid keys",
				Detail:   fmt.Sprintf("Probe %q must list at least one key.", rp.Name),
				Subject:  rp.Keys.Range().Ptr(),
			})
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	d := g.Dataset(name)
	if d == nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unknown dataset",
			Detail:   fmt.Sprintf("Probe %q refers to dataset %q, which is not declared.", rp.Name, name),
			Subject:  rp.Dataset.Range().Ptr(),
		})
	}

	return &Probe{
		Name:    rp.Name,
		Dataset: d,
		Keys:    keys,
		Range:   rp.Body.MissingItemRange(),
	}, diags
}

// decodeValue converts val to ty and then into the Go value goVal points to.
func decodeValue(val cty.Value, ty cty.Type, goVal any) error {
	if val.IsNull() {
		return fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return fmt.Errorf("value must be known")
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), ty.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, goVal)
}
