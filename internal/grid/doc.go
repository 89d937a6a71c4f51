// SPDX-License-Identifier: MIT
//
// Package grid loads comparison grids: HCL files describing the datasets to
// search and the keys to probe them with. A grid lets a learner run both
// search kernels over identical inputs in one go.
//
// A grid file holds two kinds of blocks:
//
//	dataset "reference" {
//	  size = 100            # element i is 2*i
//	}
//
//	dataset "squares" {
//	  values = [0, 1, 4, 9, 16]
//	}
//
//	probe "sweep" {
//	  dataset = "reference"
//	  keys    = concat([-1], range(0, 200, 25))
//	}
//
// Attributes are kept as raw hcl.Expression values while decoding and are
// evaluated afterwards against an EvalContext that exposes a few go-cty
// stdlib functions (range, concat, min, max). Evaluated values are converted
// to Go through cty's convert and gocty packages.
//
// A directory may be given instead of a single file; every .hcl file below it
// is merged into one Grid, so datasets can be declared in one file and probed
// from another.
package grid
