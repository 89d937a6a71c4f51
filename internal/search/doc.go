// SPDX-License-Identifier: MIT
//
// Package search provides the two search kernels compared by this project: a
// linear scan and a binary (halving) search over an integer sequence.
//
// # Results
//
// Both kernels return a Position rather than a bare index. A Position is either
// Found(i) or Absent, and the zero value is Absent. No valid index doubles as
// the "not found" marker, so position 0 and "absent" can never be confused.
//
// # Probes
//
// LinearProbe and BinaryProbe are the instrumented forms of the kernels. They
// return the same Position along with the number of element comparisons they
// performed. Linear and Binary are thin wrappers over them, so the counts
// describe exactly the algorithms the drivers run.
//
// Kernels are pure: they never mutate the input slice and never fail.
package search
