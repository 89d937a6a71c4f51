package search

import (
	"fmt"
	"sort"
)

// Kernel searches a whole sequence for a key.
type Kernel func(seq []int, key int) Position

// Probe is a Kernel that also reports its comparison count.
type Probe func(seq []int, key int) (Position, int)

// Kernel names understood by Lookup.
const (
	LinearName = "linear"
	BinaryName = "binary"
)

type entry struct {
	kernel Kernel
	probe  Probe
}

var kernels = map[string]entry{
	LinearName: {kernel: Linear, probe: LinearProbe},
	BinaryName: {
		kernel: BinaryAll,
		probe: func(seq []int, key int) (Position, int) {
			return BinaryProbe(seq, key, 0, len(seq)-1)
		},
	},
}

// Lookup returns the kernel registered under name.
func Lookup(name string) (Kernel, error) {
	e, ok := kernels[name]
	if !ok {
		return nil, fmt.Errorf("unknown search kernel %q (known: %v)", name, Names())
	}
	return e.kernel, nil
}

// LookupProbe returns the instrumented kernel registered under name.
func LookupProbe(name string) (Probe, error) {
	e, ok := kernels[name]
	if !ok {
		return nil, fmt.Errorf("unknown search kernel %q (known: %v)", name, Names())
	}
	return e.probe, nil
}

// Names lists the registered kernel names in sorted order.
func Names() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
