package main

import (
	"fmt"
	"sort"

	"github.com/inetvm/inet/internal/church"
	"github.com/inetvm/inet/internal/inet"
)

// scenario builds a program on n and returns the term to evaluate and read
// back. An alias of internal/church's own Scenario type so its exported
// builders can populate the map directly; the duplication demo additionally
// returns the free location it built z at, which the CLI doesn't need.
type scenario = church.Scenario

var scenarios = map[string]scenario{
	"identity": church.IdentityScenario,
	"double-three": church.DoubleThreeScenario,
	"four-times-three": church.FourTimesThreeScenario,
	"k-erasure": church.KErasureScenario,
	"duplication": func(n *inet.Net) (inet.Term, error) {
		root, _, err := church.DuplicationScenario(n)
		return root, err
	},
	"if-true": church.IfTrueScenario,
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for k := range scenarios {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func lookupScenario(name string) (scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q (available: %v)", name, scenarioNames())
	}
	return s, nil
}
