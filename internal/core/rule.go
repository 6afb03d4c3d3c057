package core

import "sort"

// Rule maps one cell's current attributes to its next attributes. gravity is
// the control scalar sampled for the tick. Rules must not depend on any other
// cell so they can be evaluated in any order.
type Rule func(c Cell, gravity float32) Cell

// DefaultRuleName is the registry key of DefaultRule.
const DefaultRuleName = "drift"

// DefaultRule settles density under gravity, cools temperature and slowly
// accumulates magic and organic matter.
func DefaultRule(c Cell, gravity float32) Cell {
	return Cell{
		Clamp01(c[Density] + gravity*0.01),
		Clamp01(c[Temperature] - 0.005),
		Clamp01(c[Magic] + 0.001),
		Clamp01(c[Organic] + 0.0005),
	}
}

// FrozenRule leaves every cell unchanged.
func FrozenRule(c Cell, _ float32) Cell { return c.Clamp() }

var rules = map[string]Rule{}

// Register adds an update rule under the provided name.
func Register(name string, r Rule) {
	if name == "" || r == nil {
		return
	}
	rules[name] = r
}

// Rules exposes the registry of available update rules.
func Rules() map[string]Rule {
	return rules
}

// RuleNames lists registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(DefaultRuleName, DefaultRule)
	Register("frozen", FrozenRule)
}
