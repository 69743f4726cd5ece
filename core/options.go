// SPDX-License-Identifier: MIT

package core

// DescriptionOption customizes a StringDescription before first use.
// Complexity: applying N options costs O(N).
type DescriptionOption func(*descriptionConfig)

// descriptionConfig aggregates the knobs of a StringDescription.
type descriptionConfig struct {
	// formatValue renders one value for AppendValue and AppendValueList.
	formatValue func(any) string
}

// newDescriptionConfig starts from the canonical formatter and applies opts
// in order (later overrides earlier).
func newDescriptionConfig(opts ...DescriptionOption) descriptionConfig {
	cfg := descriptionConfig{
		formatValue: FormatValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithValueFormatter replaces the value formatter. Matchers keep their fixed
// phrases; only the rendering of embedded values changes.
// Panics on nil.
func WithValueFormatter(fn func(any) string) DescriptionOption {
	if fn == nil {
		panic("core: WithValueFormatter(nil)")
	}

	return func(c *descriptionConfig) {
		c.formatValue = fn
	}
}
