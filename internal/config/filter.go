package config

import "git.home.luguber.info/inful/refdoc/internal/discovery"

// FilterConfig overrides a dialect's default path filter. Nil lists keep the
// default; an explicitly empty list clears it.
type FilterConfig struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// Apply returns base with the configured lists substituted.
func (f FilterConfig) Apply(base discovery.Filter) discovery.Filter {
	if f.Include != nil {
		base.Include = f.Include
	}
	if f.Exclude != nil {
		base.Exclude = f.Exclude
	}
	return base
}
