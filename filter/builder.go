package filter

import (
	"sort"

	"github.com/philipp01105/prettylog/core"
)

// Builder accumulates directives and produces a Filter. A Builder can be
// built only once.
type Builder struct {
	directives []Directive
	spec       *Spec
	built      bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Module adds a directive for target. A later directive for the same target
// replaces the earlier one.
func (b *Builder) Module(target string, level core.Level) *Builder {
	return b.insert(Directive{Name: target, Level: level})
}

// Level sets the threshold for targets no other directive matches.
func (b *Builder) Level(level core.Level) *Builder {
	return b.insert(Directive{Level: level})
}

func (b *Builder) insert(d Directive) *Builder {
	for i := range b.directives {
		if b.directives[i].Name == d.Name {
			b.directives[i].Level = d.Level
			return b
		}
	}
	b.directives = append(b.directives, d)
	return b
}

// Parse applies a directive spec to the builder. Directives are added in
// order; a regex in the spec replaces any previous one. The returned error
// lists the parts that were ignored and is nil when the whole spec was
// understood.
func (b *Builder) Parse(spec string) error {
	s, err := ParseSpec(spec)
	for _, d := range s.Directives {
		b.insert(d)
	}
	b.spec = &s
	return err
}

// Build returns the Filter. It panics if the builder was already built.
func (b *Builder) Build() *Filter {
	if b.built {
		panic("filter: attempt to re-use consumed builder")
	}
	b.built = true

	directives := make([]Directive, len(b.directives))
	copy(directives, b.directives)
	if len(directives) == 0 {
		directives = append(directives, Directive{Level: core.ErrorLevel})
	}
	sort.SliceStable(directives, func(i, j int) bool {
		return len(directives[i].Name) < len(directives[j].Name)
	})

	f := &Filter{directives: directives, minLevel: core.OffLevel}
	for _, d := range directives {
		if d.Level < f.minLevel {
			f.minLevel = d.Level
		}
	}
	if b.spec != nil {
		f.regex = b.spec.Regex
	}
	return f
}

// Parse is a shortcut for NewBuilder, Parse and Build.
func Parse(spec string) (*Filter, error) {
	b := NewBuilder()
	err := b.Parse(spec)
	return b.Build(), err
}
