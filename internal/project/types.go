package project

// Kind classifies a source target.
type Kind string

const (
	// KindLibrary is an ordinary build target.
	KindLibrary Kind = "library"
	// KindTest is a test target.
	KindTest Kind = "test"
)

// ProductRef names a product exported by another package.
type ProductRef struct {
	Name    string `yaml:"name"`
	Package string `yaml:"package"`
}

// Dependency is one edge of a target's dependency list. Exactly one of
// Target or Product is set; an edge with neither (or both) is malformed
// and is skipped with a diagnostic by consumers rather than rejected here,
// so the model degrades gracefully as the descriptor format grows.
type Dependency struct {
	Target  string      `yaml:"target,omitempty"`
	Product *ProductRef `yaml:"product,omitempty"`
}

// IsTarget reports whether the edge references a sibling target.
func (d Dependency) IsTarget() bool {
	return d.Target != "" && d.Product == nil
}

// IsProduct reports whether the edge references an external product.
func (d Dependency) IsProduct() bool {
	return d.Product != nil && d.Target == ""
}

// Target is one source build module of the host project.
type Target struct {
	Name         string       `yaml:"name"`
	Kind         Kind         `yaml:"kind,omitempty"`
	Path         string       `yaml:"path,omitempty"`
	Dependencies []Dependency `yaml:"dependencies,omitempty"`
}

// Project is the host project model read from the descriptor.
type Project struct {
	Name           string   `yaml:"name"`
	MinToolVersion string   `yaml:"minToolVersion,omitempty"`
	Targets        []Target `yaml:"targets"`

	// Root is the project root directory the descriptor was loaded from.
	// Not part of the descriptor itself.
	Root string `yaml:"-"`
}

// TargetKinds returns a name→kind index over all targets, used when a
// dependency edge must be classified by its referent's kind.
func (p *Project) TargetKinds() map[string]Kind {
	kinds := make(map[string]Kind, len(p.Targets))
	for _, t := range p.Targets {
		kinds[t.Name] = t.Kind
	}
	return kinds
}
