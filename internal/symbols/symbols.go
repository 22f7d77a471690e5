// Package symbols is the resolution boundary between the pattern
// matching core and whatever knows the program's declarations. The core
// only ever asks what kind of thing a simple name refers to.
package symbols

// Kind is the result of resolving a simple name.
type Kind int

const (
	// Unresolved means the resolver has no binding for the name.
	Unresolved Kind = iota
	// Variable covers locals, parameters and fields.
	Variable
	// Class covers type names used as qualifiers (Outer.field).
	Class
	// Other is a known binding that is neither a variable nor a class,
	// such as a method or package fragment.
	Other
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Class:
		return "class"
	case Other:
		return "other"
	default:
		return "unresolved"
	}
}

// Resolver resolves a simple name at some use site. Implementations must
// be safe for concurrent use; the linter fans file analysis out across
// goroutines.
type Resolver interface {
	Resolve(name string) Kind
}

// ConventionResolver classifies names by Java naming conventions:
// a lower-case or underscore initial is a variable, an upper-case
// initial is a class. It is the default for standalone runs, where no
// real symbol table exists. Embedding hosts should supply their own
// Resolver instead.
type ConventionResolver struct{}

func (ConventionResolver) Resolve(name string) Kind {
	if name == "" {
		return Unresolved
	}
	c := name[0]
	switch {
	case c >= 'a' && c <= 'z', c == '_', c == '$':
		return Variable
	case c >= 'A' && c <= 'Z':
		return Class
	}
	return Other
}

// MapResolver resolves from a fixed table. Missing names are Unresolved.
type MapResolver map[string]Kind

func (m MapResolver) Resolve(name string) Kind {
	return m[name]
}
