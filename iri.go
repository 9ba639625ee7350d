package owlgraph

import "strings"

// IRI is a full Unicode identifier with an optional prefix/local-name/
// namespace decomposition. Equality, ordering and hashing are defined on
// the full form only: two IRIs with the same full string are equal even
// if they were built with different prefixes.
type IRI struct {
	full      string
	namespace string
	localName string
	prefix    string
	abbrev    bool
}

// NewIRI builds an IRI from its full string form, splitting it into a
// namespace and local name on the last '#', falling back to the last '/',
// falling back to treating the whole string as the namespace.
func NewIRI(full string) IRI {
	ns, local := splitIRI(full)
	return IRI{full: full, namespace: ns, localName: local}
}

// NewAbbreviatedIRI builds an IRI from a prefix, local name and namespace
// URI, with full = namespace + localName.
func NewAbbreviatedIRI(prefix, localName, namespace string) IRI {
	return IRI{
		full:      namespace + localName,
		namespace: namespace,
		localName: localName,
		prefix:    prefix,
		abbrev:    true,
	}
}

func splitIRI(full string) (namespace, localName string) {
	if idx := strings.LastIndex(full, "#"); idx >= 0 {
		return full[:idx+1], full[idx+1:]
	}
	if idx := strings.LastIndex(full, "/"); idx >= 0 {
		return full[:idx+1], full[idx+1:]
	}
	return full, ""
}

// FullIRI returns the complete identifier string.
func (i IRI) FullIRI() string { return i.full }

// Namespace returns the namespace portion.
func (i IRI) Namespace() string { return i.namespace }

// LocalName returns the local-name portion.
func (i IRI) LocalName() string { return i.localName }

// Prefix returns the prefix this IRI was constructed with, if any.
func (i IRI) Prefix() string { return i.prefix }

// IsAbbreviated reports whether this IRI was built from a prefix form.
func (i IRI) IsAbbreviated() bool { return i.abbrev }

// Abbreviated returns "prefix:localName" when the IRI carries a prefix,
// otherwise the full form.
func (i IRI) Abbreviated() string {
	if i.abbrev && i.prefix != "" {
		return i.prefix + ":" + i.localName
	}
	return i.full
}

// String implements fmt.Stringer, returning the full IRI.
func (i IRI) String() string { return i.full }

// Equal compares two IRIs on their full form only.
func (i IRI) Equal(other IRI) bool { return i.full == other.full }

// Less orders IRIs by full form, for deterministic sorting.
func (i IRI) Less(other IRI) bool { return i.full < other.full }
