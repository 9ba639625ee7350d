package owlgraph

// Ontology is the in-memory indexed collection of axioms, the single
// mutable store the rest of the library operates over. Mutating operations
// (AddAxiom, RemoveAxiom, ClearAxioms, prefix and metadata changes) are not
// safe to call concurrently with each other or with reads; see the package
// doc for the concurrency contract.
type Ontology struct {
	iri        *IRI
	versionIRI *IRI
	imports    map[string]IRI
	annotations []Annotation

	prefixToNamespace map[string]string
	namespaceToPrefix map[string]string

	axioms []Axiom
}

// NewOntology builds an empty, anonymous ontology seeded with the standard
// owl/rdf/rdfs/xsd prefixes.
func NewOntology() *Ontology {
	o := &Ontology{
		imports:           map[string]IRI{},
		prefixToNamespace: map[string]string{},
		namespaceToPrefix: map[string]string{},
	}
	o.initializeStandardPrefixes()
	return o
}

// NewOntologyWithIRI builds an empty ontology identified by the given IRI.
func NewOntologyWithIRI(iri IRI) *Ontology {
	o := NewOntology()
	o.iri = &iri
	return o
}

// NewOntologyWithVersion builds an empty ontology identified by the given
// ontology and version IRIs.
func NewOntologyWithVersion(iri, versionIRI IRI) *Ontology {
	o := NewOntologyWithIRI(iri)
	o.versionIRI = &versionIRI
	return o
}

func (o *Ontology) initializeStandardPrefixes() {
	o.registerPrefixUnsynced("owl", "http://www.w3.org/2002/07/owl#")
	o.registerPrefixUnsynced("rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#")
	o.registerPrefixUnsynced("rdfs", "http://www.w3.org/2000/01/rdf-schema#")
	o.registerPrefixUnsynced("xsd", "http://www.w3.org/2001/XMLSchema#")
}

// IRI returns the ontology IRI, and whether one is set.
func (o *Ontology) IRI() (IRI, bool) {
	if o.iri == nil {
		return IRI{}, false
	}
	return *o.iri, true
}

// SetIRI sets the ontology IRI.
func (o *Ontology) SetIRI(iri IRI) { o.iri = &iri }

// VersionIRI returns the version IRI, and whether one is set.
func (o *Ontology) VersionIRI() (IRI, bool) {
	if o.versionIRI == nil {
		return IRI{}, false
	}
	return *o.versionIRI, true
}

// SetVersionIRI sets the ontology's version IRI.
func (o *Ontology) SetVersionIRI(iri IRI) { o.versionIRI = &iri }

// Annotations returns the ontology-level annotation list.
func (o *Ontology) Annotations() []Annotation { return o.annotations }

// AddAnnotation appends an ontology-level annotation.
func (o *Ontology) AddAnnotation(a Annotation) { o.annotations = append(o.annotations, a) }

// Imports returns the set of import IRIs, in no guaranteed order.
func (o *Ontology) Imports() []IRI {
	out := make([]IRI, 0, len(o.imports))
	for _, iri := range o.imports {
		out = append(out, iri)
	}
	return out
}

// AddImport adds an import IRI.
func (o *Ontology) AddImport(iri IRI) { o.imports[iri.FullIRI()] = iri }

// RemoveImport removes an import IRI, reporting whether it was present.
func (o *Ontology) RemoveImport(iri IRI) bool {
	if _, ok := o.imports[iri.FullIRI()]; !ok {
		return false
	}
	delete(o.imports, iri.FullIRI())
	return true
}

// HasImport reports whether the given IRI is an import of this ontology.
func (o *Ontology) HasImport(iri IRI) bool {
	_, ok := o.imports[iri.FullIRI()]
	return ok
}

// RegisterPrefix binds a prefix to a namespace URI. The bidirectional map
// is kept invariantly in lockstep: any prior mapping of either the prefix
// or the namespace is removed first, so a single prefix never maps to two
// namespaces and vice versa.
func (o *Ontology) RegisterPrefix(prefix, namespace string) {
	// Remove any existing mapping for this prefix
	if oldNS, ok := o.prefixToNamespace[prefix]; ok {
		delete(o.namespaceToPrefix, oldNS)
	}
	// Remove any existing mapping for this namespace
	if oldPrefix, ok := o.namespaceToPrefix[namespace]; ok {
		delete(o.prefixToNamespace, oldPrefix)
	}
	o.registerPrefixUnsynced(prefix, namespace)
}

func (o *Ontology) registerPrefixUnsynced(prefix, namespace string) {
	o.prefixToNamespace[prefix] = namespace
	o.namespaceToPrefix[namespace] = prefix
}

// NamespaceForPrefix looks up the namespace bound to a prefix. Absence is a
// LookupFailure: it is reported as a missing result, not an error.
func (o *Ontology) NamespaceForPrefix(prefix string) (string, bool) {
	ns, ok := o.prefixToNamespace[prefix]
	return ns, ok
}

// PrefixForNamespace looks up the prefix bound to a namespace. Absence is a
// LookupFailure: it is reported as a missing result, not an error.
func (o *Ontology) PrefixForNamespace(namespace string) (string, bool) {
	p, ok := o.namespaceToPrefix[namespace]
	return p, ok
}

// Prefixes returns a copy of the prefix-to-namespace map.
func (o *Ontology) Prefixes() map[string]string {
	out := make(map[string]string, len(o.prefixToNamespace))
	for k, v := range o.prefixToNamespace {
		out[k] = v
	}
	return out
}

// AddAxiom appends an axiom to the ontology, returning true iff the axiom
// was non-nil and appended. Duplicates are permitted.
func (o *Ontology) AddAxiom(a Axiom) bool {
	if a == nil {
		return false
	}
	o.axioms = append(o.axioms, a)
	return true
}

// RemoveAxiom removes the first occurrence structurally equal to a,
// reporting whether exactly one occurrence was removed.
func (o *Ontology) RemoveAxiom(a Axiom) bool {
	for i, existing := range o.axioms {
		if existing.EqualAxiom(a) {
			o.axioms = append(o.axioms[:i], o.axioms[i+1:]...)
			return true
		}
	}
	return false
}

// ContainsAxiom reports whether an axiom structurally equal to a is
// present.
func (o *Ontology) ContainsAxiom(a Axiom) bool {
	for _, existing := range o.axioms {
		if existing.EqualAxiom(a) {
			return true
		}
	}
	return false
}

// ClearAxioms removes every axiom from the ontology, leaving metadata
// untouched.
func (o *Ontology) ClearAxioms() { o.axioms = nil }

// Axioms returns the full axiom list in insertion order. The returned
// slice is a copy; mutating it does not affect the ontology.
func (o *Ontology) Axioms() []Axiom {
	out := make([]Axiom, len(o.axioms))
	copy(out, o.axioms)
	return out
}
