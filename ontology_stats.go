package owlgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Statistics is the aggregate report returned by (*Ontology).Statistics,
// mirroring the counters an ontology-store summary would surface to an
// operator inspecting a loaded graph: ontology identity, entity category
// counts, and axiom family counts.
type Statistics struct {
	OntologyIRI             string
	VersionIRI              string
	AxiomCount              int
	ClassCount              int
	ObjectPropertyCount     int
	DataPropertyCount       int
	AnnotationPropertyCount int
	IndividualCount         int
	DatatypeCount           int
	ImportCount             int

	ClassAxiomCount           int
	ObjectPropertyAxiomCount  int
	DataPropertyAxiomCount    int
	AssertionAxiomCount       int
	AnnotationAxiomCount      int
	DeclarationAxiomCount     int
}

// Statistics computes the current aggregate counters.
func (o *Ontology) Statistics() Statistics {
	s := Statistics{
		AxiomCount:              o.AxiomCount(),
		ClassCount:              o.ClassCount(),
		ObjectPropertyCount:     o.ObjectPropertyCount(),
		DataPropertyCount:       o.DataPropertyCount(),
		AnnotationPropertyCount: o.AnnotationPropertyCount(),
		IndividualCount:         o.IndividualCount(),
		DatatypeCount:           o.DatatypeCount(),
		ImportCount:             len(o.imports),

		DeclarationAxiomCount:    len(o.DeclarationAxioms()),
		ClassAxiomCount:          len(o.ClassAxioms()),
		ObjectPropertyAxiomCount: len(o.ObjectPropertyAxioms()),
		DataPropertyAxiomCount:   len(o.DataPropertyAxioms()),
		AssertionAxiomCount:      len(o.AssertionAxioms()),
		AnnotationAxiomCount:     len(o.AnnotationAxioms()),
	}
	if o.iri != nil {
		s.OntologyIRI = o.iri.FullIRI()
	}
	if o.versionIRI != nil {
		s.VersionIRI = o.versionIRI.FullIRI()
	}
	return s
}

// String renders the statistics as the fixed multi-line human-readable
// report: ontology identity, then one line per entity category count,
// then one line per axiom family count.
func (s Statistics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ontology IRI: %s\n", s.OntologyIRI)
	fmt.Fprintf(&b, "Version IRI: %s\n", s.VersionIRI)
	fmt.Fprintf(&b, "Axioms: %d\n", s.AxiomCount)
	fmt.Fprintf(&b, "Classes: %d\n", s.ClassCount)
	fmt.Fprintf(&b, "Object Properties: %d\n", s.ObjectPropertyCount)
	fmt.Fprintf(&b, "Data Properties: %d\n", s.DataPropertyCount)
	fmt.Fprintf(&b, "Annotation Properties: %d\n", s.AnnotationPropertyCount)
	fmt.Fprintf(&b, "Individuals: %d\n", s.IndividualCount)
	fmt.Fprintf(&b, "Datatypes: %d\n", s.DatatypeCount)
	fmt.Fprintf(&b, "Imports: %d\n", s.ImportCount)
	fmt.Fprintf(&b, "Declaration axioms: %d\n", s.DeclarationAxiomCount)
	fmt.Fprintf(&b, "Class axioms: %d\n", s.ClassAxiomCount)
	fmt.Fprintf(&b, "Object property axioms: %d\n", s.ObjectPropertyAxiomCount)
	fmt.Fprintf(&b, "Data property axioms: %d\n", s.DataPropertyAxiomCount)
	fmt.Fprintf(&b, "Assertion axioms: %d\n", s.AssertionAxiomCount)
	fmt.Fprintf(&b, "Annotation axioms: %d", s.AnnotationAxiomCount)
	return b.String()
}

// ToFunctionalSyntax renders the complete ontology document in OWL 2
// Functional Syntax: a header line naming the ontology IRI (empty angle
// brackets when unset) and the version IRI (omitted when unset), one
// indented line per prefix, import, ontology annotation and axiom (in that
// order; prefixes sorted by name, imports sorted by IRI, annotations and
// axioms in insertion order), and a closing parenthesis alone on its own
// line.
// An optional indent string prefixes every inner line (default "    ").
func (o *Ontology) ToFunctionalSyntax(indent ...string) string {
	ind := "    "
	if len(indent) > 0 {
		ind = indent[0]
	}

	var b strings.Builder
	b.WriteString("Ontology(")
	if o.iri != nil {
		b.WriteString("<" + o.iri.FullIRI() + ">")
	} else {
		b.WriteString("<>")
	}
	if o.versionIRI != nil {
		b.WriteString(" <" + o.versionIRI.FullIRI() + ">")
	}
	b.WriteString("\n")

	prefixes := make([]string, 0, len(o.prefixToNamespace))
	for p := range o.prefixToNamespace {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		fmt.Fprintf(&b, "%sPrefix(%s:=<%s>)\n", ind, p, o.prefixToNamespace[p])
	}

	imports := o.Imports()
	sort.Slice(imports, func(i, j int) bool { return imports[i].FullIRI() < imports[j].FullIRI() })
	for _, imp := range imports {
		fmt.Fprintf(&b, "%sImport(<%s>)\n", ind, imp.FullIRI())
	}

	for _, ann := range o.annotations {
		fmt.Fprintf(&b, "%s%s\n", ind, ann.FunctionalSyntax())
	}

	for _, a := range o.axioms {
		fmt.Fprintf(&b, "%s%s\n", ind, a.FunctionalSyntax())
	}

	b.WriteString(")")
	return b.String()
}
