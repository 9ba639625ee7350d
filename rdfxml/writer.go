package rdfxml

import (
	"io"

	"github.com/kahefi/owlgraph"
)

// WriteOntology renders ont into an in-memory triple store using the
// standard OWL2 RDF mapping, restricted to the axiom subset this package
// supports: declarations, named-class SubClassOf/EquivalentClasses/
// DisjointClasses, property domain/range, named-property subsumption, the
// non-chain object/data property characteristics, individual assertions
// and comment/label annotations. Property chains, DatatypeDefinition and
// HasKey have no natural triple-level rendering and are skipped.
func WriteOntology(ont *owlgraph.Ontology) (*MemoryStore, error) {
	uri, _ := ont.IRI()
	store := NewMemoryStore(uri.FullIRI())

	triples := []Triple{}
	add := func(subj, pred, obj Term) {
		triples = append(triples, Triple{Subject: subj, Predicate: pred, Object: obj})
	}

	ontTerm := NewResourceTerm(uri.FullIRI())
	add(ontTerm, NewResourceTerm(RDFType), NewResourceTerm(OWLOntology))
	if v, ok := ont.VersionIRI(); ok {
		add(ontTerm, NewResourceTerm(OWLVersionInfo), NewLiteralTerm(v.FullIRI(), "", ""))
	}
	for _, imp := range ont.Imports() {
		add(ontTerm, NewResourceTerm(OWLImports), NewResourceTerm(imp.FullIRI()))
	}

	for _, a := range ont.Axioms() {
		writeAxiom(a, add)
	}

	if err := store.AddTriplesUnchecked(triples); err != nil {
		return nil, err
	}
	return store, nil
}

func writeAxiom(a owlgraph.Axiom, add func(subj, pred, obj Term)) {
	switch ax := a.(type) {
	case owlgraph.Declaration:
		writeDeclaration(ax, add)

	case owlgraph.SubClassOf:
		sub, ok1 := namedClassIRI(ax.SubClass)
		super, ok2 := namedClassIRI(ax.SuperClass)
		if ok1 && ok2 {
			add(NewResourceTerm(sub), NewResourceTerm(RDFSSubClassOf), NewResourceTerm(super))
		}

	case owlgraph.EquivalentClasses:
		writePairwiseNamedClasses(ax.ClassExpressions, OWLEquivalentClass, add)

	case owlgraph.DisjointClasses:
		writePairwiseNamedClasses(ax.ClassExpressions, OWLDisjointWith, add)

	case owlgraph.ObjectPropertyDomain:
		if domain, ok := namedClassIRI(ax.Domain); ok && !ax.Property.Inverse {
			add(NewResourceTerm(ax.Property.Property.IRI.FullIRI()), NewResourceTerm(RDFSDomain), NewResourceTerm(domain))
		}
	case owlgraph.ObjectPropertyRange:
		if rng, ok := namedClassIRI(ax.Range); ok && !ax.Property.Inverse {
			add(NewResourceTerm(ax.Property.Property.IRI.FullIRI()), NewResourceTerm(RDFSRange), NewResourceTerm(rng))
		}
	case owlgraph.DataPropertyDomain:
		if domain, ok := namedClassIRI(ax.Domain); ok {
			add(NewResourceTerm(ax.Property.IRI.FullIRI()), NewResourceTerm(RDFSDomain), NewResourceTerm(domain))
		}
	case owlgraph.DataPropertyRange:
		if rng, ok := namedDatatypeIRI(ax.Range); ok {
			add(NewResourceTerm(ax.Property.IRI.FullIRI()), NewResourceTerm(RDFSRange), NewResourceTerm(rng))
		}

	case owlgraph.SubObjectPropertyOf:
		if !ax.IsChain() && !ax.SubProperty.Inverse && !ax.SuperProperty.Inverse {
			add(NewResourceTerm(ax.SubProperty.Property.IRI.FullIRI()), NewResourceTerm(RDFSSubPropertyOf),
				NewResourceTerm(ax.SuperProperty.Property.IRI.FullIRI()))
		}
	case owlgraph.SubDataPropertyOf:
		add(NewResourceTerm(ax.SubProperty.IRI.FullIRI()), NewResourceTerm(RDFSSubPropertyOf),
			NewResourceTerm(ax.SuperProperty.IRI.FullIRI()))

	case owlgraph.FunctionalObjectProperty:
		writeCharacteristic(ax.Property, OWLFunctionalProperty, add)
	case owlgraph.InverseFunctionalObjectProperty:
		writeCharacteristic(ax.Property, OWLInverseFunctionalProperty, add)
	case owlgraph.SymmetricObjectProperty:
		writeCharacteristic(ax.Property, OWLSymmetricProperty, add)
	case owlgraph.AsymmetricObjectProperty:
		writeCharacteristic(ax.Property, OWLAsymmetricProperty, add)
	case owlgraph.TransitiveObjectProperty:
		writeCharacteristic(ax.Property, OWLTransitiveProperty, add)
	case owlgraph.ReflexiveObjectProperty:
		writeCharacteristic(ax.Property, OWLReflexiveProperty, add)
	case owlgraph.IrreflexiveObjectProperty:
		writeCharacteristic(ax.Property, OWLIrreflexiveProperty, add)
	case owlgraph.FunctionalDataProperty:
		add(NewResourceTerm(ax.Property.IRI.FullIRI()), NewResourceTerm(RDFType), NewResourceTerm(OWLFunctionalProperty))

	case owlgraph.SameIndividual:
		writePairwiseIndividuals(ax.Individuals, OWLSameAs, add)
	case owlgraph.DifferentIndividuals:
		writePairwiseIndividuals(ax.Individuals, OWLDifferentFrom, add)

	case owlgraph.ClassAssertion:
		if cls, ok := namedClassIRI(ax.ClassExpr); ok {
			if ind, ok := namedIndividualIRI(ax.Individual); ok {
				add(NewResourceTerm(ind), NewResourceTerm(RDFType), NewResourceTerm(cls))
			}
		}

	case owlgraph.ObjectPropertyAssertion:
		if src, ok := namedIndividualIRI(ax.Source); ok {
			if tgt, ok := namedIndividualIRI(ax.Target); ok && !ax.Property.Inverse {
				add(NewResourceTerm(src), NewResourceTerm(ax.Property.Property.IRI.FullIRI()), NewResourceTerm(tgt))
			}
		}

	case owlgraph.DataPropertyAssertion:
		if src, ok := namedIndividualIRI(ax.Source); ok {
			add(NewResourceTerm(src), NewResourceTerm(ax.Property.IRI.FullIRI()), literalTerm(ax.Value))
		}

	case owlgraph.AnnotationAssertion:
		writeAnnotationAssertion(ax, add)
	}
}

func writeDeclaration(ax owlgraph.Declaration, add func(subj, pred, obj Term)) {
	subj := NewResourceTerm(ax.IRI.FullIRI())
	switch ax.EntityKind {
	case owlgraph.EntityClass:
		add(subj, NewResourceTerm(RDFType), NewResourceTerm(OWLClass))
	case owlgraph.EntityDatatype:
		add(subj, NewResourceTerm(RDFType), NewResourceTerm(RDFSDatatype))
	case owlgraph.EntityObjectProperty:
		add(subj, NewResourceTerm(RDFType), NewResourceTerm(OWLObjectProperty))
	case owlgraph.EntityDataProperty:
		add(subj, NewResourceTerm(RDFType), NewResourceTerm(OWLDatatypeProperty))
	case owlgraph.EntityAnnotationProperty:
		add(subj, NewResourceTerm(RDFType), NewResourceTerm(OWLAnnotationProperty))
	case owlgraph.EntityNamedIndividual:
		add(subj, NewResourceTerm(RDFType), NewResourceTerm(OWLNamedIndividual))
	}
}

func writeCharacteristic(property owlgraph.ObjectPropertyExpression, tag string, add func(subj, pred, obj Term)) {
	if property.Inverse {
		return
	}
	add(NewResourceTerm(property.Property.IRI.FullIRI()), NewResourceTerm(RDFType), NewResourceTerm(tag))
}

func writeAnnotationAssertion(ax owlgraph.AnnotationAssertion, add func(subj, pred, obj Term)) {
	subject, ok := ax.Subject.(owlgraph.IRISubject)
	if !ok {
		return
	}
	subj := NewResourceTerm(subject.IRI.FullIRI())
	pred := NewResourceTerm(ax.Property.IRI.FullIRI())
	switch v := ax.Value.(type) {
	case owlgraph.LiteralValue:
		add(subj, pred, literalTerm(v.Literal))
	case owlgraph.IRIValue:
		add(subj, pred, NewResourceTerm(v.IRI.FullIRI()))
	}
}

func writePairwiseNamedClasses(exprs []owlgraph.ClassExpression, predicate string, add func(subj, pred, obj Term)) {
	iris := []string{}
	for _, e := range exprs {
		if iri, ok := namedClassIRI(e); ok {
			iris = append(iris, iri)
		}
	}
	for i := 0; i < len(iris); i++ {
		for j := i + 1; j < len(iris); j++ {
			add(NewResourceTerm(iris[i]), NewResourceTerm(predicate), NewResourceTerm(iris[j]))
		}
	}
}

func writePairwiseIndividuals(inds []owlgraph.Individual, predicate string, add func(subj, pred, obj Term)) {
	iris := []string{}
	for _, ind := range inds {
		if iri, ok := namedIndividualIRI(ind); ok {
			iris = append(iris, iri)
		}
	}
	for i := 0; i < len(iris); i++ {
		for j := i + 1; j < len(iris); j++ {
			add(NewResourceTerm(iris[i]), NewResourceTerm(predicate), NewResourceTerm(iris[j]))
		}
	}
}

func namedClassIRI(ce owlgraph.ClassExpression) (string, bool) {
	nc, ok := ce.(owlgraph.NamedClass)
	if !ok {
		return "", false
	}
	return nc.Class.IRI.FullIRI(), true
}

func namedDatatypeIRI(dr owlgraph.DataRange) (string, bool) {
	nd, ok := dr.(owlgraph.NamedDatatype)
	if !ok {
		return "", false
	}
	return nd.Datatype.IRI.FullIRI(), true
}

func namedIndividualIRI(ind owlgraph.Individual) (string, bool) {
	ni, ok := ind.(owlgraph.NamedIndividual)
	if !ok {
		return "", false
	}
	return ni.IRI.FullIRI(), true
}

func literalTerm(l owlgraph.Literal) Term {
	lang, hasLang := l.LanguageTag()
	if hasLang {
		return NewLiteralTerm(l.LexicalForm(), lang, "")
	}
	if l.IsTyped() {
		return NewLiteralTerm(l.LexicalForm(), "", l.Datatype().FullIRI())
	}
	return NewLiteralTerm(l.LexicalForm(), "", "")
}

// Serialize writes ont to w as Turtle via the standard OWL2 RDF mapping.
func Serialize(w io.Writer, ont *owlgraph.Ontology, pretty bool) error {
	store, err := WriteOntology(ont)
	if err != nil {
		return err
	}
	return store.SerializeToTurtle(w, pretty)
}
