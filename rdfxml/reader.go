package rdfxml

import (
	"github.com/kahefi/owlgraph"
)

// ReadOntology performs a best-effort inverse of WriteOntology: it
// reconstructs an ontology from a triple store built on the same
// restricted subset of the OWL2 RDF mapping. Axiom families with no
// triple-level rendering (property chains, DatatypeDefinition, HasKey)
// cannot round-trip and are absent from the result.
func ReadOntology(store GraphStore) (*owlgraph.Ontology, error) {
	triples, err := store.GetAllTriples()
	if err != nil {
		return nil, err
	}

	ont := owlgraph.NewOntologyWithIRI(owlgraph.NewIRI(store.GetURI()))
	kinds := declaredKinds(triples)

	for _, t := range triples {
		if !t.Subject.IsResource() {
			continue
		}
		subj := t.Subject.Value()
		pred := t.Predicate.Value()

		switch pred {
		case RDFType:
			readTypeTriple(ont, subj, t.Object, kinds)

		case RDFSSubClassOf:
			if t.Object.IsResource() {
				ont.AddAxiom(owlgraph.SubClassOf{
					SubClass:   owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(subj)}},
					SuperClass: owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(t.Object.Value())}},
				})
			}

		case RDFSSubPropertyOf:
			if !t.Object.IsResource() {
				continue
			}
			obj := t.Object.Value()
			if kinds[subj] == owlgraph.EntityDataProperty {
				ont.AddAxiom(owlgraph.SubDataPropertyOf{
					SubProperty:   owlgraph.DataProperty{IRI: owlgraph.NewIRI(subj)},
					SuperProperty: owlgraph.DataProperty{IRI: owlgraph.NewIRI(obj)},
				})
			} else {
				ont.AddAxiom(owlgraph.SubObjectPropertyOf{
					SubProperty:   owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: owlgraph.NewIRI(subj)}},
					SuperProperty: owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: owlgraph.NewIRI(obj)}},
				})
			}

		case RDFSDomain:
			if !t.Object.IsResource() {
				continue
			}
			domain := owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(t.Object.Value())}}
			if kinds[subj] == owlgraph.EntityDataProperty {
				ont.AddAxiom(owlgraph.DataPropertyDomain{Property: owlgraph.DataProperty{IRI: owlgraph.NewIRI(subj)}, Domain: domain})
			} else {
				ont.AddAxiom(owlgraph.ObjectPropertyDomain{Property: owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: owlgraph.NewIRI(subj)}}, Domain: domain})
			}

		case RDFSRange:
			if !t.Object.IsResource() {
				continue
			}
			if kinds[subj] == owlgraph.EntityDataProperty {
				ont.AddAxiom(owlgraph.DataPropertyRange{
					Property: owlgraph.DataProperty{IRI: owlgraph.NewIRI(subj)},
					Range:    owlgraph.NamedDatatype{Datatype: owlgraph.Datatype{IRI: owlgraph.NewIRI(t.Object.Value())}},
				})
			} else {
				ont.AddAxiom(owlgraph.ObjectPropertyRange{
					Property: owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: owlgraph.NewIRI(subj)}},
					Range:    owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(t.Object.Value())}},
				})
			}

		case OWLEquivalentClass:
			if t.Object.IsResource() {
				ont.AddAxiom(owlgraph.EquivalentClasses{ClassExpressions: []owlgraph.ClassExpression{
					owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(subj)}},
					owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(t.Object.Value())}},
				}})
			}

		case OWLDisjointWith:
			if t.Object.IsResource() {
				ont.AddAxiom(owlgraph.DisjointClasses{ClassExpressions: []owlgraph.ClassExpression{
					owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(subj)}},
					owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(t.Object.Value())}},
				}})
			}

		case OWLSameAs:
			if t.Object.IsResource() {
				ont.AddAxiom(owlgraph.SameIndividual{Individuals: []owlgraph.Individual{
					owlgraph.NamedIndividual{IRI: owlgraph.NewIRI(subj)},
					owlgraph.NamedIndividual{IRI: owlgraph.NewIRI(t.Object.Value())},
				}})
			}

		case OWLDifferentFrom:
			if t.Object.IsResource() {
				ont.AddAxiom(owlgraph.DifferentIndividuals{Individuals: []owlgraph.Individual{
					owlgraph.NamedIndividual{IRI: owlgraph.NewIRI(subj)},
					owlgraph.NamedIndividual{IRI: owlgraph.NewIRI(t.Object.Value())},
				}})
			}

		case OWLVersionInfo:
			if subj == store.GetURI() {
				ont.SetVersionIRI(owlgraph.NewIRI(t.Object.Value()))
			}
		case OWLImports:
			if subj == store.GetURI() && t.Object.IsResource() {
				ont.AddImport(owlgraph.NewIRI(t.Object.Value()))
			}

		case RDFSComment:
			readAnnotation(ont, subj, "http://www.w3.org/2000/01/rdf-schema#comment", t.Object)
		case RDFSLabel:
			readAnnotation(ont, subj, "http://www.w3.org/2000/01/rdf-schema#label", t.Object)

		case OWLFunctionalProperty, OWLInverseFunctionalProperty, OWLSymmetricProperty,
			OWLAsymmetricProperty, OWLTransitiveProperty, OWLReflexiveProperty, OWLIrreflexiveProperty:
			// handled by readTypeTriple above via rdf:type

		default:
			readAssertion(ont, subj, pred, t.Object, kinds)
		}
	}

	return ont, nil
}

func declaredKinds(triples []Triple) map[string]owlgraph.EntityKind {
	kinds := map[string]owlgraph.EntityKind{}
	for _, t := range triples {
		if t.Predicate.Value() != RDFType || !t.Object.IsResource() {
			continue
		}
		subj := t.Subject.Value()
		switch t.Object.Value() {
		case OWLClass:
			kinds[subj] = owlgraph.EntityClass
		case RDFSDatatype:
			kinds[subj] = owlgraph.EntityDatatype
		case OWLObjectProperty:
			kinds[subj] = owlgraph.EntityObjectProperty
		case OWLDatatypeProperty:
			kinds[subj] = owlgraph.EntityDataProperty
		case OWLAnnotationProperty:
			kinds[subj] = owlgraph.EntityAnnotationProperty
		case OWLNamedIndividual:
			kinds[subj] = owlgraph.EntityNamedIndividual
		}
	}
	return kinds
}

func readTypeTriple(ont *owlgraph.Ontology, subj string, obj Term, kinds map[string]owlgraph.EntityKind) {
	if !obj.IsResource() {
		return
	}
	iri := owlgraph.NewIRI(subj)
	switch obj.Value() {
	case OWLClass:
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityClass, IRI: iri})
	case RDFSDatatype:
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityDatatype, IRI: iri})
	case OWLObjectProperty:
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityObjectProperty, IRI: iri})
	case OWLDatatypeProperty:
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityDataProperty, IRI: iri})
	case OWLAnnotationProperty:
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityAnnotationProperty, IRI: iri})
	case OWLNamedIndividual:
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityNamedIndividual, IRI: iri})

	case OWLFunctionalProperty:
		if kinds[subj] == owlgraph.EntityDataProperty {
			ont.AddAxiom(owlgraph.FunctionalDataProperty{Property: owlgraph.DataProperty{IRI: iri}})
		} else {
			ont.AddAxiom(owlgraph.NewFunctionalObjectProperty(owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: iri}}))
		}
	case OWLInverseFunctionalProperty:
		ont.AddAxiom(owlgraph.NewInverseFunctionalObjectProperty(owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: iri}}))
	case OWLSymmetricProperty:
		ont.AddAxiom(owlgraph.NewSymmetricObjectProperty(owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: iri}}))
	case OWLAsymmetricProperty:
		ont.AddAxiom(owlgraph.NewAsymmetricObjectProperty(owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: iri}}))
	case OWLTransitiveProperty:
		ont.AddAxiom(owlgraph.NewTransitiveObjectProperty(owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: iri}}))
	case OWLReflexiveProperty:
		ont.AddAxiom(owlgraph.NewReflexiveObjectProperty(owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: iri}}))
	case OWLIrreflexiveProperty:
		ont.AddAxiom(owlgraph.NewIrreflexiveObjectProperty(owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: iri}}))

	default:
		// individual class membership
		ont.AddAxiom(owlgraph.ClassAssertion{
			ClassExpr:  owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(obj.Value())}},
			Individual: owlgraph.NamedIndividual{IRI: iri},
		})
	}
}

func readAnnotation(ont *owlgraph.Ontology, subj, propertyIRI string, obj Term) {
	assertion := owlgraph.AnnotationAssertion{
		Property: owlgraph.AnnotationProperty{IRI: owlgraph.NewIRI(propertyIRI)},
		Subject:  owlgraph.IRISubject{IRI: owlgraph.NewIRI(subj)},
	}
	if obj.IsLiteral() {
		assertion.Value = owlgraph.LiteralValue{Literal: parseLiteralTerm(obj)}
	} else {
		assertion.Value = owlgraph.IRIValue{IRI: owlgraph.NewIRI(obj.Value())}
	}
	ont.AddAxiom(assertion)
}

func readAssertion(ont *owlgraph.Ontology, subj, pred string, obj Term, kinds map[string]owlgraph.EntityKind) {
	source := owlgraph.NamedIndividual{IRI: owlgraph.NewIRI(subj)}
	if obj.IsLiteral() {
		ont.AddAxiom(owlgraph.DataPropertyAssertion{
			Property: owlgraph.DataProperty{IRI: owlgraph.NewIRI(pred)},
			Source:   source,
			Value:    parseLiteralTerm(obj),
		})
		return
	}
	if obj.IsResource() {
		if kinds[pred] == owlgraph.EntityAnnotationProperty {
			ont.AddAxiom(owlgraph.AnnotationAssertion{
				Property: owlgraph.AnnotationProperty{IRI: owlgraph.NewIRI(pred)},
				Subject:  owlgraph.IRISubject{IRI: owlgraph.NewIRI(subj)},
				Value:    owlgraph.IRIValue{IRI: owlgraph.NewIRI(obj.Value())},
			})
			return
		}
		ont.AddAxiom(owlgraph.ObjectPropertyAssertion{
			Property: owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: owlgraph.NewIRI(pred)}},
			Source:   source,
			Target:   owlgraph.NamedIndividual{IRI: owlgraph.NewIRI(obj.Value())},
		})
	}
}

func parseLiteralTerm(t Term) owlgraph.Literal {
	value := t.Value()
	if lang := t.Language(); lang != "" {
		return owlgraph.NewLangLiteral(value, lang)
	}
	if dt := t.Datatype(); dt != "" {
		return owlgraph.NewTypedLiteral(value, owlgraph.NewIRI(dt))
	}
	return owlgraph.NewPlainLiteral(value)
}
