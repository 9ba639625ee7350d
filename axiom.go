package owlgraph

// AxiomType discriminates the concrete axiom kind for type-dispatched
// queries, avoiding a dynamic-cast chain when filtering the axiom list.
type AxiomType int

const (
	AxiomDeclaration AxiomType = iota

	AxiomSubClassOf
	AxiomEquivalentClasses
	AxiomDisjointClasses
	AxiomDisjointUnion

	AxiomSubObjectPropertyOf
	AxiomEquivalentObjectProperties
	AxiomDisjointObjectProperties
	AxiomInverseObjectProperties
	AxiomObjectPropertyDomain
	AxiomObjectPropertyRange
	AxiomFunctionalObjectProperty
	AxiomInverseFunctionalObjectProperty
	AxiomReflexiveObjectProperty
	AxiomIrreflexiveObjectProperty
	AxiomSymmetricObjectProperty
	AxiomAsymmetricObjectProperty
	AxiomTransitiveObjectProperty

	AxiomSubDataPropertyOf
	AxiomEquivalentDataProperties
	AxiomDisjointDataProperties
	AxiomDataPropertyDomain
	AxiomDataPropertyRange
	AxiomFunctionalDataProperty

	AxiomSameIndividual
	AxiomDifferentIndividuals
	AxiomClassAssertion
	AxiomObjectPropertyAssertion
	AxiomNegativeObjectPropertyAssertion
	AxiomDataPropertyAssertion
	AxiomNegativeDataPropertyAssertion

	AxiomAnnotationAssertion
	AxiomSubAnnotationPropertyOf
	AxiomAnnotationPropertyDomain
	AxiomAnnotationPropertyRange

	AxiomDatatypeDefinition
	AxiomHasKey
)

// Axiom is the common interface implemented by every OWL 2 axiom kind.
// Axioms are immutable records; per the data model's design, queries over
// axioms live on the Ontology store, not as methods here — axioms remain
// pure data.
type Axiom interface {
	// Type returns the discriminator tag for this axiom.
	Type() AxiomType
	// AxiomAnnotations returns the axiom's (possibly empty) annotation list.
	AxiomAnnotations() []Annotation
	// FunctionalSyntax renders the axiom's OWL 2 Functional Syntax form,
	// with annotations first inside the parentheses.
	FunctionalSyntax() string
	// EqualAxiom reports structural equality, used by containsAxiom and
	// removeAxiom.
	EqualAxiom(other Axiom) bool
}

func equalAnnotationSlices(a, b []Annotation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalIRISlices(a, b []IRI) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
