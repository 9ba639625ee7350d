package owlgraph

// classAxiomTypes, objectPropertyAxiomTypes, dataPropertyAxiomTypes,
// assertionAxiomTypes and annotationAxiomTypes mirror the axiom-family
// membership lists used to bucket the flat axiom list into the five
// type-family queries below.
var classAxiomTypes = map[AxiomType]bool{
	AxiomSubClassOf:         true,
	AxiomEquivalentClasses:  true,
	AxiomDisjointClasses:    true,
	AxiomDisjointUnion:      true,
}

var objectPropertyAxiomTypes = map[AxiomType]bool{
	AxiomSubObjectPropertyOf:             true,
	AxiomEquivalentObjectProperties:      true,
	AxiomDisjointObjectProperties:        true,
	AxiomInverseObjectProperties:         true,
	AxiomObjectPropertyDomain:            true,
	AxiomObjectPropertyRange:             true,
	AxiomFunctionalObjectProperty:        true,
	AxiomInverseFunctionalObjectProperty: true,
	AxiomReflexiveObjectProperty:         true,
	AxiomIrreflexiveObjectProperty:       true,
	AxiomSymmetricObjectProperty:         true,
	AxiomAsymmetricObjectProperty:        true,
	AxiomTransitiveObjectProperty:        true,
}

var dataPropertyAxiomTypes = map[AxiomType]bool{
	AxiomSubDataPropertyOf:        true,
	AxiomEquivalentDataProperties: true,
	AxiomDisjointDataProperties:   true,
	AxiomDataPropertyDomain:       true,
	AxiomDataPropertyRange:        true,
	AxiomFunctionalDataProperty:   true,
}

var assertionAxiomTypes = map[AxiomType]bool{
	AxiomSameIndividual:                  true,
	AxiomDifferentIndividuals:            true,
	AxiomClassAssertion:                  true,
	AxiomObjectPropertyAssertion:         true,
	AxiomNegativeObjectPropertyAssertion: true,
	AxiomDataPropertyAssertion:           true,
	AxiomNegativeDataPropertyAssertion:   true,
}

var annotationAxiomTypes = map[AxiomType]bool{
	AxiomAnnotationAssertion:        true,
	AxiomSubAnnotationPropertyOf:    true,
	AxiomAnnotationPropertyDomain:   true,
	AxiomAnnotationPropertyRange:    true,
}

func (o *Ontology) filterByTypes(types map[AxiomType]bool) []Axiom {
	out := []Axiom{}
	for _, a := range o.axioms {
		if types[a.Type()] {
			out = append(out, a)
		}
	}
	return out
}

// DeclarationAxioms returns every Declaration axiom, in insertion order.
func (o *Ontology) DeclarationAxioms() []Declaration {
	out := []Declaration{}
	for _, a := range o.axioms {
		if d, ok := a.(Declaration); ok {
			out = append(out, d)
		}
	}
	return out
}

// ClassAxioms returns every class-axiom-family axiom (SubClassOf,
// EquivalentClasses, DisjointClasses, DisjointUnion).
func (o *Ontology) ClassAxioms() []Axiom { return o.filterByTypes(classAxiomTypes) }

// ObjectPropertyAxioms returns every object-property-axiom-family axiom.
func (o *Ontology) ObjectPropertyAxioms() []Axiom { return o.filterByTypes(objectPropertyAxiomTypes) }

// DataPropertyAxioms returns every data-property-axiom-family axiom.
func (o *Ontology) DataPropertyAxioms() []Axiom { return o.filterByTypes(dataPropertyAxiomTypes) }

// AssertionAxioms returns every assertion-axiom-family axiom.
func (o *Ontology) AssertionAxioms() []Axiom { return o.filterByTypes(assertionAxiomTypes) }

// AnnotationAxioms returns every annotation-axiom-family axiom.
func (o *Ontology) AnnotationAxioms() []Axiom { return o.filterByTypes(annotationAxiomTypes) }

// SubClassAxiomsForSubClass returns the SubClassOf axioms whose SubClass is
// the given named class (named-subclass match only; complex subclass
// expressions are not matched).
func (o *Ontology) SubClassAxiomsForSubClass(c Class) []SubClassOf {
	out := []SubClassOf{}
	for _, a := range o.axioms {
		if sc, ok := a.(SubClassOf); ok {
			if named, ok := sc.SubClass.(NamedClass); ok && named.Class.IRI.Equal(c.IRI) {
				out = append(out, sc)
			}
		}
	}
	return out
}

// SubClassAxiomsForSuperClass returns the SubClassOf axioms whose SuperClass
// is the given named class (named-superclass match only).
func (o *Ontology) SubClassAxiomsForSuperClass(c Class) []SubClassOf {
	out := []SubClassOf{}
	for _, a := range o.axioms {
		if sc, ok := a.(SubClassOf); ok {
			if named, ok := sc.SuperClass.(NamedClass); ok && named.Class.IRI.Equal(c.IRI) {
				out = append(out, sc)
			}
		}
	}
	return out
}

// EquivalentClassesAxioms returns the EquivalentClasses axioms that name c
// as one of their members.
func (o *Ontology) EquivalentClassesAxioms(c Class) []EquivalentClasses {
	out := []EquivalentClasses{}
	for _, a := range o.axioms {
		if ec, ok := a.(EquivalentClasses); ok && classExpressionsContainNamed(ec.ClassExpressions, c) {
			out = append(out, ec)
		}
	}
	return out
}

// DisjointClassesAxioms returns the DisjointClasses axioms that name c as
// one of their members.
func (o *Ontology) DisjointClassesAxioms(c Class) []DisjointClasses {
	out := []DisjointClasses{}
	for _, a := range o.axioms {
		if dc, ok := a.(DisjointClasses); ok && classExpressionsContainNamed(dc.ClassExpressions, c) {
			out = append(out, dc)
		}
	}
	return out
}

func classExpressionsContainNamed(exprs []ClassExpression, c Class) bool {
	for _, e := range exprs {
		if named, ok := e.(NamedClass); ok && named.Class.IRI.Equal(c.IRI) {
			return true
		}
	}
	return false
}

// SubObjectPropertyAxioms returns the SubObjectPropertyOf axioms whose
// SubProperty or SuperProperty equals the given property (for
// property-chain axioms, SubProperty is replaced by the chain's last
// link). This filters by the given property in every case, deviating
// intentionally from the upstream C++ behavior, which ignores its
// argument entirely for this query; see DESIGN.md.
func (o *Ontology) SubObjectPropertyAxioms(property ObjectPropertyExpression) []SubObjectPropertyOf {
	out := []SubObjectPropertyOf{}
	for _, a := range o.axioms {
		sp, ok := a.(SubObjectPropertyOf)
		if !ok {
			continue
		}
		if sp.SuperProperty.Equal(property) {
			out = append(out, sp)
			continue
		}
		if sp.IsChain() {
			if len(sp.Chain) > 0 && sp.Chain[len(sp.Chain)-1].Equal(property) {
				out = append(out, sp)
			}
			continue
		}
		if sp.SubProperty.Equal(property) {
			out = append(out, sp)
		}
	}
	return out
}

// SubDataPropertyAxioms returns the SubDataPropertyOf axioms whose
// SubProperty or SuperProperty equals the given property.
func (o *Ontology) SubDataPropertyAxioms(property DataProperty) []SubDataPropertyOf {
	out := []SubDataPropertyOf{}
	for _, a := range o.axioms {
		if sp, ok := a.(SubDataPropertyOf); ok &&
			(sp.SubProperty.IRI.Equal(property.IRI) || sp.SuperProperty.IRI.Equal(property.IRI)) {
			out = append(out, sp)
		}
	}
	return out
}

// ClassAssertions returns the ClassAssertion axioms whose Individual equals
// the given named individual.
func (o *Ontology) ClassAssertions(ind NamedIndividual) []ClassAssertion {
	out := []ClassAssertion{}
	for _, a := range o.axioms {
		if ca, ok := a.(ClassAssertion); ok {
			if named, ok := ca.Individual.(NamedIndividual); ok && named.IRI.Equal(ind.IRI) {
				out = append(out, ca)
			}
		}
	}
	return out
}

// ObjectPropertyAssertions returns the ObjectPropertyAssertion axioms whose
// Source equals the given named individual.
func (o *Ontology) ObjectPropertyAssertions(ind NamedIndividual) []ObjectPropertyAssertion {
	out := []ObjectPropertyAssertion{}
	for _, a := range o.axioms {
		if pa, ok := a.(ObjectPropertyAssertion); ok {
			if named, ok := pa.Source.(NamedIndividual); ok && named.IRI.Equal(ind.IRI) {
				out = append(out, pa)
			}
		}
	}
	return out
}

// DataPropertyAssertions returns the DataPropertyAssertion axioms whose
// Source equals the given named individual.
func (o *Ontology) DataPropertyAssertions(ind NamedIndividual) []DataPropertyAssertion {
	out := []DataPropertyAssertion{}
	for _, a := range o.axioms {
		if pa, ok := a.(DataPropertyAssertion); ok {
			if named, ok := pa.Source.(NamedIndividual); ok && named.IRI.Equal(ind.IRI) {
				out = append(out, pa)
			}
		}
	}
	return out
}
