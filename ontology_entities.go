package owlgraph

// Classes returns every class declared via a Declaration axiom, in
// insertion order. Entities are derived from Declaration axioms only: a
// class mentioned solely inside an expression is not "declared".
func (o *Ontology) Classes() []Class {
	out := []Class{}
	for _, d := range o.DeclarationAxioms() {
		if d.EntityKind == EntityClass {
			out = append(out, Class{IRI: d.IRI})
		}
	}
	return out
}

// Datatypes returns every datatype declared via a Declaration axiom.
func (o *Ontology) Datatypes() []Datatype {
	out := []Datatype{}
	for _, d := range o.DeclarationAxioms() {
		if d.EntityKind == EntityDatatype {
			out = append(out, Datatype{IRI: d.IRI})
		}
	}
	return out
}

// ObjectProperties returns every object property declared via a
// Declaration axiom.
func (o *Ontology) ObjectProperties() []ObjectProperty {
	out := []ObjectProperty{}
	for _, d := range o.DeclarationAxioms() {
		if d.EntityKind == EntityObjectProperty {
			out = append(out, ObjectProperty{IRI: d.IRI})
		}
	}
	return out
}

// DataProperties returns every data property declared via a Declaration
// axiom.
func (o *Ontology) DataProperties() []DataProperty {
	out := []DataProperty{}
	for _, d := range o.DeclarationAxioms() {
		if d.EntityKind == EntityDataProperty {
			out = append(out, DataProperty{IRI: d.IRI})
		}
	}
	return out
}

// AnnotationProperties returns every annotation property declared via a
// Declaration axiom.
func (o *Ontology) AnnotationProperties() []AnnotationProperty {
	out := []AnnotationProperty{}
	for _, d := range o.DeclarationAxioms() {
		if d.EntityKind == EntityAnnotationProperty {
			out = append(out, AnnotationProperty{IRI: d.IRI})
		}
	}
	return out
}

// Individuals returns every named individual declared via a Declaration
// axiom.
func (o *Ontology) Individuals() []NamedIndividual {
	out := []NamedIndividual{}
	for _, d := range o.DeclarationAxioms() {
		if d.EntityKind == EntityNamedIndividual {
			out = append(out, NamedIndividual{IRI: d.IRI})
		}
	}
	return out
}

// ContainsClass reports whether c was declared.
func (o *Ontology) ContainsClass(c Class) bool {
	for _, x := range o.Classes() {
		if x.IRI.Equal(c.IRI) {
			return true
		}
	}
	return false
}

// ContainsDatatype reports whether d was declared.
func (o *Ontology) ContainsDatatype(d Datatype) bool {
	for _, x := range o.Datatypes() {
		if x.IRI.Equal(d.IRI) {
			return true
		}
	}
	return false
}

// ContainsObjectProperty reports whether p was declared.
func (o *Ontology) ContainsObjectProperty(p ObjectProperty) bool {
	for _, x := range o.ObjectProperties() {
		if x.IRI.Equal(p.IRI) {
			return true
		}
	}
	return false
}

// ContainsDataProperty reports whether p was declared.
func (o *Ontology) ContainsDataProperty(p DataProperty) bool {
	for _, x := range o.DataProperties() {
		if x.IRI.Equal(p.IRI) {
			return true
		}
	}
	return false
}

// ContainsAnnotationProperty reports whether p was declared.
func (o *Ontology) ContainsAnnotationProperty(p AnnotationProperty) bool {
	for _, x := range o.AnnotationProperties() {
		if x.IRI.Equal(p.IRI) {
			return true
		}
	}
	return false
}

// ContainsIndividual reports whether ind was declared.
func (o *Ontology) ContainsIndividual(ind NamedIndividual) bool {
	for _, x := range o.Individuals() {
		if x.IRI.Equal(ind.IRI) {
			return true
		}
	}
	return false
}

// ClassCount returns the number of declared classes.
func (o *Ontology) ClassCount() int { return len(o.Classes()) }

// ObjectPropertyCount returns the number of declared object properties.
func (o *Ontology) ObjectPropertyCount() int { return len(o.ObjectProperties()) }

// DataPropertyCount returns the number of declared data properties.
func (o *Ontology) DataPropertyCount() int { return len(o.DataProperties()) }

// AnnotationPropertyCount returns the number of declared annotation
// properties.
func (o *Ontology) AnnotationPropertyCount() int { return len(o.AnnotationProperties()) }

// IndividualCount returns the number of declared named individuals.
func (o *Ontology) IndividualCount() int { return len(o.Individuals()) }

// DatatypeCount returns the number of declared datatypes.
func (o *Ontology) DatatypeCount() int { return len(o.Datatypes()) }

// AxiomCount returns the total number of axioms in the ontology.
func (o *Ontology) AxiomCount() int { return len(o.axioms) }

// EntityCount returns the total number of declared entities across all six
// kinds.
func (o *Ontology) EntityCount() int {
	return o.ClassCount() + o.ObjectPropertyCount() + o.DataPropertyCount() +
		o.AnnotationPropertyCount() + o.IndividualCount() + o.DatatypeCount()
}
