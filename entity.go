package owlgraph

// EntityKind discriminates the six named OWL 2 entity kinds used by
// Declaration axioms and type-dispatched queries.
type EntityKind int

const (
	EntityClass EntityKind = iota
	EntityDatatype
	EntityObjectProperty
	EntityDataProperty
	EntityAnnotationProperty
	EntityNamedIndividual
)

func (k EntityKind) String() string {
	switch k {
	case EntityClass:
		return "Class"
	case EntityDatatype:
		return "Datatype"
	case EntityObjectProperty:
		return "ObjectProperty"
	case EntityDataProperty:
		return "DataProperty"
	case EntityAnnotationProperty:
		return "AnnotationProperty"
	case EntityNamedIndividual:
		return "NamedIndividual"
	default:
		return "UnknownEntity"
	}
}

// Class is a named entity identifying a set of individuals.
type Class struct{ IRI IRI }

// Datatype is a named entity identifying a set of literal values.
type Datatype struct{ IRI IRI }

// ObjectProperty is a named entity identifying a binary relation between
// individuals.
type ObjectProperty struct{ IRI IRI }

// DataProperty is a named entity identifying a binary relation between an
// individual and a literal.
type DataProperty struct{ IRI IRI }

// AnnotationProperty is a named entity used as the predicate of an
// Annotation.
type AnnotationProperty struct{ IRI IRI }

// NamedIndividual is a named entity identifying a specific individual.
type NamedIndividual struct{ IRI IRI }

// AnonymousIndividual is identified by a node ID string instead of an IRI;
// it is not a named entity.
type AnonymousIndividual struct{ NodeID string }

// Individual is the polymorphic "individual position" used throughout
// axioms: either a NamedIndividual or an AnonymousIndividual.
type Individual interface {
	isIndividual()
}

func (NamedIndividual) isIndividual()     {}
func (AnonymousIndividual) isIndividual() {}

// Kind returns the entity kind discriminator for each named entity type.
func (Class) Kind() EntityKind              { return EntityClass }
func (Datatype) Kind() EntityKind           { return EntityDatatype }
func (ObjectProperty) Kind() EntityKind     { return EntityObjectProperty }
func (DataProperty) Kind() EntityKind       { return EntityDataProperty }
func (AnnotationProperty) Kind() EntityKind { return EntityAnnotationProperty }
func (NamedIndividual) Kind() EntityKind    { return EntityNamedIndividual }

// ObjectPropertyExpression is the object-property position used by class
// expressions and object-property axioms: either a direct reference to an
// ObjectProperty or its inverse.
type ObjectPropertyExpression struct {
	Property ObjectProperty
	Inverse  bool
}

// Named builds a direct (non-inverse) property expression.
func Named(p ObjectProperty) ObjectPropertyExpression {
	return ObjectPropertyExpression{Property: p}
}

// InverseOf builds the inverse of the given property.
func InverseOf(p ObjectProperty) ObjectPropertyExpression {
	return ObjectPropertyExpression{Property: p, Inverse: true}
}

// Equal compares two property expressions by property IRI and inverse flag.
func (e ObjectPropertyExpression) Equal(other ObjectPropertyExpression) bool {
	return e.Inverse == other.Inverse && e.Property.IRI.Equal(other.Property.IRI)
}
