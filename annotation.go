package owlgraph

// AnnotationValue is the value position of an Annotation: one of IRI,
// Literal, or AnonymousIndividual.
type AnnotationValue interface {
	isAnnotationValue()
}

// IRIValue wraps an IRI as an annotation value.
type IRIValue struct{ IRI IRI }

// LiteralValue wraps a Literal as an annotation value.
type LiteralValue struct{ Literal Literal }

// AnonymousIndividualValue wraps an AnonymousIndividual as an annotation
// value.
type AnonymousIndividualValue struct{ Individual AnonymousIndividual }

func (IRIValue) isAnnotationValue()                 {}
func (LiteralValue) isAnnotationValue()              {}
func (AnonymousIndividualValue) isAnnotationValue() {}

func equalAnnotationValues(a, b AnnotationValue) bool {
	switch av := a.(type) {
	case IRIValue:
		bv, ok := b.(IRIValue)
		return ok && av.IRI.Equal(bv.IRI)
	case LiteralValue:
		bv, ok := b.(LiteralValue)
		return ok && av.Literal.Equal(bv.Literal)
	case AnonymousIndividualValue:
		bv, ok := b.(AnonymousIndividualValue)
		return ok && av.Individual.NodeID == bv.Individual.NodeID
	default:
		return false
	}
}

func annotationValueString(v AnnotationValue) string {
	switch vv := v.(type) {
	case IRIValue:
		return "<" + vv.IRI.FullIRI() + ">"
	case LiteralValue:
		return vv.Literal.String()
	case AnonymousIndividualValue:
		return "_:" + vv.Individual.NodeID
	default:
		return ""
	}
}

// Annotation is a recursive (property, value, nested-annotations) record
// attached to axioms, entities, or other annotations.
type Annotation struct {
	Property AnnotationProperty
	Value    AnnotationValue
	Nested   []Annotation
}

// NewAnnotation builds an annotation with no nested annotations.
func NewAnnotation(property AnnotationProperty, value AnnotationValue) Annotation {
	return Annotation{Property: property, Value: value}
}

// NewNestedAnnotation builds an annotation carrying its own annotations.
func NewNestedAnnotation(property AnnotationProperty, value AnnotationValue, nested ...Annotation) Annotation {
	return Annotation{Property: property, Value: value, Nested: nested}
}

// HasAnnotations reports whether this annotation carries nested annotations.
func (a Annotation) HasAnnotations() bool { return len(a.Nested) > 0 }

// ValueAsString renders the annotation value as a display string.
func (a Annotation) ValueAsString() string { return annotationValueString(a.Value) }

// Equal reports structural equality, including nested annotations.
func (a Annotation) Equal(other Annotation) bool {
	if !a.Property.IRI.Equal(other.Property.IRI) {
		return false
	}
	if !equalAnnotationValues(a.Value, other.Value) {
		return false
	}
	if len(a.Nested) != len(other.Nested) {
		return false
	}
	for i := range a.Nested {
		if !a.Nested[i].Equal(other.Nested[i]) {
			return false
		}
	}
	return true
}

// FunctionalSyntax renders the annotation in OWL 2 Functional Syntax. Per
// the writer contract, nested annotations are emitted BEFORE the
// property-value pair.
func (a Annotation) FunctionalSyntax() string {
	s := "Annotation("
	for _, n := range a.Nested {
		s += n.FunctionalSyntax() + " "
	}
	s += "<" + a.Property.IRI.FullIRI() + "> " + a.ValueAsString() + ")"
	return s
}

func annotationsFunctionalSyntax(anns []Annotation) string {
	s := ""
	for _, a := range anns {
		s += a.FunctionalSyntax() + " "
	}
	return s
}
