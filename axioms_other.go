package owlgraph

// DatatypeDefinition states that Datatype is defined to be equivalent to
// the given data range.
type DatatypeDefinition struct {
	Datatype    Datatype
	Range       DataRange
	Annotations []Annotation
}

func (a DatatypeDefinition) Type() AxiomType                { return AxiomDatatypeDefinition }
func (a DatatypeDefinition) AxiomAnnotations() []Annotation { return a.Annotations }
func (a DatatypeDefinition) EqualAxiom(other Axiom) bool {
	o, ok := other.(DatatypeDefinition)
	return ok && a.Datatype.IRI.Equal(o.Datatype.IRI) && dataRangesEqual(a.Range, o.Range) &&
		equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a DatatypeDefinition) FunctionalSyntax() string {
	return "DatatypeDefinition(" + annotationsFunctionalSyntax(a.Annotations) +
		"<" + a.Datatype.IRI.FullIRI() + "> " + a.Range.FunctionalSyntax() + ")"
}

// HasKey states that ClassExpr is keyed by the given object and data
// properties: any two instances of ClassExpr agreeing on every key
// property are the same individual.
type HasKey struct {
	ClassExpr       ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []DataProperty
	Annotations      []Annotation
}

func (a HasKey) Type() AxiomType                { return AxiomHasKey }
func (a HasKey) AxiomAnnotations() []Annotation { return a.Annotations }
func (a HasKey) EqualAxiom(other Axiom) bool {
	o, ok := other.(HasKey)
	return ok && expressionsEqual(a.ClassExpr, o.ClassExpr) &&
		equalPropertySlices(a.ObjectProperties, o.ObjectProperties) &&
		equalDataPropertySlices(a.DataProperties, o.DataProperties) &&
		equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a HasKey) FunctionalSyntax() string {
	s := "HasKey(" + annotationsFunctionalSyntax(a.Annotations) + a.ClassExpr.FunctionalSyntax() + " ("
	s += joinProperties(a.ObjectProperties)
	s += ") ("
	s += joinDataProperties(a.DataProperties)
	return s + "))"
}
