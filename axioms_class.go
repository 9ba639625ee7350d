package owlgraph

// Declaration states that a named entity of the given kind exists in the
// ontology's vocabulary.
type Declaration struct {
	EntityKind  EntityKind
	IRI         IRI
	Annotations []Annotation
}

func (a Declaration) Type() AxiomType                { return AxiomDeclaration }
func (a Declaration) AxiomAnnotations() []Annotation { return a.Annotations }
func (a Declaration) EqualAxiom(other Axiom) bool {
	o, ok := other.(Declaration)
	return ok && a.EntityKind == o.EntityKind && a.IRI.Equal(o.IRI) &&
		equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a Declaration) FunctionalSyntax() string {
	return "Declaration(" + annotationsFunctionalSyntax(a.Annotations) +
		a.EntityKind.String() + "(<" + a.IRI.FullIRI() + ">))"
}

// SubClassOf states that SubClass is subsumed by SuperClass.
type SubClassOf struct {
	SubClass    ClassExpression
	SuperClass  ClassExpression
	Annotations []Annotation
}

func (a SubClassOf) Type() AxiomType                { return AxiomSubClassOf }
func (a SubClassOf) AxiomAnnotations() []Annotation { return a.Annotations }
func (a SubClassOf) EqualAxiom(other Axiom) bool {
	o, ok := other.(SubClassOf)
	return ok && expressionsEqual(a.SubClass, o.SubClass) && expressionsEqual(a.SuperClass, o.SuperClass) &&
		equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a SubClassOf) FunctionalSyntax() string {
	return "SubClassOf(" + annotationsFunctionalSyntax(a.Annotations) +
		a.SubClass.FunctionalSyntax() + " " + a.SuperClass.FunctionalSyntax() + ")"
}

// EquivalentClasses states that all given class expressions denote the
// same set of individuals.
type EquivalentClasses struct {
	ClassExpressions []ClassExpression
	Annotations      []Annotation
}

func (a EquivalentClasses) Type() AxiomType                { return AxiomEquivalentClasses }
func (a EquivalentClasses) AxiomAnnotations() []Annotation { return a.Annotations }
func (a EquivalentClasses) EqualAxiom(other Axiom) bool {
	o, ok := other.(EquivalentClasses)
	return ok && equalExpressionSlices(a.ClassExpressions, o.ClassExpressions) &&
		equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a EquivalentClasses) FunctionalSyntax() string {
	return "EquivalentClasses(" + annotationsFunctionalSyntax(a.Annotations) +
		joinExpressions(a.ClassExpressions) + ")"
}

// DisjointClasses states that the given class expressions are pairwise
// disjoint.
type DisjointClasses struct {
	ClassExpressions []ClassExpression
	Annotations      []Annotation
}

func (a DisjointClasses) Type() AxiomType                { return AxiomDisjointClasses }
func (a DisjointClasses) AxiomAnnotations() []Annotation { return a.Annotations }
func (a DisjointClasses) EqualAxiom(other Axiom) bool {
	o, ok := other.(DisjointClasses)
	return ok && equalExpressionSlices(a.ClassExpressions, o.ClassExpressions) &&
		equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a DisjointClasses) FunctionalSyntax() string {
	return "DisjointClasses(" + annotationsFunctionalSyntax(a.Annotations) +
		joinExpressions(a.ClassExpressions) + ")"
}

// DisjointUnion states that Class is the disjoint union of the given
// class expressions.
type DisjointUnion struct {
	Class            Class
	ClassExpressions []ClassExpression
	Annotations      []Annotation
}

func (a DisjointUnion) Type() AxiomType                { return AxiomDisjointUnion }
func (a DisjointUnion) AxiomAnnotations() []Annotation { return a.Annotations }
func (a DisjointUnion) EqualAxiom(other Axiom) bool {
	o, ok := other.(DisjointUnion)
	return ok && a.Class.IRI.Equal(o.Class.IRI) &&
		equalExpressionSlices(a.ClassExpressions, o.ClassExpressions) &&
		equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a DisjointUnion) FunctionalSyntax() string {
	return "DisjointUnion(" + annotationsFunctionalSyntax(a.Annotations) +
		"<" + a.Class.IRI.FullIRI() + "> " + joinExpressions(a.ClassExpressions) + ")"
}
