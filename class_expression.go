package owlgraph

import "fmt"

// ClassExpression is the recursive sum type describing a set of
// individuals. Every variant implements FunctionalSyntax, ExpressionType
// and EqualExpression.
type ClassExpression interface {
	// FunctionalSyntax renders the OWL 2 Functional Syntax form.
	FunctionalSyntax() string
	// ExpressionType names the concrete variant, used by type-dispatched
	// serializers and pattern matchers instead of a dynamic-cast chain.
	ExpressionType() string
	// EqualExpression reports deep structural equality.
	EqualExpression(other ClassExpression) bool
}

// NamedClass wraps a single named Class as a class expression.
type NamedClass struct{ Class Class }

func (e NamedClass) ExpressionType() string { return "NamedClass" }
func (e NamedClass) FunctionalSyntax() string {
	return "<" + e.Class.IRI.FullIRI() + ">"
}
func (e NamedClass) EqualExpression(other ClassExpression) bool {
	o, ok := other.(NamedClass)
	return ok && e.Class.IRI.Equal(o.Class.IRI)
}

// ObjectIntersectionOf is the conjunction of 2+ class expressions.
type ObjectIntersectionOf struct{ Operands []ClassExpression }

// NewObjectIntersectionOf builds an intersection, requiring at least two
// operands per the arity invariant.
func NewObjectIntersectionOf(operands ...ClassExpression) (ObjectIntersectionOf, error) {
	if len(operands) < 2 {
		return ObjectIntersectionOf{}, newInvalidArgument("ObjectIntersectionOf requires at least 2 operands")
	}
	return ObjectIntersectionOf{Operands: operands}, nil
}

func (e ObjectIntersectionOf) ExpressionType() string { return "ObjectIntersectionOf" }
func (e ObjectIntersectionOf) FunctionalSyntax() string {
	return "ObjectIntersectionOf(" + joinExpressions(e.Operands) + ")"
}
func (e ObjectIntersectionOf) EqualExpression(other ClassExpression) bool {
	o, ok := other.(ObjectIntersectionOf)
	return ok && equalExpressionSlices(e.Operands, o.Operands)
}

// ObjectUnionOf is the disjunction of 2+ class expressions.
type ObjectUnionOf struct{ Operands []ClassExpression }

// NewObjectUnionOf builds a union, requiring at least two operands.
func NewObjectUnionOf(operands ...ClassExpression) (ObjectUnionOf, error) {
	if len(operands) < 2 {
		return ObjectUnionOf{}, newInvalidArgument("ObjectUnionOf requires at least 2 operands")
	}
	return ObjectUnionOf{Operands: operands}, nil
}

func (e ObjectUnionOf) ExpressionType() string { return "ObjectUnionOf" }
func (e ObjectUnionOf) FunctionalSyntax() string {
	return "ObjectUnionOf(" + joinExpressions(e.Operands) + ")"
}
func (e ObjectUnionOf) EqualExpression(other ClassExpression) bool {
	o, ok := other.(ObjectUnionOf)
	return ok && equalExpressionSlices(e.Operands, o.Operands)
}

// ObjectSomeValuesFrom is the existential restriction along a property.
type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectSomeValuesFrom) ExpressionType() string { return "ObjectSomeValuesFrom" }
func (e ObjectSomeValuesFrom) FunctionalSyntax() string {
	return "ObjectSomeValuesFrom(" + propertyFunctionalSyntax(e.Property) + " " + e.Filler.FunctionalSyntax() + ")"
}
func (e ObjectSomeValuesFrom) EqualExpression(other ClassExpression) bool {
	o, ok := other.(ObjectSomeValuesFrom)
	return ok && e.Property.Equal(o.Property) && expressionsEqual(e.Filler, o.Filler)
}

// ObjectAllValuesFrom is the universal restriction along a property.
type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectAllValuesFrom) ExpressionType() string { return "ObjectAllValuesFrom" }
func (e ObjectAllValuesFrom) FunctionalSyntax() string {
	return "ObjectAllValuesFrom(" + propertyFunctionalSyntax(e.Property) + " " + e.Filler.FunctionalSyntax() + ")"
}
func (e ObjectAllValuesFrom) EqualExpression(other ClassExpression) bool {
	o, ok := other.(ObjectAllValuesFrom)
	return ok && e.Property.Equal(o.Property) && expressionsEqual(e.Filler, o.Filler)
}

// ObjectComplementOf is the negation of a class expression.
type ObjectComplementOf struct{ Operand ClassExpression }

func (e ObjectComplementOf) ExpressionType() string { return "ObjectComplementOf" }
func (e ObjectComplementOf) FunctionalSyntax() string {
	return "ObjectComplementOf(" + e.Operand.FunctionalSyntax() + ")"
}
func (e ObjectComplementOf) EqualExpression(other ClassExpression) bool {
	o, ok := other.(ObjectComplementOf)
	return ok && expressionsEqual(e.Operand, o.Operand)
}

// ObjectOneOf enumerates the exact set of individuals forming the class.
type ObjectOneOf struct{ Individuals []Individual }

func (e ObjectOneOf) ExpressionType() string { return "ObjectOneOf" }
func (e ObjectOneOf) FunctionalSyntax() string {
	s := "ObjectOneOf("
	for i, ind := range e.Individuals {
		if i > 0 {
			s += " "
		}
		s += individualFunctionalSyntax(ind)
	}
	return s + ")"
}
func (e ObjectOneOf) EqualExpression(other ClassExpression) bool {
	o, ok := other.(ObjectOneOf)
	if !ok || len(e.Individuals) != len(o.Individuals) {
		return false
	}
	for i := range e.Individuals {
		if !individualsEqual(e.Individuals[i], o.Individuals[i]) {
			return false
		}
	}
	return true
}

// ObjectHasValue restricts to individuals related to a specific individual.
type ObjectHasValue struct {
	Property ObjectPropertyExpression
	Value    Individual
}

func (e ObjectHasValue) ExpressionType() string { return "ObjectHasValue" }
func (e ObjectHasValue) FunctionalSyntax() string {
	return "ObjectHasValue(" + propertyFunctionalSyntax(e.Property) + " " + individualFunctionalSyntax(e.Value) + ")"
}
func (e ObjectHasValue) EqualExpression(other ClassExpression) bool {
	o, ok := other.(ObjectHasValue)
	return ok && e.Property.Equal(o.Property) && individualsEqual(e.Value, o.Value)
}

// ObjectHasSelf restricts to individuals related to themselves.
type ObjectHasSelf struct{ Property ObjectPropertyExpression }

func (e ObjectHasSelf) ExpressionType() string { return "ObjectHasSelf" }
func (e ObjectHasSelf) FunctionalSyntax() string {
	return "ObjectHasSelf(" + propertyFunctionalSyntax(e.Property) + ")"
}
func (e ObjectHasSelf) EqualExpression(other ClassExpression) bool {
	o, ok := other.(ObjectHasSelf)
	return ok && e.Property.Equal(o.Property)
}

func propertyFunctionalSyntax(p ObjectPropertyExpression) string {
	if p.Inverse {
		return "ObjectInverseOf(<" + p.Property.IRI.FullIRI() + ">)"
	}
	return "<" + p.Property.IRI.FullIRI() + ">"
}

func individualFunctionalSyntax(ind Individual) string {
	switch v := ind.(type) {
	case NamedIndividual:
		return "<" + v.IRI.FullIRI() + ">"
	case AnonymousIndividual:
		return "_:" + v.NodeID
	default:
		return fmt.Sprintf("%v", ind)
	}
}

func individualsEqual(a, b Individual) bool {
	switch av := a.(type) {
	case NamedIndividual:
		bv, ok := b.(NamedIndividual)
		return ok && av.IRI.Equal(bv.IRI)
	case AnonymousIndividual:
		bv, ok := b.(AnonymousIndividual)
		return ok && av.NodeID == bv.NodeID
	default:
		return false
	}
}

func joinExpressions(exprs []ClassExpression) string {
	s := ""
	for i, e := range exprs {
		if i > 0 {
			s += " "
		}
		s += e.FunctionalSyntax()
	}
	return s
}

func expressionsEqual(a, b ClassExpression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.EqualExpression(b)
}

func equalExpressionSlices(a, b []ClassExpression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !expressionsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
