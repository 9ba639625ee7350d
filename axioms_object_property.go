package owlgraph

// SubObjectPropertyOf states that SubProperty is subsumed by SuperProperty.
// When Chain is non-empty, SubProperty is ignored and the axiom instead
// states a property-chain inclusion (Chain) SubPropertyOf SuperProperty.
type SubObjectPropertyOf struct {
	SubProperty ObjectPropertyExpression
	Chain       []ObjectPropertyExpression
	SuperProperty ObjectPropertyExpression
	Annotations []Annotation
}

func (a SubObjectPropertyOf) Type() AxiomType                { return AxiomSubObjectPropertyOf }
func (a SubObjectPropertyOf) AxiomAnnotations() []Annotation { return a.Annotations }
func (a SubObjectPropertyOf) IsChain() bool                  { return len(a.Chain) > 0 }
func (a SubObjectPropertyOf) EqualAxiom(other Axiom) bool {
	o, ok := other.(SubObjectPropertyOf)
	if !ok || !a.SuperProperty.Equal(o.SuperProperty) || !equalAnnotationSlices(a.Annotations, o.Annotations) {
		return false
	}
	if a.IsChain() || o.IsChain() {
		if len(a.Chain) != len(o.Chain) {
			return false
		}
		for i := range a.Chain {
			if !a.Chain[i].Equal(o.Chain[i]) {
				return false
			}
		}
		return true
	}
	return a.SubProperty.Equal(o.SubProperty)
}
func (a SubObjectPropertyOf) FunctionalSyntax() string {
	ann := annotationsFunctionalSyntax(a.Annotations)
	if a.IsChain() {
		s := "SubObjectPropertyOf(" + ann + "ObjectPropertyChain("
		for i, p := range a.Chain {
			if i > 0 {
				s += " "
			}
			s += propertyFunctionalSyntax(p)
		}
		return s + ") " + propertyFunctionalSyntax(a.SuperProperty) + ")"
	}
	return "SubObjectPropertyOf(" + ann + propertyFunctionalSyntax(a.SubProperty) + " " +
		propertyFunctionalSyntax(a.SuperProperty) + ")"
}

// EquivalentObjectProperties states that the given properties denote the
// same relation.
type EquivalentObjectProperties struct {
	Properties  []ObjectPropertyExpression
	Annotations []Annotation
}

func (a EquivalentObjectProperties) Type() AxiomType                { return AxiomEquivalentObjectProperties }
func (a EquivalentObjectProperties) AxiomAnnotations() []Annotation { return a.Annotations }
func (a EquivalentObjectProperties) EqualAxiom(other Axiom) bool {
	o, ok := other.(EquivalentObjectProperties)
	return ok && equalPropertySlices(a.Properties, o.Properties) && equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a EquivalentObjectProperties) FunctionalSyntax() string {
	return "EquivalentObjectProperties(" + annotationsFunctionalSyntax(a.Annotations) + joinProperties(a.Properties) + ")"
}

// DisjointObjectProperties states that the given properties are pairwise
// disjoint.
type DisjointObjectProperties struct {
	Properties  []ObjectPropertyExpression
	Annotations []Annotation
}

func (a DisjointObjectProperties) Type() AxiomType                { return AxiomDisjointObjectProperties }
func (a DisjointObjectProperties) AxiomAnnotations() []Annotation { return a.Annotations }
func (a DisjointObjectProperties) EqualAxiom(other Axiom) bool {
	o, ok := other.(DisjointObjectProperties)
	return ok && equalPropertySlices(a.Properties, o.Properties) && equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a DisjointObjectProperties) FunctionalSyntax() string {
	return "DisjointObjectProperties(" + annotationsFunctionalSyntax(a.Annotations) + joinProperties(a.Properties) + ")"
}

// InverseObjectProperties states that First and Second are inverses.
type InverseObjectProperties struct {
	First, Second ObjectPropertyExpression
	Annotations   []Annotation
}

func (a InverseObjectProperties) Type() AxiomType                { return AxiomInverseObjectProperties }
func (a InverseObjectProperties) AxiomAnnotations() []Annotation { return a.Annotations }
func (a InverseObjectProperties) EqualAxiom(other Axiom) bool {
	o, ok := other.(InverseObjectProperties)
	return ok && a.First.Equal(o.First) && a.Second.Equal(o.Second) && equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a InverseObjectProperties) FunctionalSyntax() string {
	return "InverseObjectProperties(" + annotationsFunctionalSyntax(a.Annotations) +
		propertyFunctionalSyntax(a.First) + " " + propertyFunctionalSyntax(a.Second) + ")"
}

// ObjectPropertyDomain states the domain class expression of a property.
type ObjectPropertyDomain struct {
	Property    ObjectPropertyExpression
	Domain      ClassExpression
	Annotations []Annotation
}

func (a ObjectPropertyDomain) Type() AxiomType                { return AxiomObjectPropertyDomain }
func (a ObjectPropertyDomain) AxiomAnnotations() []Annotation { return a.Annotations }
func (a ObjectPropertyDomain) EqualAxiom(other Axiom) bool {
	o, ok := other.(ObjectPropertyDomain)
	return ok && a.Property.Equal(o.Property) && expressionsEqual(a.Domain, o.Domain) && equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a ObjectPropertyDomain) FunctionalSyntax() string {
	return "ObjectPropertyDomain(" + annotationsFunctionalSyntax(a.Annotations) +
		propertyFunctionalSyntax(a.Property) + " " + a.Domain.FunctionalSyntax() + ")"
}

// ObjectPropertyRange states the range class expression of a property.
type ObjectPropertyRange struct {
	Property    ObjectPropertyExpression
	Range       ClassExpression
	Annotations []Annotation
}

func (a ObjectPropertyRange) Type() AxiomType                { return AxiomObjectPropertyRange }
func (a ObjectPropertyRange) AxiomAnnotations() []Annotation { return a.Annotations }
func (a ObjectPropertyRange) EqualAxiom(other Axiom) bool {
	o, ok := other.(ObjectPropertyRange)
	return ok && a.Property.Equal(o.Property) && expressionsEqual(a.Range, o.Range) && equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a ObjectPropertyRange) FunctionalSyntax() string {
	return "ObjectPropertyRange(" + annotationsFunctionalSyntax(a.Annotations) +
		propertyFunctionalSyntax(a.Property) + " " + a.Range.FunctionalSyntax() + ")"
}

// objectPropertyCharacteristic is embedded by the seven characteristic
// axiom kinds below; they share shape (one property, no further payload).
type objectPropertyCharacteristic struct {
	Property    ObjectPropertyExpression
	Annotations []Annotation
}

func (a objectPropertyCharacteristic) AxiomAnnotations() []Annotation { return a.Annotations }
func (a objectPropertyCharacteristic) equalCharacteristic(o objectPropertyCharacteristic) bool {
	return a.Property.Equal(o.Property) && equalAnnotationSlices(a.Annotations, o.Annotations)
}
func (a objectPropertyCharacteristic) functionalSyntax(tag string) string {
	return tag + "(" + annotationsFunctionalSyntax(a.Annotations) + propertyFunctionalSyntax(a.Property) + ")"
}

// NewFunctionalObjectProperty builds a FunctionalObjectProperty axiom.
func NewFunctionalObjectProperty(property ObjectPropertyExpression, annotations ...Annotation) FunctionalObjectProperty {
	return FunctionalObjectProperty{objectPropertyCharacteristic{Property: property, Annotations: annotations}}
}

// NewInverseFunctionalObjectProperty builds an InverseFunctionalObjectProperty axiom.
func NewInverseFunctionalObjectProperty(property ObjectPropertyExpression, annotations ...Annotation) InverseFunctionalObjectProperty {
	return InverseFunctionalObjectProperty{objectPropertyCharacteristic{Property: property, Annotations: annotations}}
}

// NewReflexiveObjectProperty builds a ReflexiveObjectProperty axiom.
func NewReflexiveObjectProperty(property ObjectPropertyExpression, annotations ...Annotation) ReflexiveObjectProperty {
	return ReflexiveObjectProperty{objectPropertyCharacteristic{Property: property, Annotations: annotations}}
}

// NewIrreflexiveObjectProperty builds an IrreflexiveObjectProperty axiom.
func NewIrreflexiveObjectProperty(property ObjectPropertyExpression, annotations ...Annotation) IrreflexiveObjectProperty {
	return IrreflexiveObjectProperty{objectPropertyCharacteristic{Property: property, Annotations: annotations}}
}

// NewSymmetricObjectProperty builds a SymmetricObjectProperty axiom.
func NewSymmetricObjectProperty(property ObjectPropertyExpression, annotations ...Annotation) SymmetricObjectProperty {
	return SymmetricObjectProperty{objectPropertyCharacteristic{Property: property, Annotations: annotations}}
}

// NewAsymmetricObjectProperty builds an AsymmetricObjectProperty axiom.
func NewAsymmetricObjectProperty(property ObjectPropertyExpression, annotations ...Annotation) AsymmetricObjectProperty {
	return AsymmetricObjectProperty{objectPropertyCharacteristic{Property: property, Annotations: annotations}}
}

// NewTransitiveObjectProperty builds a TransitiveObjectProperty axiom.
func NewTransitiveObjectProperty(property ObjectPropertyExpression, annotations ...Annotation) TransitiveObjectProperty {
	return TransitiveObjectProperty{objectPropertyCharacteristic{Property: property, Annotations: annotations}}
}

type FunctionalObjectProperty struct{ objectPropertyCharacteristic }

func (a FunctionalObjectProperty) Type() AxiomType { return AxiomFunctionalObjectProperty }
func (a FunctionalObjectProperty) EqualAxiom(other Axiom) bool {
	o, ok := other.(FunctionalObjectProperty)
	return ok && a.equalCharacteristic(o.objectPropertyCharacteristic)
}
func (a FunctionalObjectProperty) FunctionalSyntax() string {
	return a.functionalSyntax("FunctionalObjectProperty")
}

type InverseFunctionalObjectProperty struct{ objectPropertyCharacteristic }

func (a InverseFunctionalObjectProperty) Type() AxiomType {
	return AxiomInverseFunctionalObjectProperty
}
func (a InverseFunctionalObjectProperty) EqualAxiom(other Axiom) bool {
	o, ok := other.(InverseFunctionalObjectProperty)
	return ok && a.equalCharacteristic(o.objectPropertyCharacteristic)
}
func (a InverseFunctionalObjectProperty) FunctionalSyntax() string {
	return a.functionalSyntax("InverseFunctionalObjectProperty")
}

type ReflexiveObjectProperty struct{ objectPropertyCharacteristic }

func (a ReflexiveObjectProperty) Type() AxiomType { return AxiomReflexiveObjectProperty }
func (a ReflexiveObjectProperty) EqualAxiom(other Axiom) bool {
	o, ok := other.(ReflexiveObjectProperty)
	return ok && a.equalCharacteristic(o.objectPropertyCharacteristic)
}
func (a ReflexiveObjectProperty) FunctionalSyntax() string {
	return a.functionalSyntax("ReflexiveObjectProperty")
}

type IrreflexiveObjectProperty struct{ objectPropertyCharacteristic }

func (a IrreflexiveObjectProperty) Type() AxiomType { return AxiomIrreflexiveObjectProperty }
func (a IrreflexiveObjectProperty) EqualAxiom(other Axiom) bool {
	o, ok := other.(IrreflexiveObjectProperty)
	return ok && a.equalCharacteristic(o.objectPropertyCharacteristic)
}
func (a IrreflexiveObjectProperty) FunctionalSyntax() string {
	return a.functionalSyntax("IrreflexiveObjectProperty")
}

type SymmetricObjectProperty struct{ objectPropertyCharacteristic }

func (a SymmetricObjectProperty) Type() AxiomType { return AxiomSymmetricObjectProperty }
func (a SymmetricObjectProperty) EqualAxiom(other Axiom) bool {
	o, ok := other.(SymmetricObjectProperty)
	return ok && a.equalCharacteristic(o.objectPropertyCharacteristic)
}
func (a SymmetricObjectProperty) FunctionalSyntax() string {
	return a.functionalSyntax("SymmetricObjectProperty")
}

type AsymmetricObjectProperty struct{ objectPropertyCharacteristic }

func (a AsymmetricObjectProperty) Type() AxiomType { return AxiomAsymmetricObjectProperty }
func (a AsymmetricObjectProperty) EqualAxiom(other Axiom) bool {
	o, ok := other.(AsymmetricObjectProperty)
	return ok && a.equalCharacteristic(o.objectPropertyCharacteristic)
}
func (a AsymmetricObjectProperty) FunctionalSyntax() string {
	return a.functionalSyntax("AsymmetricObjectProperty")
}

type TransitiveObjectProperty struct{ objectPropertyCharacteristic }

func (a TransitiveObjectProperty) Type() AxiomType { return AxiomTransitiveObjectProperty }
func (a TransitiveObjectProperty) EqualAxiom(other Axiom) bool {
	o, ok := other.(TransitiveObjectProperty)
	return ok && a.equalCharacteristic(o.objectPropertyCharacteristic)
}
func (a TransitiveObjectProperty) FunctionalSyntax() string {
	return a.functionalSyntax("TransitiveObjectProperty")
}

func joinProperties(props []ObjectPropertyExpression) string {
	s := ""
	for i, p := range props {
		if i > 0 {
			s += " "
		}
		s += propertyFunctionalSyntax(p)
	}
	return s
}

func equalPropertySlices(a, b []ObjectPropertyExpression) bool {
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
