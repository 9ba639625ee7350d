package fsyntax

import (
	"strings"

	"github.com/kahefi/owlgraph"
)

// Parse reads an OWL 2 Functional Syntax document and builds the
// corresponding Ontology. The parser resolves every abbreviated IRI
// against the prefix map accumulated so far (PrefixDecls, then the
// standard owl/rdf/rdfs/xsd bindings); an unknown prefix is a parse
// error. It never silently drops input — every token is consumed or a
// *owlgraph.Error reporting a line/column is returned.
func Parse(input string) (*owlgraph.Ontology, error) {
	lx := newLexer(input)
	tokens, err := lx.tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, prefixes: map[string]string{
		"owl":  "http://www.w3.org/2002/07/owl#",
		"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
		"xsd":  "http://www.w3.org/2001/XMLSchema#",
	}}
	return p.parseDocument()
}

type parser struct {
	tokens   []token
	pos      int
	prefixes map[string]string
}

func (p *parser) peek() token  { return p.tokens[p.pos] }
func (p *parser) at(kind tokenKind) bool { return p.peek().kind == kind }
func (p *parser) atIdent(name string) bool {
	t := p.peek()
	return t.kind == tokIdent && t.text == name
}

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return t, newParseError("expected "+what+", got \""+t.text+"\"", t.line, t.column)
	}
	return p.advance(), nil
}

func (p *parser) expectIdent(name string) error {
	t := p.peek()
	if t.kind != tokIdent || t.text != name {
		return newParseError("expected \""+name+"\", got \""+t.text+"\"", t.line, t.column)
	}
	p.advance()
	return nil
}

func (p *parser) parseDocument() (*owlgraph.Ontology, error) {
	for p.atIdent("Prefix") {
		if err := p.parsePrefixDecl(); err != nil {
			return nil, err
		}
	}
	if !p.atIdent("Ontology") {
		t := p.peek()
		return nil, newParseError("expected \"Ontology\", got \""+t.text+"\"", t.line, t.column)
	}
	ont, err := p.parseOntology()
	if err != nil {
		return nil, err
	}
	if !p.at(tokEOF) {
		t := p.peek()
		return nil, newParseError("unexpected \""+t.text+"\" after the ontology", t.line, t.column)
	}
	return ont, nil
}

func (p *parser) parsePrefixDecl() error {
	p.advance() // Prefix
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return err
	}
	nameTok, err := p.expect(tokIdent, "prefix name")
	if err != nil {
		return err
	}
	if _, err := p.expect(tokAssign, "':='"); err != nil {
		return err
	}
	iriTok, err := p.expect(tokIRI, "IRI")
	if err != nil {
		return err
	}
	p.prefixes[nameTok.text] = iriTok.text
	_, err = p.expect(tokRParen, "')'")
	return err
}

func (p *parser) parseOntology() (*owlgraph.Ontology, error) {
	p.advance() // Ontology
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}

	ont := owlgraph.NewOntology()
	for name, ns := range p.prefixes {
		ont.RegisterPrefix(name, ns)
	}

	if p.at(tokIRI) {
		iriTok := p.advance()
		ont.SetIRI(owlgraph.NewIRI(iriTok.text))
		if p.at(tokIRI) {
			verTok := p.advance()
			ont.SetVersionIRI(owlgraph.NewIRI(verTok.text))
		}
	}

	for !p.at(tokRParen) {
		switch {
		case p.atIdent("Prefix"):
			start := p.pos
			if err := p.parsePrefixDecl(); err != nil {
				return nil, err
			}
			name := p.tokens[start+2].text
			ont.RegisterPrefix(name, p.prefixes[name])
		case p.atIdent("Import"):
			iri, err := p.parseImport()
			if err != nil {
				return nil, err
			}
			ont.AddImport(iri)
		case p.atIdent("Annotation"):
			ann, err := p.parseAnnotation()
			if err != nil {
				return nil, err
			}
			ont.AddAnnotation(ann)
		default:
			axiom, err := p.parseAxiom()
			if err != nil {
				return nil, err
			}
			ont.AddAxiom(axiom)
		}
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return ont, nil
}

func (p *parser) parseImport() (owlgraph.IRI, error) {
	p.advance() // Import
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return owlgraph.IRI{}, err
	}
	iri, err := p.parseIRI()
	if err != nil {
		return owlgraph.IRI{}, err
	}
	_, err = p.expect(tokRParen, "')'")
	return iri, err
}

// parseIRI consumes either a full <...> IRI token or an abbreviated
// prefix:localName identifier, resolving the latter against the
// accumulated prefix map.
func (p *parser) parseIRI() (owlgraph.IRI, error) {
	t := p.peek()
	if t.kind == tokIRI {
		p.advance()
		return owlgraph.NewIRI(t.text), nil
	}
	if t.kind == tokIdent && strings.Contains(t.text, ":") {
		p.advance()
		parts := strings.SplitN(t.text, ":", 2)
		prefix, local := parts[0], parts[1]
		ns, ok := p.prefixes[prefix]
		if !ok {
			return owlgraph.IRI{}, newParseError("unknown prefix \""+prefix+"\"", t.line, t.column)
		}
		return owlgraph.NewAbbreviatedIRI(prefix, local, ns), nil
	}
	return owlgraph.IRI{}, newParseError("expected IRI, got \""+t.text+"\"", t.line, t.column)
}

func (p *parser) parseAnnotation() (owlgraph.Annotation, error) {
	if err := p.expectIdent("Annotation"); err != nil {
		return owlgraph.Annotation{}, err
	}
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return owlgraph.Annotation{}, err
	}
	var nested []owlgraph.Annotation
	for p.atIdent("Annotation") {
		n, err := p.parseAnnotation()
		if err != nil {
			return owlgraph.Annotation{}, err
		}
		nested = append(nested, n)
	}
	propIRI, err := p.parseIRI()
	if err != nil {
		return owlgraph.Annotation{}, err
	}
	value, err := p.parseAnnotationValue()
	if err != nil {
		return owlgraph.Annotation{}, err
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return owlgraph.Annotation{}, err
	}
	return owlgraph.NewNestedAnnotation(owlgraph.AnnotationProperty{IRI: propIRI}, value, nested...), nil
}

// parseAxiomAnnotations consumes zero or more leading Annotation(...)
// forms shared by every axiom kind.
func (p *parser) parseAxiomAnnotations() ([]owlgraph.Annotation, error) {
	var anns []owlgraph.Annotation
	for p.atIdent("Annotation") {
		a, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		anns = append(anns, a)
	}
	return anns, nil
}

func (p *parser) parseAnnotationValue() (owlgraph.AnnotationValue, error) {
	t := p.peek()
	switch {
	case t.kind == tokNodeID:
		p.advance()
		return owlgraph.AnonymousIndividualValue{Individual: owlgraph.AnonymousIndividual{NodeID: t.text}}, nil
	case t.kind == tokString:
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return owlgraph.LiteralValue{Literal: lit}, nil
	default:
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owlgraph.IRIValue{IRI: iri}, nil
	}
}

func (p *parser) parseLiteral() (owlgraph.Literal, error) {
	strTok, err := p.expect(tokString, "quoted literal")
	if err != nil {
		return owlgraph.Literal{}, err
	}
	if p.at(tokCaret) {
		p.advance()
		dtIRI, err := p.parseIRI()
		if err != nil {
			return owlgraph.Literal{}, err
		}
		return owlgraph.NewTypedLiteral(strTok.text, dtIRI), nil
	}
	if p.at(tokLangTag) {
		langTok := p.advance()
		return owlgraph.NewLangLiteral(strTok.text, langTok.text), nil
	}
	return owlgraph.NewPlainLiteral(strTok.text), nil
}

func (p *parser) parseIndividual() (owlgraph.Individual, error) {
	if p.at(tokNodeID) {
		t := p.advance()
		return owlgraph.AnonymousIndividual{NodeID: t.text}, nil
	}
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	return owlgraph.NamedIndividual{IRI: iri}, nil
}

func (p *parser) parseAnnotationSubject() (owlgraph.AnnotationSubject, error) {
	if p.at(tokNodeID) {
		t := p.advance()
		return owlgraph.AnonymousIndividualValue{Individual: owlgraph.AnonymousIndividual{NodeID: t.text}}, nil
	}
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	return owlgraph.IRISubject{IRI: iri}, nil
}

func (p *parser) parseObjectPropertyExpression() (owlgraph.ObjectPropertyExpression, error) {
	if p.atIdent("ObjectInverseOf") {
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return owlgraph.ObjectPropertyExpression{}, err
		}
		iri, err := p.parseIRI()
		if err != nil {
			return owlgraph.ObjectPropertyExpression{}, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return owlgraph.ObjectPropertyExpression{}, err
		}
		return owlgraph.InverseOf(owlgraph.ObjectProperty{IRI: iri}), nil
	}
	iri, err := p.parseIRI()
	if err != nil {
		return owlgraph.ObjectPropertyExpression{}, err
	}
	return owlgraph.Named(owlgraph.ObjectProperty{IRI: iri}), nil
}

func (p *parser) parseClassExpression() (owlgraph.ClassExpression, error) {
	t := p.peek()
	if t.kind != tokIdent {
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owlgraph.NamedClass{Class: owlgraph.Class{IRI: iri}}, nil
	}

	switch t.text {
	case "ObjectIntersectionOf", "ObjectUnionOf":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		var operands []owlgraph.ClassExpression
		for !p.at(tokRParen) {
			e, err := p.parseClassExpression()
			if err != nil {
				return nil, err
			}
			operands = append(operands, e)
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		if len(operands) < 2 {
			return nil, newParseError(t.text+" requires at least two operands", t.line, t.column)
		}
		if t.text == "ObjectIntersectionOf" {
			e, err := owlgraph.NewObjectIntersectionOf(operands...)
			return e, err
		}
		e, err := owlgraph.NewObjectUnionOf(operands...)
		return e, err
	case "ObjectComplementOf":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		operand, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return owlgraph.ObjectComplementOf{Operand: operand}, nil
	case "ObjectSomeValuesFrom", "ObjectAllValuesFrom":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		filler, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		if t.text == "ObjectSomeValuesFrom" {
			return owlgraph.ObjectSomeValuesFrom{Property: prop, Filler: filler}, nil
		}
		return owlgraph.ObjectAllValuesFrom{Property: prop, Filler: filler}, nil
	case "ObjectOneOf":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		var inds []owlgraph.Individual
		for !p.at(tokRParen) {
			ind, err := p.parseIndividual()
			if err != nil {
				return nil, err
			}
			inds = append(inds, ind)
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return owlgraph.ObjectOneOf{Individuals: inds}, nil
	case "ObjectHasValue":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		ind, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return owlgraph.ObjectHasValue{Property: prop, Value: ind}, nil
	case "ObjectHasSelf":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return owlgraph.ObjectHasSelf{Property: prop}, nil
	default:
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owlgraph.NamedClass{Class: owlgraph.Class{IRI: iri}}, nil
	}
}

func (p *parser) parseDataRange() (owlgraph.DataRange, error) {
	t := p.peek()
	if t.kind != tokIdent {
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owlgraph.NamedDatatype{Datatype: owlgraph.Datatype{IRI: iri}}, nil
	}

	switch t.text {
	case "DataIntersectionOf", "DataUnionOf":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		var operands []owlgraph.DataRange
		for !p.at(tokRParen) {
			r, err := p.parseDataRange()
			if err != nil {
				return nil, err
			}
			operands = append(operands, r)
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		if len(operands) < 2 {
			return nil, newParseError(t.text+" requires at least two operands", t.line, t.column)
		}
		if t.text == "DataIntersectionOf" {
			r, err := owlgraph.NewDataIntersectionOf(operands...)
			return r, err
		}
		r, err := owlgraph.NewDataUnionOf(operands...)
		return r, err
	case "DataComplementOf":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		operand, err := p.parseDataRange()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return owlgraph.DataComplementOf{Operand: operand}, nil
	case "DataOneOf":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		var lits []owlgraph.Literal
		for !p.at(tokRParen) {
			l, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			lits = append(lits, l)
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return owlgraph.DataOneOf{Literals: lits}, nil
	case "DatatypeRestriction":
		p.advance()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		dtIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		var restrictions []owlgraph.FacetRestriction
		for !p.at(tokRParen) {
			facetIRI, err := p.parseIRI()
			if err != nil {
				return nil, err
			}
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			restrictions = append(restrictions, owlgraph.FacetRestriction{Facet: facetIRI, Literal: lit})
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return owlgraph.DatatypeRestriction{Datatype: owlgraph.Datatype{IRI: dtIRI}, Restrictions: restrictions}, nil
	default:
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owlgraph.NamedDatatype{Datatype: owlgraph.Datatype{IRI: iri}}, nil
	}
}

var entityKindNames = map[string]owlgraph.EntityKind{
	"Class":              owlgraph.EntityClass,
	"Datatype":           owlgraph.EntityDatatype,
	"ObjectProperty":     owlgraph.EntityObjectProperty,
	"DataProperty":       owlgraph.EntityDataProperty,
	"AnnotationProperty": owlgraph.EntityAnnotationProperty,
	"NamedIndividual":    owlgraph.EntityNamedIndividual,
}

func (p *parser) parseAxiom() (owlgraph.Axiom, error) {
	kwTok, err := p.expect(tokIdent, "axiom keyword")
	if err != nil {
		return nil, err
	}
	keyword := kwTok.text
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	anns, err := p.parseAxiomAnnotations()
	if err != nil {
		return nil, err
	}

	axiom, err := p.parseAxiomBody(keyword, anns)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return axiom, nil
}

func (p *parser) parseAxiomBody(keyword string, anns []owlgraph.Annotation) (owlgraph.Axiom, error) {
	switch keyword {
	case "Declaration":
		kindTok, err := p.expect(tokIdent, "entity kind")
		if err != nil {
			return nil, err
		}
		kind, ok := entityKindNames[kindTok.text]
		if !ok {
			return nil, newParseError("unknown entity kind \""+kindTok.text+"\"", kindTok.line, kindTok.column)
		}
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return owlgraph.Declaration{EntityKind: kind, IRI: iri, Annotations: anns}, nil

	case "SubClassOf":
		sub, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		super, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		return owlgraph.SubClassOf{SubClass: sub, SuperClass: super, Annotations: anns}, nil

	case "EquivalentClasses", "DisjointClasses":
		var exprs []owlgraph.ClassExpression
		for !p.at(tokRParen) {
			e, err := p.parseClassExpression()
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
		}
		if keyword == "EquivalentClasses" {
			return owlgraph.EquivalentClasses{ClassExpressions: exprs, Annotations: anns}, nil
		}
		return owlgraph.DisjointClasses{ClassExpressions: exprs, Annotations: anns}, nil

	case "DisjointUnion":
		classIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		var exprs []owlgraph.ClassExpression
		for !p.at(tokRParen) {
			e, err := p.parseClassExpression()
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
		}
		return owlgraph.DisjointUnion{Class: owlgraph.Class{IRI: classIRI}, ClassExpressions: exprs, Annotations: anns}, nil

	case "SubObjectPropertyOf":
		if p.atIdent("ObjectPropertyChain") {
			p.advance()
			if _, err := p.expect(tokLParen, "'('"); err != nil {
				return nil, err
			}
			var chain []owlgraph.ObjectPropertyExpression
			for !p.at(tokRParen) {
				pe, err := p.parseObjectPropertyExpression()
				if err != nil {
					return nil, err
				}
				chain = append(chain, pe)
			}
			if _, err := p.expect(tokRParen, "')'"); err != nil {
				return nil, err
			}
			super, err := p.parseObjectPropertyExpression()
			if err != nil {
				return nil, err
			}
			return owlgraph.SubObjectPropertyOf{Chain: chain, SuperProperty: super, Annotations: anns}, nil
		}
		sub, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		super, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		return owlgraph.SubObjectPropertyOf{SubProperty: sub, SuperProperty: super, Annotations: anns}, nil

	case "EquivalentObjectProperties", "DisjointObjectProperties":
		var props []owlgraph.ObjectPropertyExpression
		for !p.at(tokRParen) {
			pe, err := p.parseObjectPropertyExpression()
			if err != nil {
				return nil, err
			}
			props = append(props, pe)
		}
		if keyword == "EquivalentObjectProperties" {
			return owlgraph.EquivalentObjectProperties{Properties: props, Annotations: anns}, nil
		}
		return owlgraph.DisjointObjectProperties{Properties: props, Annotations: anns}, nil

	case "InverseObjectProperties":
		first, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		second, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		return owlgraph.InverseObjectProperties{First: first, Second: second, Annotations: anns}, nil

	case "ObjectPropertyDomain", "ObjectPropertyRange":
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		ce, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if keyword == "ObjectPropertyDomain" {
			return owlgraph.ObjectPropertyDomain{Property: prop, Domain: ce, Annotations: anns}, nil
		}
		return owlgraph.ObjectPropertyRange{Property: prop, Range: ce, Annotations: anns}, nil

	case "FunctionalObjectProperty", "InverseFunctionalObjectProperty", "ReflexiveObjectProperty",
		"IrreflexiveObjectProperty", "SymmetricObjectProperty", "AsymmetricObjectProperty", "TransitiveObjectProperty":
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		return buildObjectPropertyCharacteristic(keyword, prop, anns), nil

	case "SubDataPropertyOf":
		subIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		superIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owlgraph.SubDataPropertyOf{
			SubProperty:   owlgraph.DataProperty{IRI: subIRI},
			SuperProperty: owlgraph.DataProperty{IRI: superIRI},
			Annotations:   anns,
		}, nil

	case "EquivalentDataProperties", "DisjointDataProperties":
		var props []owlgraph.DataProperty
		for !p.at(tokRParen) {
			iri, err := p.parseIRI()
			if err != nil {
				return nil, err
			}
			props = append(props, owlgraph.DataProperty{IRI: iri})
		}
		if keyword == "EquivalentDataProperties" {
			return owlgraph.EquivalentDataProperties{Properties: props, Annotations: anns}, nil
		}
		return owlgraph.DisjointDataProperties{Properties: props, Annotations: anns}, nil

	case "DataPropertyDomain":
		propIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		ce, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		return owlgraph.DataPropertyDomain{Property: owlgraph.DataProperty{IRI: propIRI}, Domain: ce, Annotations: anns}, nil

	case "DataPropertyRange":
		propIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		dr, err := p.parseDataRange()
		if err != nil {
			return nil, err
		}
		return owlgraph.DataPropertyRange{Property: owlgraph.DataProperty{IRI: propIRI}, Range: dr, Annotations: anns}, nil

	case "FunctionalDataProperty":
		propIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owlgraph.FunctionalDataProperty{Property: owlgraph.DataProperty{IRI: propIRI}, Annotations: anns}, nil

	case "SameIndividual", "DifferentIndividuals":
		var inds []owlgraph.Individual
		for !p.at(tokRParen) {
			ind, err := p.parseIndividual()
			if err != nil {
				return nil, err
			}
			inds = append(inds, ind)
		}
		if keyword == "SameIndividual" {
			return owlgraph.SameIndividual{Individuals: inds, Annotations: anns}, nil
		}
		return owlgraph.DifferentIndividuals{Individuals: inds, Annotations: anns}, nil

	case "ClassAssertion":
		ce, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		ind, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		return owlgraph.ClassAssertion{ClassExpr: ce, Individual: ind, Annotations: anns}, nil

	case "ObjectPropertyAssertion", "NegativeObjectPropertyAssertion":
		prop, err := p.parseObjectPropertyExpression()
		if err != nil {
			return nil, err
		}
		source, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		target, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		if keyword == "ObjectPropertyAssertion" {
			return owlgraph.ObjectPropertyAssertion{Property: prop, Source: source, Target: target, Annotations: anns}, nil
		}
		return owlgraph.NegativeObjectPropertyAssertion{Property: prop, Source: source, Target: target, Annotations: anns}, nil

	case "DataPropertyAssertion", "NegativeDataPropertyAssertion":
		propIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		source, err := p.parseIndividual()
		if err != nil {
			return nil, err
		}
		value, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		if keyword == "DataPropertyAssertion" {
			return owlgraph.DataPropertyAssertion{Property: owlgraph.DataProperty{IRI: propIRI}, Source: source, Value: value, Annotations: anns}, nil
		}
		return owlgraph.NegativeDataPropertyAssertion{Property: owlgraph.DataProperty{IRI: propIRI}, Source: source, Value: value, Annotations: anns}, nil

	case "AnnotationAssertion":
		propIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		subject, err := p.parseAnnotationSubject()
		if err != nil {
			return nil, err
		}
		value, err := p.parseAnnotationValue()
		if err != nil {
			return nil, err
		}
		return owlgraph.AnnotationAssertion{
			Property: owlgraph.AnnotationProperty{IRI: propIRI}, Subject: subject, Value: value, Annotations: anns,
		}, nil

	case "SubAnnotationPropertyOf":
		subIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		superIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return owlgraph.SubAnnotationPropertyOf{
			SubProperty:   owlgraph.AnnotationProperty{IRI: subIRI},
			SuperProperty: owlgraph.AnnotationProperty{IRI: superIRI},
			Annotations:   anns,
		}, nil

	case "AnnotationPropertyDomain", "AnnotationPropertyRange":
		propIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		rangeIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		if keyword == "AnnotationPropertyDomain" {
			return owlgraph.AnnotationPropertyDomain{Property: owlgraph.AnnotationProperty{IRI: propIRI}, Domain: rangeIRI, Annotations: anns}, nil
		}
		return owlgraph.AnnotationPropertyRange{Property: owlgraph.AnnotationProperty{IRI: propIRI}, Range: rangeIRI, Annotations: anns}, nil

	case "DatatypeDefinition":
		dtIRI, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		dr, err := p.parseDataRange()
		if err != nil {
			return nil, err
		}
		return owlgraph.DatatypeDefinition{Datatype: owlgraph.Datatype{IRI: dtIRI}, Range: dr, Annotations: anns}, nil

	case "HasKey":
		ce, err := p.parseClassExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		var objProps []owlgraph.ObjectPropertyExpression
		for !p.at(tokRParen) {
			pe, err := p.parseObjectPropertyExpression()
			if err != nil {
				return nil, err
			}
			objProps = append(objProps, pe)
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		var dataProps []owlgraph.DataProperty
		for !p.at(tokRParen) {
			iri, err := p.parseIRI()
			if err != nil {
				return nil, err
			}
			dataProps = append(dataProps, owlgraph.DataProperty{IRI: iri})
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return owlgraph.HasKey{ClassExpr: ce, ObjectProperties: objProps, DataProperties: dataProps, Annotations: anns}, nil

	default:
		t := p.peek()
		return nil, newParseError("unknown axiom keyword \""+keyword+"\"", t.line, t.column)
	}
}

func buildObjectPropertyCharacteristic(keyword string, prop owlgraph.ObjectPropertyExpression, anns []owlgraph.Annotation) owlgraph.Axiom {
	switch keyword {
	case "FunctionalObjectProperty":
		return owlgraph.NewFunctionalObjectProperty(prop, anns...)
	case "InverseFunctionalObjectProperty":
		return owlgraph.NewInverseFunctionalObjectProperty(prop, anns...)
	case "ReflexiveObjectProperty":
		return owlgraph.NewReflexiveObjectProperty(prop, anns...)
	case "IrreflexiveObjectProperty":
		return owlgraph.NewIrreflexiveObjectProperty(prop, anns...)
	case "SymmetricObjectProperty":
		return owlgraph.NewSymmetricObjectProperty(prop, anns...)
	case "AsymmetricObjectProperty":
		return owlgraph.NewAsymmetricObjectProperty(prop, anns...)
	default:
		return owlgraph.NewTransitiveObjectProperty(prop, anns...)
	}
}
