package fsyntax_test

import (
	"strings"

	"github.com/lithammer/shortuuid"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kahefi/owlgraph"
	. "github.com/kahefi/owlgraph/fsyntax"
)

var _ = Describe("Functional Syntax", func() {
	var baseURI string
	var ont *owlgraph.Ontology

	BeforeEach(func() {
		baseURI = "http://example.org/" + shortuuid.New() + "#"
		ont = owlgraph.NewOntologyWithIRI(owlgraph.NewIRI(baseURI))
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityClass, IRI: owlgraph.NewIRI(baseURI + "Person")})
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityNamedIndividual, IRI: owlgraph.NewIRI(baseURI + "alice")})
		ont.AddAxiom(owlgraph.ClassAssertion{
			ClassExpr:  owlgraph.NamedClass{Class: owlgraph.Class{IRI: owlgraph.NewIRI(baseURI + "Person")}},
			Individual: owlgraph.NamedIndividual{IRI: owlgraph.NewIRI(baseURI + "alice")},
		})
	})

	Describe("Serialize", func() {
		It("renders an Ontology(...) header and body lines", func() {
			var b strings.Builder
			Expect(Serialize(&b, ont)).To(Succeed())
			out := b.String()

			Expect(out).To(HavePrefix("Ontology(<" + baseURI + ">"))
			Expect(out).To(ContainSubstring("Declaration(Class(<" + baseURI + "Person>))"))
			Expect(out).To(ContainSubstring("ClassAssertion(<" + baseURI + "Person> <" + baseURI + "alice>)"))
			Expect(strings.TrimRight(out, "\n")).To(HaveSuffix(")"))
		})
	})

	Describe("Parse", func() {
		It("round-trips an ontology through Serialize and Parse", func() {
			var b strings.Builder
			Expect(Serialize(&b, ont)).To(Succeed())

			parsed, err := Parse(b.String())
			Expect(err).NotTo(HaveOccurred())

			iri, ok := parsed.IRI()
			Expect(ok).To(BeTrue())
			Expect(iri.FullIRI()).To(Equal(baseURI))
			Expect(parsed.AxiomCount()).To(Equal(ont.AxiomCount()))

			for _, axiom := range ont.Axioms() {
				Expect(parsed.ContainsAxiom(axiom)).To(BeTrue())
			}
		})

		It("resolves abbreviated IRIs against Prefix declarations", func() {
			doc := `Prefix(ex:=<` + baseURI + `>)
Ontology(<` + baseURI + `>
    Declaration(Class(ex:Person))
)`
			parsed, err := Parse(doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.ContainsClass(owlgraph.Class{IRI: owlgraph.NewIRI(baseURI + "Person")})).To(BeTrue())
		})

		It("reports a parse error with line/column for an unknown prefix", func() {
			doc := `Ontology(<` + baseURI + `>
    Declaration(Class(ex:Person))
)`
			_, err := Parse(doc)
			Expect(err).To(HaveOccurred())

			var owlErr *owlgraph.Error
			Expect(err).To(BeAssignableToTypeOf(owlErr))
			Expect(err.(*owlgraph.Error).Line).To(Equal(2))
		})

		It("reports a parse error for an unterminated IRI", func() {
			doc := `Ontology(<` + baseURI
			_, err := Parse(doc)
			Expect(err).To(HaveOccurred())
		})

		It("round-trips a literal containing quotes, backslashes and newlines", func() {
			tricky := owlgraph.NewPlainLiteral(`He said "hi"` + "\n" + `back\slash` + "\t" + "tabbed")
			ont.AddAxiom(owlgraph.DataPropertyAssertion{
				Property: owlgraph.DataProperty{IRI: owlgraph.NewIRI(baseURI + "note")},
				Source:   owlgraph.NamedIndividual{IRI: owlgraph.NewIRI(baseURI + "alice")},
				Value:    tricky,
			})

			var b strings.Builder
			Expect(Serialize(&b, ont)).To(Succeed())

			parsed, err := Parse(b.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.ContainsAxiom(owlgraph.DataPropertyAssertion{
				Property: owlgraph.DataProperty{IRI: owlgraph.NewIRI(baseURI + "note")},
				Source:   owlgraph.NamedIndividual{IRI: owlgraph.NewIRI(baseURI + "alice")},
				Value:    tricky,
			})).To(BeTrue())
		})
	})
})
