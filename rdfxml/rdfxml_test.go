package rdfxml_test

import (
	"github.com/lithammer/shortuuid"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kahefi/owlgraph"
	. "github.com/kahefi/owlgraph/rdfxml"
)

var _ = Describe("WriteOntology / ReadOntology", func() {
	var baseURI string
	var ont *owlgraph.Ontology
	var person, alice owlgraph.IRI
	var knows owlgraph.IRI

	BeforeEach(func() {
		baseURI = "http://example.org/" + shortuuid.New() + "#"
		ont = owlgraph.NewOntologyWithIRI(owlgraph.NewIRI(baseURI))

		person = owlgraph.NewIRI(baseURI + "Person")
		alice = owlgraph.NewIRI(baseURI + "alice")
		knows = owlgraph.NewIRI(baseURI + "knows")

		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityClass, IRI: person})
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityObjectProperty, IRI: knows})
		ont.AddAxiom(owlgraph.Declaration{EntityKind: owlgraph.EntityNamedIndividual, IRI: alice})
		ont.AddAxiom(owlgraph.ClassAssertion{
			ClassExpr:  owlgraph.NamedClass{Class: owlgraph.Class{IRI: person}},
			Individual: owlgraph.NamedIndividual{IRI: alice},
		})
		ont.AddAxiom(owlgraph.NewSymmetricObjectProperty(
			owlgraph.ObjectPropertyExpression{Property: owlgraph.ObjectProperty{IRI: knows}}))
	})

	Describe("WriteOntology", func() {
		It("renders declarations and assertions as triples", func() {
			store, err := WriteOntology(ont)
			Expect(err).NotTo(HaveOccurred())

			trp, err := store.GetFirstMatch("<"+person.FullIRI()+">", "<"+RDFType+">", "<"+OWLClass+">")
			Expect(err).NotTo(HaveOccurred())
			Expect(trp).NotTo(BeNil())

			trp, err = store.GetFirstMatch("<"+alice.FullIRI()+">", "<"+RDFType+">", "<"+person.FullIRI()+">")
			Expect(err).NotTo(HaveOccurred())
			Expect(trp).NotTo(BeNil())

			trp, err = store.GetFirstMatch("<"+knows.FullIRI()+">", "<"+RDFType+">", "<"+OWLSymmetricProperty+">")
			Expect(err).NotTo(HaveOccurred())
			Expect(trp).NotTo(BeNil())
		})
	})

	Describe("ReadOntology", func() {
		It("round-trips every written axiom back into an ontology", func() {
			store, err := WriteOntology(ont)
			Expect(err).NotTo(HaveOccurred())

			roundTripped, err := ReadOntology(store)
			Expect(err).NotTo(HaveOccurred())

			iri, ok := roundTripped.IRI()
			Expect(ok).To(BeTrue())
			Expect(iri.FullIRI()).To(Equal(baseURI))

			for _, a := range ont.Axioms() {
				Expect(roundTripped.ContainsAxiom(a)).To(BeTrue())
			}
		})
	})
})
