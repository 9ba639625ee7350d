package owlgraph_test

import (
	"github.com/lithammer/shortuuid"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlgraph"
)

var _ = Describe("Ontology", func() {
	var baseURI string
	var ont *Ontology

	BeforeEach(func() {
		baseURI = "http://example.org/" + shortuuid.New() + "#"
		ont = NewOntologyWithIRI(NewIRI(baseURI))
	})

	Describe("NewOntology", func() {
		It("seeds the standard owl/rdf/rdfs/xsd prefixes", func() {
			ns, ok := ont.NamespaceForPrefix("owl")
			Expect(ok).To(BeTrue())
			Expect(ns).To(Equal("http://www.w3.org/2002/07/owl#"))

			ns, ok = ont.NamespaceForPrefix("xsd")
			Expect(ok).To(BeTrue())
			Expect(ns).To(Equal("http://www.w3.org/2001/XMLSchema#"))
		})

		It("has no axioms and no declared entities", func() {
			Expect(ont.AxiomCount()).To(Equal(0))
			Expect(ont.EntityCount()).To(Equal(0))
		})
	})

	Describe("RegisterPrefix", func() {
		It("binds a prefix bidirectionally", func() {
			ont.RegisterPrefix("ex", baseURI)
			ns, ok := ont.NamespaceForPrefix("ex")
			Expect(ok).To(BeTrue())
			Expect(ns).To(Equal(baseURI))

			p, ok := ont.PrefixForNamespace(baseURI)
			Expect(ok).To(BeTrue())
			Expect(p).To(Equal("ex"))
		})

		It("overwrites any prior mapping for either side", func() {
			ont.RegisterPrefix("ex", baseURI)
			otherURI := "http://example.org/" + shortuuid.New() + "#"
			ont.RegisterPrefix("ex", otherURI)

			_, stillBound := ont.PrefixForNamespace(baseURI)
			Expect(stillBound).To(BeFalse())

			ns, ok := ont.NamespaceForPrefix("ex")
			Expect(ok).To(BeTrue())
			Expect(ns).To(Equal(otherURI))
		})
	})

	Describe("AddAxiom / ContainsAxiom / RemoveAxiom", func() {
		var class Class

		BeforeEach(func() {
			class = Class{IRI: NewIRI(baseURI + "Person")}
		})

		It("adds an axiom and makes it queryable", func() {
			decl := Declaration{EntityKind: EntityClass, IRI: class.IRI}
			Expect(ont.AddAxiom(decl)).To(BeTrue())
			Expect(ont.AxiomCount()).To(Equal(1))
			Expect(ont.ContainsAxiom(decl)).To(BeTrue())
		})

		It("rejects a nil axiom", func() {
			Expect(ont.AddAxiom(nil)).To(BeFalse())
			Expect(ont.AxiomCount()).To(Equal(0))
		})

		It("permits duplicate axioms", func() {
			decl := Declaration{EntityKind: EntityClass, IRI: class.IRI}
			ont.AddAxiom(decl)
			ont.AddAxiom(decl)
			Expect(ont.AxiomCount()).To(Equal(2))
		})

		When("removing an axiom", func() {
			It("removes only the first structurally-equal occurrence", func() {
				decl := Declaration{EntityKind: EntityClass, IRI: class.IRI}
				ont.AddAxiom(decl)
				ont.AddAxiom(decl)
				Expect(ont.RemoveAxiom(decl)).To(BeTrue())
				Expect(ont.AxiomCount()).To(Equal(1))
				Expect(ont.ContainsAxiom(decl)).To(BeTrue())
			})

			It("reports false when no matching axiom exists", func() {
				decl := Declaration{EntityKind: EntityClass, IRI: class.IRI}
				Expect(ont.RemoveAxiom(decl)).To(BeFalse())
			})
		})
	})

	Describe("derived entity sets", func() {
		var personClass, agentClass Class

		BeforeEach(func() {
			personClass = Class{IRI: NewIRI(baseURI + "Person")}
			agentClass = Class{IRI: NewIRI(baseURI + "Agent")}
			ont.AddAxiom(Declaration{EntityKind: EntityClass, IRI: personClass.IRI})
		})

		It("derives classes from Declaration axioms only", func() {
			Expect(ont.ContainsClass(personClass)).To(BeTrue())
			Expect(ont.ClassCount()).To(Equal(1))
		})

		It("does not include an entity referenced only inside an axiom body", func() {
			ont.AddAxiom(SubClassOf{
				SubClass:   NamedClass{Class: personClass},
				SuperClass: NamedClass{Class: agentClass},
			})
			Expect(ont.ContainsClass(agentClass)).To(BeFalse())
		})
	})

	Describe("SubClassAxiomsForSubClass / ForSuperClass", func() {
		var person, agent, mammal Class

		BeforeEach(func() {
			person = Class{IRI: NewIRI(baseURI + "Person")}
			agent = Class{IRI: NewIRI(baseURI + "Agent")}
			mammal = Class{IRI: NewIRI(baseURI + "Mammal")}
			ont.AddAxiom(SubClassOf{SubClass: NamedClass{Class: person}, SuperClass: NamedClass{Class: agent}})
			ont.AddAxiom(SubClassOf{SubClass: NamedClass{Class: person}, SuperClass: NamedClass{Class: mammal}})
		})

		It("finds all axioms naming the subclass", func() {
			axs := ont.SubClassAxiomsForSubClass(person)
			Expect(axs).To(HaveLen(2))
		})

		It("finds axioms naming the superclass", func() {
			axs := ont.SubClassAxiomsForSuperClass(agent)
			Expect(axs).To(HaveLen(1))
		})
	})

	Describe("SubObjectPropertyAxioms", func() {
		var hasParent, hasAncestor ObjectProperty

		BeforeEach(func() {
			hasParent = ObjectProperty{IRI: NewIRI(baseURI + "hasParent")}
			hasAncestor = ObjectProperty{IRI: NewIRI(baseURI + "hasAncestor")}
			ont.AddAxiom(SubObjectPropertyOf{
				SubProperty:   Named(hasParent),
				SuperProperty: Named(hasAncestor),
			})
		})

		It("filters by the given property rather than returning every axiom", func() {
			unrelated := ObjectProperty{IRI: NewIRI(baseURI + "unrelated")}
			Expect(ont.SubObjectPropertyAxioms(Named(unrelated))).To(BeEmpty())
			Expect(ont.SubObjectPropertyAxioms(Named(hasParent))).To(HaveLen(1))
			Expect(ont.SubObjectPropertyAxioms(Named(hasAncestor))).To(HaveLen(1))
		})
	})

	Describe("ToFunctionalSyntax", func() {
		It("renders the ontology header, prefixes, and axioms", func() {
			person := Class{IRI: NewIRI(baseURI + "Person")}
			ont.AddAxiom(Declaration{EntityKind: EntityClass, IRI: person.IRI})

			out := ont.ToFunctionalSyntax()
			Expect(out).To(HavePrefix("Ontology(<" + baseURI + ">"))
			Expect(out).To(HaveSuffix(")"))
			Expect(out).To(ContainSubstring("Declaration(Class(<" + baseURI + "Person>))"))
		})
	})

	Describe("Statistics", func() {
		It("counts axioms and declared entities", func() {
			person := Class{IRI: NewIRI(baseURI + "Person")}
			ont.AddAxiom(Declaration{EntityKind: EntityClass, IRI: person.IRI})

			stats := ont.Statistics()
			Expect(stats.AxiomCount).To(Equal(1))
			Expect(stats.ClassCount).To(Equal(1))
			Expect(stats.DeclarationAxiomCount).To(Equal(1))
		})
	})
})
