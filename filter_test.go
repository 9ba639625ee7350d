package owlgraph_test

import (
	"github.com/lithammer/shortuuid"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlgraph"
)

func individualIRIs(result FilterResult) []string {
	return result.SurvivingIndividuals
}

var _ = Describe("Filter", func() {
	var baseURI string
	var ont *Ontology
	var a, b, c, d NamedIndividual
	var p ObjectProperty

	BeforeEach(func() {
		baseURI = "http://example.org/" + shortuuid.New() + "#"
		ont = NewOntologyWithIRI(NewIRI(baseURI))

		a = NamedIndividual{IRI: NewIRI(baseURI + "a")}
		b = NamedIndividual{IRI: NewIRI(baseURI + "b")}
		c = NamedIndividual{IRI: NewIRI(baseURI + "c")}
		d = NamedIndividual{IRI: NewIRI(baseURI + "d")}
		p = ObjectProperty{IRI: NewIRI(baseURI + "p")}

		ont.AddAxiom(ObjectPropertyAssertion{Property: Named(p), Source: a, Target: b})
		ont.AddAxiom(ObjectPropertyAssertion{Property: Named(p), Source: b, Target: c})
		ont.AddAxiom(ObjectPropertyAssertion{Property: Named(p), Source: c, Target: d})
	})

	Describe("ExtractNeighborhood", func() {
		It("reaches exactly {a,b,c} at depth 2", func() {
			result := ont.ExtractNeighborhood([]NamedIndividual{a}, 2)
			Expect(individualIRIs(result)).To(ConsistOf(a.IRI.FullIRI(), b.IRI.FullIRI(), c.IRI.FullIRI()))
		})

		It("reaches the whole chain at depth 10", func() {
			result := ont.ExtractNeighborhood([]NamedIndividual{a}, 10)
			Expect(individualIRIs(result)).To(ConsistOf(
				a.IRI.FullIRI(), b.IRI.FullIRI(), c.IRI.FullIRI(), d.IRI.FullIRI()))
		})

		It("includes only the seeds at depth 0", func() {
			result := ont.ExtractNeighborhood([]NamedIndividual{a}, 0)
			Expect(individualIRIs(result)).To(ConsistOf(a.IRI.FullIRI()))
		})
	})

	Describe("ExtractPath", func() {
		It("keeps exactly the chain's assertions and individuals", func() {
			result := ont.ExtractPath(a, d)
			Expect(result.Filtered.AxiomCount()).To(Equal(3))
			Expect(individualIRIs(result)).To(ConsistOf(
				a.IRI.FullIRI(), b.IRI.FullIRI(), c.IRI.FullIRI(), d.IRI.FullIRI()))
		})

		It("returns zero assertions when the target is unreachable", func() {
			unreachable := NamedIndividual{IRI: NewIRI(baseURI + "x")}
			result := ont.ExtractPath(a, unreachable)
			Expect(result.Filtered.AxiomCount()).To(Equal(0))
		})
	})

	Describe("FilterByClasses", func() {
		var classA, classB Class
		var i1, i2, i3 NamedIndividual

		BeforeEach(func() {
			ont = NewOntologyWithIRI(NewIRI(baseURI))
			classA = Class{IRI: NewIRI(baseURI + "A")}
			classB = Class{IRI: NewIRI(baseURI + "B")}
			i1 = NamedIndividual{IRI: NewIRI(baseURI + "i1")}
			i2 = NamedIndividual{IRI: NewIRI(baseURI + "i2")}
			i3 = NamedIndividual{IRI: NewIRI(baseURI + "i3")}

			ont.AddAxiom(ClassAssertion{ClassExpr: NamedClass{Class: classA}, Individual: i1})
			ont.AddAxiom(ClassAssertion{ClassExpr: NamedClass{Class: classA}, Individual: i2})
			ont.AddAxiom(ClassAssertion{ClassExpr: NamedClass{Class: classB}, Individual: i3})
			ont.AddAxiom(ObjectPropertyAssertion{Property: Named(p), Source: i1, Target: i3})
		})

		It("retains exactly the individuals asserted to be in A, and no class assertion for B", func() {
			result := ont.FilterByClasses(classA)
			Expect(individualIRIs(result)).To(ConsistOf(i1.IRI.FullIRI(), i2.IRI.FullIRI()))

			var classAssertionsForB int
			for _, ax := range result.Filtered.Axioms() {
				if ca, ok := ax.(ClassAssertion); ok {
					if named, ok := ca.ClassExpr.(NamedClass); ok && named.Class.IRI.Equal(classB.IRI) {
						classAssertionsForB++
					}
				}
			}
			Expect(classAssertionsForB).To(Equal(0))
		})
	})

	Describe("ApplyFilter with IncludeDeclarations (scenario 5)", func() {
		It("synthesizes a Declaration for an entity that was never separately declared", func() {
			ont = NewOntologyWithIRI(NewIRI(baseURI))
			classA := Class{IRI: NewIRI(baseURI + "A")}
			i1 := NamedIndividual{IRI: NewIRI(baseURI + "i1")}
			ont.AddAxiom(ClassAssertion{ClassExpr: NamedClass{Class: classA}, Individual: i1})

			Expect(ont.ContainsAxiom(Declaration{EntityKind: EntityClass, IRI: classA.IRI})).To(BeFalse())

			result := NewFilter(ont).WithClasses(classA).IncludeDeclarations(true).Execute()

			Expect(result.Filtered.ContainsAxiom(Declaration{EntityKind: EntityClass, IRI: classA.IRI})).To(BeTrue())
			Expect(result.Filtered.ContainsAxiom(Declaration{EntityKind: EntityNamedIndividual, IRI: i1.IRI})).To(BeTrue())
		})

		It("reuses the surviving source Declaration instead of duplicating it", func() {
			ont = NewOntologyWithIRI(NewIRI(baseURI))
			classA := Class{IRI: NewIRI(baseURI + "A")}
			i1 := NamedIndividual{IRI: NewIRI(baseURI + "i1")}
			ont.AddAxiom(Declaration{EntityKind: EntityClass, IRI: classA.IRI})
			ont.AddAxiom(ClassAssertion{ClassExpr: NamedClass{Class: classA}, Individual: i1})

			result := NewFilter(ont).WithClasses(classA).IncludeDeclarations(true).Execute()

			declCount := 0
			for _, ax := range result.Filtered.Axioms() {
				if d, ok := ax.(Declaration); ok && d.IRI.Equal(classA.IRI) {
					declCount++
				}
			}
			Expect(declCount).To(Equal(1))
		})
	})

	Describe("RegisterPrefix bijection (scenario 6)", func() {
		It("rebinds a prefix so the old namespace no longer resolves", func() {
			ont.RegisterPrefix("ex", "http://example.org/u#")
			ont.RegisterPrefix("ex", "http://other.example#")

			ns, ok := ont.NamespaceForPrefix("ex")
			Expect(ok).To(BeTrue())
			Expect(ns).To(Equal("http://other.example#"))

			_, ok = ont.PrefixForNamespace("http://example.org/u#")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("RandomSample", func() {
		It("is deterministic for a given seed", func() {
			r1 := ont.RandomSample(2, 42)
			r2 := ont.RandomSample(2, 42)
			Expect(r1.SurvivingIndividuals).To(Equal(r2.SurvivingIndividuals))
		})
	})
})
