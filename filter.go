package owlgraph

import "sort"

// FilterCriteria accumulates the inputs to ApplyFilter: which individuals
// and classes seed the subgraph, which individuals are excluded outright,
// per-property literal-value constraints, a traversal depth bound, and
// flags controlling which supporting axioms (declarations, class/property
// hierarchy) are carried along with the surviving assertions.
type FilterCriteria struct {
	IncludeIndividuals map[string]bool
	IncludeClasses     map[string]bool
	ExcludeIndividuals map[string]bool

	// PropertyValueFilters maps a data property's full IRI to the set of
	// allowed literal string forms (per Literal.String()).
	PropertyValueFilters map[string]map[string]bool

	// MaxDepth bounds neighborhood expansion from the seed set. A nil
	// value means no expansion: the seed set is used as is.
	MaxDepth *int

	IncludeClassHierarchy    bool
	IncludePropertyHierarchy bool
	IncludeDeclarations      bool

	// AxiomPredicate, when non-nil, further restricts which axioms survive
	// filtering: an axiom is kept only if it passes both the structural
	// filter and this predicate.
	AxiomPredicate func(Axiom) bool
}

// NewFilterCriteria returns an empty, zero-valued criteria builder.
func NewFilterCriteria() *FilterCriteria {
	return &FilterCriteria{
		IncludeIndividuals:   map[string]bool{},
		IncludeClasses:       map[string]bool{},
		ExcludeIndividuals:   map[string]bool{},
		PropertyValueFilters: map[string]map[string]bool{},
	}
}

// WithIndividuals adds individuals to the seed set.
func (c *FilterCriteria) WithIndividuals(inds ...NamedIndividual) *FilterCriteria {
	for _, i := range inds {
		c.IncludeIndividuals[i.IRI.FullIRI()] = true
	}
	return c
}

// WithClasses adds classes whose instances seed the subgraph.
func (c *FilterCriteria) WithClasses(classes ...Class) *FilterCriteria {
	for _, cls := range classes {
		c.IncludeClasses[cls.IRI.FullIRI()] = true
	}
	return c
}

// ExcludeIndividualsSet removes individuals from the eventual seed/result set
// regardless of how they were otherwise included.
func (c *FilterCriteria) ExcludeIndividualsSet(inds ...NamedIndividual) *FilterCriteria {
	for _, i := range inds {
		c.ExcludeIndividuals[i.IRI.FullIRI()] = true
	}
	return c
}

// WithMaxDepth bounds BFS expansion from the seed set.
func (c *FilterCriteria) WithMaxDepth(depth int) *FilterCriteria {
	c.MaxDepth = &depth
	return c
}

// WithPropertyValue restricts the seed set to individuals having the given
// literal value asserted via the given data property.
func (c *FilterCriteria) WithPropertyValue(property DataProperty, value Literal) *FilterCriteria {
	key := property.IRI.FullIRI()
	if c.PropertyValueFilters[key] == nil {
		c.PropertyValueFilters[key] = map[string]bool{}
	}
	c.PropertyValueFilters[key][value.String()] = true
	return c
}

// IncludeClassHierarchyFlag sets whether class-hierarchy axioms are carried
// along with the surviving assertions.
func (c *FilterCriteria) IncludeClassHierarchyFlag(v bool) *FilterCriteria {
	c.IncludeClassHierarchy = v
	return c
}

// IncludePropertyHierarchyFlag sets whether property-hierarchy axioms are
// carried along.
func (c *FilterCriteria) IncludePropertyHierarchyFlag(v bool) *FilterCriteria {
	c.IncludePropertyHierarchy = v
	return c
}

// IncludeDeclarationsFlag sets whether missing declarations are synthesized
// for every entity referenced by a surviving axiom.
func (c *FilterCriteria) IncludeDeclarationsFlag(v bool) *FilterCriteria {
	c.IncludeDeclarations = v
	return c
}

// FilterResult is the outcome of applying a filter: the filtered ontology,
// before/after axiom and individual counts, and the set of individual IRIs
// that survived.
type FilterResult struct {
	Filtered            *Ontology
	AxiomCountBefore     int
	AxiomCountAfter      int
	IndividualCountBefore int
	IndividualCountAfter  int
	SurvivingIndividuals  []string
}

// OntologyFilter is a builder over an Ontology's FilterCriteria; Execute
// runs ApplyFilter against the accumulated criteria.
type OntologyFilter struct {
	ont      *Ontology
	criteria *FilterCriteria
}

// NewFilter starts a filter builder over ont.
func NewFilter(ont *Ontology) *OntologyFilter {
	return &OntologyFilter{ont: ont, criteria: NewFilterCriteria()}
}

func (f *OntologyFilter) WithIndividuals(inds ...NamedIndividual) *OntologyFilter {
	f.criteria.WithIndividuals(inds...)
	return f
}
func (f *OntologyFilter) WithClasses(classes ...Class) *OntologyFilter {
	f.criteria.WithClasses(classes...)
	return f
}
func (f *OntologyFilter) ExcludeIndividuals(inds ...NamedIndividual) *OntologyFilter {
	f.criteria.ExcludeIndividualsSet(inds...)
	return f
}
func (f *OntologyFilter) WithMaxDepth(depth int) *OntologyFilter {
	f.criteria.WithMaxDepth(depth)
	return f
}
func (f *OntologyFilter) IncludeClassHierarchy(v bool) *OntologyFilter {
	f.criteria.IncludeClassHierarchyFlag(v)
	return f
}
func (f *OntologyFilter) IncludePropertyHierarchy(v bool) *OntologyFilter {
	f.criteria.IncludePropertyHierarchyFlag(v)
	return f
}
func (f *OntologyFilter) IncludeDeclarations(v bool) *OntologyFilter {
	f.criteria.IncludeDeclarationsFlag(v)
	return f
}

// Execute runs ApplyFilter against the accumulated criteria.
func (f *OntologyFilter) Execute() FilterResult {
	return f.ont.ApplyFilter(*f.criteria)
}

// individualsReferencedByAxiom reports every named-individual IRI that a
// given axiom references in a subject, object, or member-list position.
func individualsReferencedByAxiom(a Axiom) []string {
	add := func(ind Individual, out *[]string) {
		if named, ok := ind.(NamedIndividual); ok {
			*out = append(*out, named.IRI.FullIRI())
		}
	}
	var out []string
	switch v := a.(type) {
	case ClassAssertion:
		add(v.Individual, &out)
	case ObjectPropertyAssertion:
		add(v.Source, &out)
		add(v.Target, &out)
	case NegativeObjectPropertyAssertion:
		add(v.Source, &out)
		add(v.Target, &out)
	case DataPropertyAssertion:
		add(v.Source, &out)
	case NegativeDataPropertyAssertion:
		add(v.Source, &out)
	case SameIndividual:
		for _, ind := range v.Individuals {
			add(ind, &out)
		}
	case DifferentIndividuals:
		for _, ind := range v.Individuals {
			add(ind, &out)
		}
	}
	return out
}

// axiomReferencesIndividualIn reports whether axiom a references any
// individual whose IRI is in the given set.
func axiomReferencesIndividualIn(a Axiom, set map[string]bool) bool {
	for _, iri := range individualsReferencedByAxiom(a) {
		if set[iri] {
			return true
		}
	}
	return false
}

// FilterByIndividuals includes every axiom referencing an individual in S.
func (o *Ontology) FilterByIndividuals(individuals ...NamedIndividual) FilterResult {
	set := map[string]bool{}
	for _, i := range individuals {
		set[i.IRI.FullIRI()] = true
	}
	return o.filterAxiomsReferencing(set)
}

func (o *Ontology) filterAxiomsReferencing(set map[string]bool) FilterResult {
	result := o.newResultSkeleton()
	for _, a := range o.axioms {
		if axiomReferencesIndividualIn(a, set) {
			result.Filtered.AddAxiom(a)
		}
	}
	o.finishResult(&result)
	restrictSurvivors(&result, set)
	return result
}

// FilterByClasses collects every named individual with a ClassAssertion to
// a class in C, then filters by that individual set.
func (o *Ontology) FilterByClasses(classes ...Class) FilterResult {
	classSet := map[string]bool{}
	for _, c := range classes {
		classSet[c.IRI.FullIRI()] = true
	}
	indSet := map[string]bool{}
	for _, a := range o.axioms {
		ca, ok := a.(ClassAssertion)
		if !ok {
			continue
		}
		named, ok := ca.ClassExpr.(NamedClass)
		if !ok || !classSet[named.Class.IRI.FullIRI()] {
			continue
		}
		if ind, ok := ca.Individual.(NamedIndividual); ok {
			indSet[ind.IRI.FullIRI()] = true
		}
	}
	return o.filterAxiomsReferencing(indSet)
}

// FilterByProperty collects every subject of a DataPropertyAssertion(p, _,
// v) and filters by that individual set. Match is on full literal
// equality (lexical form, datatype, language tag).
func (o *Ontology) FilterByProperty(property DataProperty, value Literal) FilterResult {
	indSet := map[string]bool{}
	for _, a := range o.axioms {
		pa, ok := a.(DataPropertyAssertion)
		if !ok || !pa.Property.IRI.Equal(property.IRI) || !pa.Value.Equal(value) {
			continue
		}
		if ind, ok := pa.Source.(NamedIndividual); ok {
			indSet[ind.IRI.FullIRI()] = true
		}
	}
	return o.filterAxiomsReferencing(indSet)
}

// FilterByObjectProperty collects every subject of an
// ObjectPropertyAssertion(p, _, t) and filters by that individual set.
func (o *Ontology) FilterByObjectProperty(property ObjectPropertyExpression, target NamedIndividual) FilterResult {
	indSet := map[string]bool{}
	for _, a := range o.axioms {
		pa, ok := a.(ObjectPropertyAssertion)
		if !ok || !pa.Property.Equal(property) {
			continue
		}
		targetInd, ok := pa.Target.(NamedIndividual)
		if !ok || !targetInd.IRI.Equal(target.IRI) {
			continue
		}
		if source, ok := pa.Source.(NamedIndividual); ok {
			indSet[source.IRI.FullIRI()] = true
		}
	}
	return o.filterAxiomsReferencing(indSet)
}

// ApplyFilter composes the full criteria pipeline: seed set from
// include-individuals union instances-of-include-classes minus
// exclude-individuals, optionally restricted by property-value filters,
// optionally expanded by max-depth neighborhood BFS, then materialized
// into a filtered ontology honoring the hierarchy/declaration flags.
func (o *Ontology) ApplyFilter(criteria FilterCriteria) FilterResult {
	seeds := map[string]bool{}
	for iri := range criteria.IncludeIndividuals {
		seeds[iri] = true
	}
	if len(criteria.IncludeClasses) > 0 {
		classSet := criteria.IncludeClasses
		for _, a := range o.axioms {
			ca, ok := a.(ClassAssertion)
			if !ok {
				continue
			}
			named, ok := ca.ClassExpr.(NamedClass)
			if !ok || !classSet[named.Class.IRI.FullIRI()] {
				continue
			}
			if ind, ok := ca.Individual.(NamedIndividual); ok {
				seeds[ind.IRI.FullIRI()] = true
			}
		}
	}
	for iri := range criteria.ExcludeIndividuals {
		delete(seeds, iri)
	}

	if len(criteria.PropertyValueFilters) > 0 {
		seeds = o.restrictByPropertyValues(seeds, criteria.PropertyValueFilters)
	}

	if criteria.MaxDepth != nil {
		seedList := make([]NamedIndividual, 0, len(seeds))
		for iri := range seeds {
			seedList = append(seedList, NamedIndividual{IRI: NewIRI(iri)})
		}
		nb := o.ExtractNeighborhood(seedList, *criteria.MaxDepth)
		seeds = map[string]bool{}
		for _, iri := range nb.SurvivingIndividuals {
			seeds[iri] = true
		}
	}

	result := o.newResultSkeleton()
	referenced := map[string]bool{}
	referencedKinds := map[string]EntityKind{}
	for _, a := range o.axioms {
		if !axiomReferencesIndividualIn(a, seeds) {
			continue
		}
		if criteria.AxiomPredicate != nil && !criteria.AxiomPredicate(a) {
			continue
		}
		result.Filtered.AddAxiom(a)
		for _, e := range entityIRIsReferencedByAxiom(a) {
			referenced[e.IRI] = true
			referencedKinds[e.IRI] = e.Kind
		}
	}

	if criteria.IncludeClassHierarchy {
		o.addHierarchyAxioms(result.Filtered, classAxiomTypes, referenced)
	}
	if criteria.IncludePropertyHierarchy {
		o.addHierarchyAxioms(result.Filtered, objectPropertyAxiomTypes, referenced)
		o.addHierarchyAxioms(result.Filtered, dataPropertyAxiomTypes, referenced)
	}
	if criteria.IncludeDeclarations {
		o.addSyntheticDeclarations(result.Filtered, referenced, referencedKinds)
	}

	o.finishResult(&result)
	restrictSurvivors(&result, seeds)
	return result
}

// restrictByPropertyValues narrows a seed set to individuals that satisfy
// every property-value filter.
func (o *Ontology) restrictByPropertyValues(seeds map[string]bool, filters map[string]map[string]bool) map[string]bool {
	out := map[string]bool{}
	for iri := range seeds {
		matchesAll := true
		for propIRI, allowedValues := range filters {
			if !o.individualHasPropertyValue(iri, propIRI, allowedValues) {
				matchesAll = false
				break
			}
		}
		if matchesAll {
			out[iri] = true
		}
	}
	return out
}

func (o *Ontology) individualHasPropertyValue(indIRI, propIRI string, allowedValues map[string]bool) bool {
	for _, a := range o.axioms {
		pa, ok := a.(DataPropertyAssertion)
		if !ok || pa.Property.IRI.FullIRI() != propIRI {
			continue
		}
		source, ok := pa.Source.(NamedIndividual)
		if !ok || source.IRI.FullIRI() != indIRI {
			continue
		}
		if allowedValues[pa.Value.String()] {
			return true
		}
	}
	return false
}

func (o *Ontology) newResultSkeleton() FilterResult {
	filtered := NewOntology()
	if o.iri != nil {
		filtered.SetIRI(*o.iri)
	}
	if o.versionIRI != nil {
		filtered.SetVersionIRI(*o.versionIRI)
	}
	for _, imp := range o.Imports() {
		filtered.AddImport(imp)
	}
	for p, ns := range o.prefixToNamespace {
		filtered.RegisterPrefix(p, ns)
	}
	for _, ann := range o.annotations {
		filtered.AddAnnotation(ann)
	}
	return FilterResult{
		Filtered:              filtered,
		AxiomCountBefore:       o.AxiomCount(),
		IndividualCountBefore:  o.IndividualCount(),
	}
}

func (o *Ontology) finishResult(result *FilterResult) {
	result.AxiomCountAfter = result.Filtered.AxiomCount()
	indSet := map[string]bool{}
	for _, a := range result.Filtered.axioms {
		for _, iri := range individualsReferencedByAxiom(a) {
			indSet[iri] = true
		}
	}
	surviving := make([]string, 0, len(indSet))
	for iri := range indSet {
		surviving = append(surviving, iri)
	}
	sort.Strings(surviving)
	result.SurvivingIndividuals = surviving
	result.IndividualCountAfter = len(surviving)
}

// restrictSurvivors narrows SurvivingIndividuals and IndividualCountAfter
// to the selected individuals; one that only appears at the far end of a
// kept axiom is not counted as a survivor.
func restrictSurvivors(result *FilterResult, selected map[string]bool) {
	kept := make([]string, 0, len(result.SurvivingIndividuals))
	for _, iri := range result.SurvivingIndividuals {
		if selected[iri] {
			kept = append(kept, iri)
		}
	}
	result.SurvivingIndividuals = kept
	result.IndividualCountAfter = len(kept)
}

// referencedEntity pairs an entity IRI with the kind it was referenced as,
// so a Declaration can be synthesized for it if the source never declared
// it separately.
type referencedEntity struct {
	IRI  string
	Kind EntityKind
}

// entityIRIsReferencedByAxiom returns every entity IRI (of any kind)
// textually reachable from an axiom's structure, tagged with the kind it
// was referenced as, used to synthesize declarations and select hierarchy
// axioms for a filtered subgraph.
func entityIRIsReferencedByAxiom(a Axiom) []referencedEntity {
	seen := map[string]EntityKind{}
	collectClassExpr := func(ce ClassExpression) {}
	collectClassExpr = func(ce ClassExpression) {
		switch v := ce.(type) {
		case NamedClass:
			seen[v.Class.IRI.FullIRI()] = EntityClass
		case ObjectIntersectionOf:
			for _, o := range v.Operands {
				collectClassExpr(o)
			}
		case ObjectUnionOf:
			for _, o := range v.Operands {
				collectClassExpr(o)
			}
		case ObjectComplementOf:
			collectClassExpr(v.Operand)
		case ObjectSomeValuesFrom:
			seen[v.Property.Property.IRI.FullIRI()] = EntityObjectProperty
			collectClassExpr(v.Filler)
		case ObjectAllValuesFrom:
			seen[v.Property.Property.IRI.FullIRI()] = EntityObjectProperty
			collectClassExpr(v.Filler)
		case ObjectHasValue:
			seen[v.Property.Property.IRI.FullIRI()] = EntityObjectProperty
		case ObjectHasSelf:
			seen[v.Property.Property.IRI.FullIRI()] = EntityObjectProperty
		case ObjectOneOf:
			for _, ind := range v.Individuals {
				if named, ok := ind.(NamedIndividual); ok {
					seen[named.IRI.FullIRI()] = EntityNamedIndividual
				}
			}
		}
	}
	collectDataRange := func(dr DataRange) {}
	collectDataRange = func(dr DataRange) {
		switch v := dr.(type) {
		case NamedDatatype:
			seen[v.Datatype.IRI.FullIRI()] = EntityDatatype
		case DataIntersectionOf:
			for _, o := range v.Operands {
				collectDataRange(o)
			}
		case DataUnionOf:
			for _, o := range v.Operands {
				collectDataRange(o)
			}
		case DataComplementOf:
			collectDataRange(v.Operand)
		case DatatypeRestriction:
			seen[v.Datatype.IRI.FullIRI()] = EntityDatatype
		}
	}
	collectInd := func(ind Individual) {
		if named, ok := ind.(NamedIndividual); ok {
			seen[named.IRI.FullIRI()] = EntityNamedIndividual
		}
	}

	switch v := a.(type) {
	case Declaration:
		seen[v.IRI.FullIRI()] = v.EntityKind
	case SubClassOf:
		collectClassExpr(v.SubClass)
		collectClassExpr(v.SuperClass)
	case EquivalentClasses:
		for _, c := range v.ClassExpressions {
			collectClassExpr(c)
		}
	case DisjointClasses:
		for _, c := range v.ClassExpressions {
			collectClassExpr(c)
		}
	case DisjointUnion:
		seen[v.Class.IRI.FullIRI()] = EntityClass
		for _, c := range v.ClassExpressions {
			collectClassExpr(c)
		}
	case SubObjectPropertyOf:
		seen[v.SuperProperty.Property.IRI.FullIRI()] = EntityObjectProperty
		if v.IsChain() {
			for _, p := range v.Chain {
				seen[p.Property.IRI.FullIRI()] = EntityObjectProperty
			}
		} else {
			seen[v.SubProperty.Property.IRI.FullIRI()] = EntityObjectProperty
		}
	case ObjectPropertyDomain:
		seen[v.Property.Property.IRI.FullIRI()] = EntityObjectProperty
		collectClassExpr(v.Domain)
	case ObjectPropertyRange:
		seen[v.Property.Property.IRI.FullIRI()] = EntityObjectProperty
		collectClassExpr(v.Range)
	case SubDataPropertyOf:
		seen[v.SubProperty.IRI.FullIRI()] = EntityDataProperty
		seen[v.SuperProperty.IRI.FullIRI()] = EntityDataProperty
	case DataPropertyDomain:
		seen[v.Property.IRI.FullIRI()] = EntityDataProperty
		collectClassExpr(v.Domain)
	case DataPropertyRange:
		seen[v.Property.IRI.FullIRI()] = EntityDataProperty
		collectDataRange(v.Range)
	case ClassAssertion:
		collectClassExpr(v.ClassExpr)
		collectInd(v.Individual)
	case ObjectPropertyAssertion:
		seen[v.Property.Property.IRI.FullIRI()] = EntityObjectProperty
		collectInd(v.Source)
		collectInd(v.Target)
	case NegativeObjectPropertyAssertion:
		seen[v.Property.Property.IRI.FullIRI()] = EntityObjectProperty
		collectInd(v.Source)
		collectInd(v.Target)
	case DataPropertyAssertion:
		seen[v.Property.IRI.FullIRI()] = EntityDataProperty
		collectInd(v.Source)
	case NegativeDataPropertyAssertion:
		seen[v.Property.IRI.FullIRI()] = EntityDataProperty
		collectInd(v.Source)
	case SameIndividual:
		for _, ind := range v.Individuals {
			collectInd(ind)
		}
	case DifferentIndividuals:
		for _, ind := range v.Individuals {
			collectInd(ind)
		}
	}

	out := make([]referencedEntity, 0, len(seen))
	for iri, kind := range seen {
		out = append(out, referencedEntity{IRI: iri, Kind: kind})
	}
	return out
}

// addHierarchyAxioms copies every axiom of the given type family from o into
// filtered whose referenced entities are all already in the referenced set.
func (o *Ontology) addHierarchyAxioms(filtered *Ontology, types map[AxiomType]bool, referenced map[string]bool) {
	for _, a := range o.axioms {
		if !types[a.Type()] {
			continue
		}
		entities := entityIRIsReferencedByAxiom(a)
		allReferenced := len(entities) > 0
		for _, e := range entities {
			if !referenced[e.IRI] {
				allReferenced = false
				break
			}
		}
		if allReferenced && !filtered.ContainsAxiom(a) {
			filtered.AddAxiom(a)
		}
	}
}

// addSyntheticDeclarations adds a Declaration axiom for every referenced
// entity IRI: a surviving source Declaration is reused where one exists,
// and one is synthesized from the entity's recorded kind otherwise, so
// that an entity which appears only as the subject of an assertion (and
// was never separately declared in the source) still gets a Declaration
// in the filtered ontology.
func (o *Ontology) addSyntheticDeclarations(filtered *Ontology, referenced map[string]bool, kinds map[string]EntityKind) {
	declared := map[string]bool{}
	for _, d := range o.DeclarationAxioms() {
		if !referenced[d.IRI.FullIRI()] {
			continue
		}
		declared[d.IRI.FullIRI()] = true
		if !filtered.ContainsAxiom(d) {
			filtered.AddAxiom(d)
		}
	}
	for iri := range referenced {
		if declared[iri] {
			continue
		}
		if kind, ok := kinds[iri]; ok {
			filtered.AddAxiom(Declaration{EntityKind: kind, IRI: NewIRI(iri)})
		}
	}
}
