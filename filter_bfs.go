package owlgraph

import "sort"

// adjacency builds the undirected adjacency graph induced by
// ObjectPropertyAssertion axioms between named individuals. Edges are
// recorded in axiom insertion order so that parallel edges do not change
// BFS visitation order.
func (o *Ontology) adjacency() map[string][]string {
	adj := map[string][]string{}
	addEdge := func(a, b string) {
		adj[a] = append(adj[a], b)
	}
	for _, ax := range o.axioms {
		pa, ok := ax.(ObjectPropertyAssertion)
		if !ok {
			continue
		}
		source, ok1 := pa.Source.(NamedIndividual)
		target, ok2 := pa.Target.(NamedIndividual)
		if !ok1 || !ok2 {
			continue
		}
		addEdge(source.IRI.FullIRI(), target.IRI.FullIRI())
		addEdge(target.IRI.FullIRI(), source.IRI.FullIRI())
	}
	return adj
}

// ExtractNeighborhood runs a breadth-first expansion from seeds over the
// undirected object-property-assertion adjacency graph, out to the given
// depth (0 = seeds only), then filters by the resulting visited set.
func (o *Ontology) ExtractNeighborhood(seeds []NamedIndividual, depth int) FilterResult {
	adj := o.adjacency()
	visited := map[string]bool{}
	frontier := make([]string, 0, len(seeds))
	for _, s := range seeds {
		iri := s.IRI.FullIRI()
		if !visited[iri] {
			visited[iri] = true
			frontier = append(frontier, iri)
		}
	}

	for step := 0; step < depth && len(frontier) > 0; step++ {
		var next []string
		for _, node := range frontier {
			for _, neighbor := range adj[node] {
				if !visited[neighbor] {
					visited[neighbor] = true
					next = append(next, neighbor)
				}
			}
		}
		frontier = next
	}

	return o.filterAxiomsReferencing(visited)
}

// ExtractPath finds every shortest path (by BFS layer) between start and
// end over the object-property-assertion adjacency graph and filters by
// the union of all shortest-path vertex sets. If end is unreachable from
// start, the result is an empty filtered ontology with metadata preserved.
func (o *Ontology) ExtractPath(start, end NamedIndividual) FilterResult {
	adj := o.adjacency()
	startIRI := start.IRI.FullIRI()
	endIRI := end.IRI.FullIRI()

	if startIRI == endIRI {
		return o.filterAxiomsReferencing(map[string]bool{startIRI: true})
	}

	dist := map[string]int{startIRI: 0}
	order := []string{startIRI}
	frontier := []string{startIRI}
	for len(frontier) > 0 {
		var next []string
		for _, node := range frontier {
			for _, neighbor := range adj[node] {
				if _, seen := dist[neighbor]; !seen {
					dist[neighbor] = dist[node] + 1
					order = append(order, neighbor)
					next = append(next, neighbor)
				}
			}
		}
		frontier = next
	}

	endDist, reachable := dist[endIRI]
	if !reachable {
		return o.newEmptyResult()
	}

	// Walk backward from end, collecting every predecessor at each
	// decreasing distance layer that has an edge into the current layer's
	// set, accumulating the union of all shortest-path vertex sets.
	onPath := map[string]bool{endIRI: true}
	layer := map[string]bool{endIRI: true}
	for d := endDist; d > 0; d-- {
		prevLayer := map[string]bool{}
		for node := range layer {
			for _, neighbor := range adj[node] {
				if nd, ok := dist[neighbor]; ok && nd == d-1 {
					prevLayer[neighbor] = true
					onPath[neighbor] = true
				}
			}
		}
		layer = prevLayer
	}

	return o.filterAxiomsReferencing(onPath)
}

func (o *Ontology) newEmptyResult() FilterResult {
	result := o.newResultSkeleton()
	o.finishResult(&result)
	return result
}

// RandomSample deterministically selects n individuals using seed: the
// pool of every named individual referenced by some axiom is sorted by IRI
// for reproducibility, then a linear-congruential shuffle keyed on seed
// picks n of them, before filtering by that individual set.
func (o *Ontology) RandomSample(n int, seed int64) FilterResult {
	candidateSet := map[string]bool{}
	for _, a := range o.axioms {
		for _, iri := range individualsReferencedByAxiom(a) {
			candidateSet[iri] = true
		}
	}
	candidates := make([]string, 0, len(candidateSet))
	for iri := range candidateSet {
		candidates = append(candidates, iri)
	}
	sort.Strings(candidates)

	if n > len(candidates) {
		n = len(candidates)
	}
	picked := deterministicSample(candidates, n, seed)

	set := map[string]bool{}
	for _, iri := range picked {
		set[iri] = true
	}
	return o.filterAxiomsReferencing(set)
}

// deterministicSample picks n elements from the sorted candidates slice
// using a simple linear-congruential generator keyed on seed, so that the
// same seed and candidate ordering always produce the same sample.
func deterministicSample(candidates []string, n int, seed int64) []string {
	pool := make([]string, len(candidates))
	copy(pool, candidates)

	state := uint64(seed)
	next := func(bound int) int {
		state = state*6364136223846793005 + 1442695040888963407
		return int((state >> 33) % uint64(bound))
	}

	out := make([]string, 0, n)
	for i := 0; i < n && len(pool) > 0; i++ {
		idx := next(len(pool))
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}
