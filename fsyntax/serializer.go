// Package fsyntax implements the OWL 2 Functional-Syntax serializer and
// parser: the authoritative, round-trippable textual exchange format for
// an owlgraph.Ontology.
package fsyntax

import (
	"io"

	"github.com/kahefi/owlgraph"
)

// Serialize writes ont to w in OWL 2 Functional Syntax using the default
// four-space indent.
func Serialize(w io.Writer, ont *owlgraph.Ontology) error {
	return SerializeIndent(w, ont, "    ")
}

// SerializeIndent writes ont to w in OWL 2 Functional Syntax using the
// given indent string for every body line.
func SerializeIndent(w io.Writer, ont *owlgraph.Ontology, indent string) error {
	_, err := io.WriteString(w, ont.ToFunctionalSyntax(indent)+"\n")
	if err != nil {
		return owlgraph.NewIOError("failed to write functional syntax document", err)
	}
	return nil
}
