package fsyntax

import "github.com/kahefi/owlgraph"

func newLexError(msg string, line, column int) error {
	return owlgraph.NewParseError(msg, line, column)
}

func newParseError(msg string, line, column int) error {
	return owlgraph.NewParseError(msg, line, column)
}
