// Command owlgraph is a thin command-line front-end over the owlgraph
// library: parse, serialize, filter and stats subcommands, each a direct
// call into the public library surface with no core logic of its own.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/teris-io/shortid"

	"github.com/kahefi/owlgraph"
	"github.com/kahefi/owlgraph/fsyntax"
	"github.com/kahefi/owlgraph/rdfxml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "parse":
		err = runParse(os.Args[2:])
	case "serialize":
		err = runSerialize(os.Args[2:])
	case "filter":
		err = runFilter(os.Args[2:])
	case "stats":
		err = runStats(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		runID, genErr := shortid.Generate()
		if genErr != nil {
			runID = "unknown"
		}
		fmt.Fprintf(os.Stderr, "owlgraph: run %s: %v\n", runID, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: owlgraph <parse|serialize|filter|stats> [flags]")
}

func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	in := fs.String("in", "", "input functional-syntax file (default stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ont, err := loadOntology(*in)
	if err != nil {
		return err
	}
	fmt.Printf("parsed %d axioms into ontology <%s>\n", ont.AxiomCount(), ontologyIRI(ont))
	return nil
}

func runSerialize(args []string) error {
	fs := flag.NewFlagSet("serialize", flag.ExitOnError)
	in := fs.String("in", "", "input functional-syntax file (default stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	format := fs.String("format", "fs", "output format: fs (Functional Syntax) or ttl (Turtle)")
	indent := fs.String("indent", "    ", "indentation used for fs output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ont, err := loadOntology(*in)
	if err != nil {
		return err
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return owlgraph.NewIOError("cannot open "+*out, err)
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "fs":
		return fsyntax.SerializeIndent(w, ont, *indent)
	case "ttl":
		store, err := rdfxml.WriteOntology(ont)
		if err != nil {
			return err
		}
		return store.SerializeToTurtle(w, true)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func runFilter(args []string) error {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	in := fs.String("in", "", "input functional-syntax file (default stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	class := fs.String("class", "", "restrict to the subgraph reachable from this class IRI")
	depth := fs.Int("depth", -1, "maximum neighborhood expansion depth (-1 for no expansion)")
	hierarchy := fs.Bool("hierarchy", true, "include class/property hierarchy axioms")
	declarations := fs.Bool("declarations", true, "include synthetic declarations for referenced entities")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ont, err := loadOntology(*in)
	if err != nil {
		return err
	}

	builder := owlgraph.NewFilter(ont).
		IncludeClassHierarchy(*hierarchy).
		IncludePropertyHierarchy(*hierarchy).
		IncludeDeclarations(*declarations)
	if *class != "" {
		builder = builder.WithClasses(owlgraph.Class{IRI: owlgraph.NewIRI(*class)})
	}
	if *depth >= 0 {
		builder = builder.WithMaxDepth(*depth)
	}
	result := builder.Execute()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return owlgraph.NewIOError("cannot open "+*out, err)
		}
		defer f.Close()
		w = f
	}
	return fsyntax.Serialize(w, result.Filtered)
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	in := fs.String("in", "", "input functional-syntax file (default stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ont, err := loadOntology(*in)
	if err != nil {
		return err
	}
	fmt.Println(ont.Statistics().String())
	return nil
}

func loadOntology(path string) (*owlgraph.Ontology, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return nil, owlgraph.NewIOError("cannot read input", err)
	}
	return fsyntax.Parse(string(data))
}

func ontologyIRI(ont *owlgraph.Ontology) string {
	if iri, ok := ont.IRI(); ok {
		return iri.FullIRI()
	}
	return ""
}
