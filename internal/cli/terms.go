package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// parseTerm resolves a command-line argument to a term of type T. The
// argument is either the term's name as this tool prints it or its IRI.
func parseTerm[T vocab.Term](arg string) (T, error) {
	if t, ok := vocab.ByName[T](arg); ok {
		return t, nil
	}
	if t, ok := vocab.Parse[T](arg); ok {
		return t, nil
	}
	var zero T
	return zero, errors.New(errors.ErrCodeUnknownTerm, "unknown term %q (known: %s)", arg, strings.Join(vocab.Names[T](), ", "))
}

// parseTerms resolves every argument; see parseTerm.
func parseTerms[T vocab.Term](args []string) (enumgraph.Set[T], error) {
	var out enumgraph.Set[T]
	for _, a := range args {
		t, err := parseTerm[T](a)
		if err != nil {
			return 0, err
		}
		out.Insert(t)
	}
	return out, nil
}

// printTerms lists every member of set in ordinal order, marking those in
// marked.
func printTerms[T vocab.Term](w io.Writer, set, marked enumgraph.Set[T]) {
	for t := range set.All() {
		printTerm(w, t.String(), t.IRI(), marked.Contains(t))
	}
}

// completeClasses completes the vocabulary kind as the first argument and
// class names of that kind afterwards. Names already given are left out.
func completeClasses(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return []string{kindPlugin, kindAtom}, cobra.ShellCompDirectiveNoFileComp
	}
	return classNames(args[0], args[1:], toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeClassFlag completes a flag that takes one class of the kind named
// by the first argument.
func completeClassFlag(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return classNames(args[0], nil, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func classNames(kind string, given []string, prefix string) []string {
	var names []string
	switch kind {
	case kindPlugin:
		names = vocab.Names[vocab.PluginType]()
	case kindAtom:
		names = vocab.Names[vocab.AtomType]()
	}
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) && !slices.Contains(given, n) {
			out = append(out, n)
		}
	}
	return out
}
