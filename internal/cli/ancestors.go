package cli

import (
	"cmp"

	"github.com/spf13/cobra"

	"github.com/allen-marshall/lv2-se-bundle/pkg/hierarchy"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// classTerm is a vocabulary term that knows its direct parent classes.
type classTerm[T any] interface {
	vocab.Term
	hierarchy.Node[T]
}

// ancestorsCommand creates the ancestors command. Where implied reads the
// precomputed implication tables, ancestors walks parent links directly.
func (c *CLI) ancestorsCommand() *cobra.Command {
	var isA string

	cmd := &cobra.Command{
		Use:   "ancestors atom|plugin <class>...",
		Short: "Walk the parent links of the given classes",
		Long: `Print the given classes together with every class reachable through
their parent links. With --is-a, report instead whether each class is a
subclass of the named class.`,
		Example: `  lv2model ancestors atom Int
  lv2model ancestors plugin Reverb Compressor --is-a Dynamics`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: completeClasses,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case kindPlugin:
				return runAncestors[vocab.PluginType](cmd, args[1:], isA)
			case kindAtom:
				return runAncestors[vocab.AtomType](cmd, args[1:], isA)
			}
			return unknownKind(args[0])
		},
	}

	cmd.Flags().StringVar(&isA, "is-a", "", "check subclass relation against this class instead of listing ancestors")
	_ = cmd.RegisterFlagCompletionFunc("is-a", completeClassFlag)
	return cmd
}

func runAncestors[T classTerm[T]](cmd *cobra.Command, args []string, isA string) error {
	w := cmd.OutOrStdout()
	classes := make([]T, 0, len(args))
	for _, a := range args {
		t, err := parseTerm[T](a)
		if err != nil {
			return err
		}
		classes = append(classes, t)
	}

	if isA != "" {
		super, err := parseTerm[T](isA)
		if err != nil {
			return err
		}
		for _, t := range classes {
			if hierarchy.IsSubclassOf(t, super) {
				printSuccess(w, "%s is a %s", t, super)
			} else {
				printError(w, "%s is not a %s", t, super)
			}
		}
		return nil
	}

	given := make(hierarchy.Set[T], len(classes))
	for _, t := range classes {
		given.Add(t)
	}
	for _, t := range hierarchy.AncestorsAndSelfMultiple(classes...).Sorted(cmp.Compare[T]) {
		printTerm(w, t.String(), t.IRI(), given.Contains(t))
	}
	return nil
}
