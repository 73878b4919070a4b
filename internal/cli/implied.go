package cli

import (
	"github.com/spf13/cobra"

	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/implications"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// impliedCommand creates the implied command, which prints the full class
// set a resource belongs to when it declares the given classes.
func (c *CLI) impliedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "implied plugin|atom <class>...",
		Short: "Print every class implied by the given classes",
		Long: `Print every class implied by the given classes, including the classes
themselves (marked with a bullet). Classes are given by name or full IRI.`,
		Example: `  lv2model implied plugin Reverb
  lv2model implied atom http://lv2plug.in/ns/ext/atom#Int`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: completeClasses,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case kindPlugin:
				return runImplied(cmd, args[1:], implications.PluginTypesImpliedBy)
			case kindAtom:
				return runImplied(cmd, args[1:], implications.AtomTypesImpliedBy)
			}
			return unknownKind(args[0])
		},
	}
}

func runImplied[T vocab.Term](cmd *cobra.Command, args []string, implied func(enumgraph.Set[T]) enumgraph.Set[T]) error {
	explicit, err := parseTerms[T](args)
	if err != nil {
		return err
	}
	result := implied(explicit)
	loggerFromContext(cmd.Context()).Debugf("%d classes imply %d", explicit.Len(), result.Len())
	printTerms(cmd.OutOrStdout(), result, explicit)
	return nil
}
