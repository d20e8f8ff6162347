package main

import (
	"github.com/spf13/cobra"

	"github.com/pointbreak71/econscan/internal/jel"
)

var jelList bool

func init() {
	jelCmd.Flags().BoolVar(&jelList, "list", false, "Dump the whole taxonomy table")
	rootCmd.AddCommand(jelCmd)
}

var jelCmd = &cobra.Command{
	Use:   "jel [code]",
	Short: "Resolve a JEL code against the taxonomy",
	Long: `Resolve a JEL classification code to its hierarchical description,
e.g. 'econscan jel D43' or 'econscan jel --list' for the whole table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJEL,
}

func runJEL(cmd *cobra.Command, args []string) error {
	tax := jel.NewTaxonomy()

	if jelList {
		return outputJSON(tax.All())
	}
	if len(args) == 0 {
		exitWithError(ExitError, "a code argument or --list is required")
	}

	desc, err := tax.Describe(args[0])
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	return outputJSON(desc)
}
