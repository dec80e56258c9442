package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rng "github.com/go-relaxng/relaxng"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "rngvalidate --schema <grammar.rng> <document.xml>",
		Short: "Validate an XML document against a Relax NG grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, schemaPath, args[0])
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "path to the Relax NG grammar file")
	if err := cmd.MarkFlagRequired("schema"); err != nil {
		panic(err)
	}
	return cmd
}

func runValidate(cmd *cobra.Command, schemaPath, docPath string) error {
	schemaFile, err := os.Open(schemaPath)
	if err != nil {
		return fmt.Errorf("open schema: %w", err)
	}
	defer schemaFile.Close()

	grammar, err := rng.CompileGrammar(schemaFile)
	if err != nil {
		return fmt.Errorf("compile grammar: %w", err)
	}

	docFile, err := os.Open(docPath)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer docFile.Close()

	report, err := grammar.Validate(docFile)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	out := cmd.OutOrStdout()
	if !report.Plausible || len(report.Problems) > 0 {
		for _, p := range report.Problems {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", p.Path, p.Message)
		}
		fmt.Fprintf(out, "%s fails to validate\n", docPath)
		return fmt.Errorf("%s fails to validate", docPath)
	}

	fmt.Fprintf(out, "%s validates\n", docPath)
	return nil
}
