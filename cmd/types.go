package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cyberbull/startupdocs/internal/document"
	"github.com/cyberbull/startupdocs/internal/schema"
)

var typesShowFields string

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List document types, tones, and fields",
	Run:   runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.Flags().StringVar(&typesShowFields, "fields", "", "Show the field list for one document type")
}

func runTypes(cmd *cobra.Command, args []string) {
	if typesShowFields != "" {
		printFields(typesShowFields)
		return
	}

	fmt.Println("Document types:")
	for _, t := range document.Types() {
		fmt.Printf("  %-26s %s\n", t, document.Label(t))
	}
	fmt.Println()
	fmt.Println("Tones:")
	fmt.Printf("  %s\n", strings.Join(document.Tones(), ", "))
}

func printFields(docType string) {
	fields := schema.FieldsFor(docType)
	if fields == nil {
		fmt.Printf("unknown document type: %s\n", docType)
		return
	}
	fmt.Printf("Fields for %s:\n", document.Label(docType))
	for _, f := range schema.Flatten(fields) {
		line := fmt.Sprintf("  %-24s %-9s %s", f.Key, f.Kind, f.Label)
		if len(f.Options) > 0 {
			line += " [" + strings.Join(f.Options, ", ") + "]"
		}
		fmt.Println(line)
	}
}
