package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cyberbull/startupdocs/internal/document"
	"github.com/cyberbull/startupdocs/internal/pipeline"
	"github.com/cyberbull/startupdocs/internal/schema"
)

var (
	genType       string
	genTone       string
	genLanguage   string
	genQuery      string
	genFields     []string
	genFieldsFile string
	genOutput     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one document from the command line",
	Long: `Generate a document from structured fields.

Fields can be passed as repeated --field key=value flags or collected in a
YAML file of key: value pairs via --fields-file.

Example:
  startupdocs generate --type pitch_deck --tone casual \
    --field business_name="Acme Inc" --field startup_domain=IT \
    --field business_idea="..." --field team_vision="..." \
    --field market_opportunity="..."`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genType, "type", document.TypeBusinessPlan, "Document type")
	generateCmd.Flags().StringVar(&genTone, "tone", document.ToneFormal, "Response tone")
	generateCmd.Flags().StringVar(&genLanguage, "language", "English", "Response language")
	generateCmd.Flags().StringVar(&genQuery, "query", "", "Topic/query text (defaults to the document type label)")
	generateCmd.Flags().StringArrayVar(&genFields, "field", nil, "Field value as key=value (repeatable)")
	generateCmd.Flags().StringVar(&genFieldsFile, "fields-file", "", "YAML file of field key: value pairs")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Write the document to a file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := buildApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	values, err := collectFields()
	if err != nil {
		return err
	}

	sess, err := a.sessions.Create()
	if err != nil {
		return err
	}

	query := genQuery
	if strings.TrimSpace(query) == "" {
		query = document.Label(genType)
	}

	req := document.PromptRequest{
		Query:        query,
		DocumentType: genType,
		Language:     genLanguage,
		Tone:         genTone,
	}
	doc, failure := a.pipeline.Generate(cmd.Context(), req, values, sess)
	if failure != nil {
		if failure.Kind == pipeline.ValidationError {
			return fmt.Errorf("%s (missing: %s)", failure.Message, strings.Join(failure.Missing, ", "))
		}
		return fmt.Errorf("%s", failure.Message)
	}

	if genOutput != "" {
		if err := os.WriteFile(genOutput, []byte(doc.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", genOutput, err)
		}
		log.Infof("wrote %s", genOutput)
		return nil
	}
	fmt.Println(doc.Content)
	return nil
}

func collectFields() (map[string]string, error) {
	values := make(map[string]string)

	if genFieldsFile != "" {
		data, err := os.ReadFile(genFieldsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read fields file: %w", err)
		}
		parsed, err := parseFieldsFile(data)
		if err != nil {
			return nil, err
		}
		for k, v := range parsed {
			values[k] = v
		}
	}

	for _, pair := range genFields {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --field %q, expected key=value", pair)
		}
		values[strings.TrimSpace(key)] = value
	}

	// Fill declared defaults the way the form layer does.
	for _, f := range schema.Flatten(schema.FieldsFor(genType)) {
		if _, ok := values[f.Key]; !ok && f.Default != "" {
			values[f.Key] = f.Default
		}
	}
	return values, nil
}

// parseFieldsFile decodes a YAML map of field values. Scalars are
// stringified so an unquoted number like "capital_needed: 1000" is
// accepted as the field value.
func parseFieldsFile(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse fields file: %w", err)
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch s := v.(type) {
		case string:
			values[k] = s
		case nil:
			values[k] = ""
		default:
			values[k] = fmt.Sprintf("%v", s)
		}
	}
	return values, nil
}
