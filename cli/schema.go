package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/toolintrospect/introspection"
	"github.com/jonwraymond/toolintrospect/registry"
	"github.com/jonwraymond/toolintrospect/schema"
)

// DefaultSchemas returns a registry holding the configuration records and
// the tool argument types.
func DefaultSchemas() *schema.Registry {
	r := schema.NewRegistry()
	mustRegister(schema.Register[introspection.Config](r, "introspection"))
	mustRegister(schema.Register[introspection.ExecuteConfig](r, "introspection.execute"))
	mustRegister(schema.Register[introspection.IntrospectConfig](r, "introspection.introspect"))
	mustRegister(schema.Register[introspection.SearchConfig](r, "introspection.search"))
	mustRegister(schema.Register[introspection.ValidateConfig](r, "introspection.validate"))
	mustRegister(schema.Register[registry.ExecuteInput](r, "tool.execute"))
	mustRegister(schema.Register[registry.IntrospectInput](r, "tool.introspect"))
	mustRegister(schema.Register[registry.SearchInput](r, "tool.search"))
	mustRegister(schema.Register[registry.ValidateInput](r, "tool.validate"))
	return r
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// NewSchemaCmd creates the "schema" subcommand.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [name]",
		Short: "Print the JSON Schema (draft-07) of a configuration type",
		Long: "Print the JSON Schema of the named configuration type. Without a name, " +
			"print an object holding every known schema keyed by name.",
		Args: cobra.MaximumNArgs(1),
		RunE: runSchema,
	}

	cmd.Flags().Bool("pretty", true, "Indent the output")
	cmd.Flags().Bool("list", false, "List the known schema names and exit")

	return cmd
}

func runSchema(cmd *cobra.Command, args []string) error {
	pretty, _ := cmd.Flags().GetBool("pretty")
	list, _ := cmd.Flags().GetBool("list")
	out := cmd.OutOrStdout()
	schemas := DefaultSchemas()

	if list {
		for _, name := range schemas.Names() {
			_, _ = fmt.Fprintln(out, name)
		}
		return nil
	}

	var doc any
	if len(args) == 0 {
		doc = schemas.ProjectAll()
	} else {
		projected, err := schemas.Project(args[0])
		if err != nil {
			if errors.Is(err, schema.ErrUnknownType) {
				return exitError(exitUnknownName, "unknown schema %q (known: %v)", args[0], schemas.Names())
			}
			return err
		}
		doc = projected
	}

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}
	_, _ = fmt.Fprintln(out, string(data))
	return nil
}
