package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/apielements/materializer"
)

// ExampleFlags contains flags for the example command
type ExampleFlags struct {
	Format     string
	Provenance bool
}

// SetupExampleFlags creates and configures a FlagSet for the example command.
// Returns the FlagSet and an ExampleFlags struct with bound flag variables.
func SetupExampleFlags() (*flag.FlagSet, *ExampleFlags) {
	fs := flag.NewFlagSet("example", flag.ContinueOnError)
	flags := &ExampleFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.BoolVar(&flags.Provenance, "provenance", false, "print the rule that produced the value to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apielements example [flags] <file|-> <schema>\n\n")
		Writef(output, "Generate a representative value for a component schema.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  apielements example openapi.yaml Pet\n")
		Writef(output, "  apielements example --format yaml --provenance openapi.yaml Pet\n")
		Writef(output, "  cat openapi.yaml | apielements example - Pet\n")
		Writef(output, "\nValue Precedence:\n")
		Writef(output, "  content, first sample, default, null when nullable, then a generated value\n")
	}

	return fs, flags
}

// HandleExample executes the example command
func HandleExample(args []string) error {
	return runExample(args, os.Stdin, os.Stdout, os.Stderr)
}

func runExample(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupExampleFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("example command requires a file path (or '-' for stdin) and a schema name")
	}
	if err := ValidateOutputFormat(flags.Format, FormatJSON, FormatYAML); err != nil {
		return err
	}

	specPath, name := fs.Arg(0), fs.Arg(1)
	result, err := LoadDocument(specPath, stdin, nil)
	if err != nil {
		return err
	}
	if result.HasError() {
		OutputAnnotations(stderr, result.ParseResult)
		return fmt.Errorf("%w: %d error(s) in %s", ErrInvalidDocument, len(result.Errors()), FormatSpecPath(specPath))
	}

	schema, table, ok := result.Schemas().Resolve(name)
	if !ok {
		return fmt.Errorf("schema '%s' not found in %s", name, FormatSpecPath(specPath))
	}

	value, provenance, ok := materializer.MaterializeWithProvenance(schema, table)
	if !ok {
		return fmt.Errorf("no value can be produced for schema '%s'", name)
	}

	var data []byte
	if flags.Format == FormatYAML {
		data, err = materializer.ToYAML(value)
	} else {
		data, err = materializer.ToJSON(value)
	}
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}

	if flags.Provenance {
		Writef(stderr, "Provenance: %s\n", provenance)
	}
	Writef(stdout, "%s", data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		Writef(stdout, "\n")
	}
	return nil
}
