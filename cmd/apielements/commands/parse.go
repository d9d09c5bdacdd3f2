package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/apielements"
	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/oas3"
	"github.com/erraggy/apielements/parser"
)

// ErrInvalidDocument is returned when the parsed document has error annotations.
var ErrInvalidDocument = errors.New("document has errors")

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format           string
	Quiet            bool
	Debug            bool
	NoGenerateBodies bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json, yaml, or text")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no warnings")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no warnings")
	fs.BoolVar(&flags.Debug, "debug", false, "log parser activity to stderr")
	fs.BoolVar(&flags.NoGenerateBodies, "no-generate-bodies", false, "do not generate JSON message bodies from schemas")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apielements parse [flags] <file|->\n\n")
		Writef(output, "Parse an OpenAPI 3 document into API Elements.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  apielements parse openapi.yaml\n")
		Writef(output, "  apielements parse --format yaml openapi.yaml\n")
		Writef(output, "  apielements parse --format text --debug openapi.yaml\n")
		Writef(output, "  cat openapi.yaml | apielements parse -q -\n")
		Writef(output, "\nOutput:\n")
		Writef(output, "  The API element goes to stdout. Errors and warnings go to stderr.\n")
		Writef(output, "  Errors are printed even with --quiet.\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful (warnings may be present)\n")
		Writef(output, "  1    The document could not be read or has errors\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	return runParse(args, os.Stdin, os.Stdout, os.Stderr)
}

func runParse(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupParseFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	var logger parser.Logger
	if flags.Debug {
		logger = NewDebugLogger(stderr)
	}

	result, err := LoadDocument(specPath, stdin, logger, oas3.WithGenerateMessageBody(!flags.NoGenerateBodies))
	if err != nil {
		return err
	}

	// Errors are always printed, even in quiet mode.
	if result.HasError() {
		OutputAnnotations(stderr, result.ParseResult)
		return fmt.Errorf("%w: %d error(s) in %s", ErrInvalidDocument, len(result.Errors()), FormatSpecPath(specPath))
	}
	if !flags.Quiet {
		OutputAnnotations(stderr, result.ParseResult)
	}

	if flags.Format == FormatText {
		outputSummary(stdout, specPath, result)
		return nil
	}
	return OutputStructured(stdout, result.API(), flags.Format)
}

func outputSummary(w io.Writer, specPath string, result *oas3.Result) {
	api := result.API()
	Writef(w, "apielements version: %s\n", apielements.Version())
	Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	Writef(w, "Title: %s\n", result.Title)
	Writef(w, "Version: %s\n", result.Version)
	Writef(w, "Resources: %d\n", len(element.FindByKind(api, "resource")))
	Writef(w, "Transitions: %d\n", len(element.FindByKind(api, "transition")))
	Writef(w, "Data Structures: %d\n", len(result.Schemas()))
	Writef(w, "Warnings: %d\n", len(result.Warnings()))
}
