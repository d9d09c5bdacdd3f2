package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/apielements/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It has no flags;
// the server is configured through APIELEMENTS_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apielements mcp\n\n")
		Writef(output, "Run the MCP server over stdio.\n\n")
		Writef(output, "Tools:\n")
		Writef(output, "  parse        Parse an OpenAPI 3 document into API Elements\n")
		Writef(output, "  materialize  Generate a value for a component schema\n")
		Writef(output, "\nEnvironment:\n")
		Writef(output, "  APIELEMENTS_CACHE_ENABLED, APIELEMENTS_CACHE_MAX_SIZE, APIELEMENTS_CACHE_FILE_TTL,\n")
		Writef(output, "  APIELEMENTS_CACHE_CONTENT_TTL, APIELEMENTS_CACHE_SWEEP_INTERVAL, APIELEMENTS_MAX_INLINE_SIZE,\n")
		Writef(output, "  APIELEMENTS_MAX_ANNOTATIONS, APIELEMENTS_GENERATE_BODIES\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
