package main

import (
	"fmt"
	"os"

	"github.com/erraggy/apielements"
	"github.com/erraggy/apielements/cmd/apielements/commands"
)

var commandNames = []string{"parse", "example", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("apielements v%s\n", apielements.Version())
		if len(os.Args) > 2 && (os.Args[2] == "-l" || os.Args[2] == "--long") {
			fmt.Println(apielements.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "parse":
		err = commands.HandleParse(os.Args[2:])
	case "example":
		err = commands.HandleExample(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDistance := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Printf(`apielements - OpenAPI 3 to API Elements converter

Usage:
  apielements <command> [options]

Commands:
  parse     Parse an OpenAPI 3 document into API Elements
  example   Generate a representative value for a component schema
  mcp       Run the MCP server over stdio
  version   Show version information (use -l for build details)
  help      Show this help message

Examples:
  apielements parse openapi.yaml
  apielements parse --format text openapi.yaml
  apielements example openapi.yaml Pet
  apielements mcp

Run 'apielements <command> --help' for more information on a command.
`)
}
