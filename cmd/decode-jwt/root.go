package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/decode-jwt/pkg/token"
)

// rootCmd represents the decode-jwt command
var rootCmd = &cobra.Command{
	Use:   "decode-jwt [token]",
	Short: "Decode a JWT payload without verifying its signature",
	Long: `Decode the payload segment of a JSON Web Token without verifying its signature.

The token is taken from the first argument, or read from standard input when
no argument is given. The decoded payload is pretty-printed as JSON. No
signature or claim validation is performed.

Example:

$ decode-jwt eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxMjM0NTY3ODkwIn0.dummy
{
  "sub": "1234567890"
}
`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		tok, err := tokenFromInput(cmd, args)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}

		payload, err := token.DecodePayload(tok)
		if err != nil {
			// Diagnostics go to stdout and the process exits 0;
			// the absence of a payload is the failure signal.
			fmt.Fprintln(out, err)
			return
		}

		pretty, _ := json.MarshalIndent(payload, "", "  ")
		fmt.Fprintln(out, string(pretty))
	},
}

// tokenFromInput returns the first positional argument, or the trimmed
// contents of standard input when no argument was given.
func tokenFromInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("error reading token from stdin: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
