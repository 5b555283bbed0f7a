package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-langsurvey/internal/output"
	"github.com/l3aro/go-langsurvey/pkg/language"
)

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Print the ordered extension table",
	Long: `Prints the built-in language table in precedence order. When an
extension appears under several languages, the earliest one wins; those
shadowed extensions are listed at the end.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return runLanguages(cmd, language.Default(), jsonOutput)
	},
}

func init() {
	languagesCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runLanguages(cmd *cobra.Command, table *language.Table, jsonOutput bool) error {
	out := cmd.OutOrStdout()

	if jsonOutput {
		return output.WriteJSON(out, struct {
			Entries  []language.Entry  `json:"entries"`
			Shadowed []language.Shadow `json:"shadowed"`
		}{table.Entries(), table.Shadowed()})
	}

	entries := table.Entries()
	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}

	for i, e := range entries {
		fmt.Fprintf(out, "%3d  %-*s  %s\n", i+1, width, e.Name, strings.Join(e.Extensions, " "))
	}

	if shadowed := table.Shadowed(); len(shadowed) > 0 {
		fmt.Fprintln(out, "\nShadowed extensions:")
		for _, s := range shadowed {
			fmt.Fprintf(out, "  %-6s %s (wins) over %s\n", s.Extension, s.Winner, s.Loser)
		}
	}
	return nil
}
