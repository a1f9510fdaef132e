// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"corekit/internal/config"
	"corekit/internal/issue"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [issue-id]",
	Short: "Explain an error by its issue ID",
	Long: `Explain an error by its issue ID.

Corekit errors reference numbered issue catalog entries. Pass an ID to
render the full help page for that issue, or run without arguments to
list every known issue.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listIssues(cmd.OutOrStdout())
		}
		return explainIssue(cmd.OutOrStdout(), args[0])
	},
}

func listIssues(out io.Writer) error {
	entries := issue.Values()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Id() < entries[j].Id()
	})

	fmt.Fprintln(out, TitleStyle.Render("Known issues"))
	for _, entry := range entries {
		fmt.Fprintf(out, "  %s %s\n", KeyStyle.Render(strconv.Itoa(int(entry.Id()))), issueTitle(entry))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, SubtitleStyle.Render("Run 'corekit explain <id>' for the full help page."))
	return nil
}

func explainIssue(out io.Writer, rawID string) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("issue ID must be a number, got %q", rawID)
	}

	entry := issue.Get(issue.Id(id))
	if entry == nil {
		return fmt.Errorf("no issue with ID %d (run 'corekit explain' to list all issues)", id)
	}

	rendered, err := entry.Render(glamourStyle())
	if err != nil {
		return fmt.Errorf("failed to render issue %d: %w", id, err)
	}
	fmt.Fprint(out, rendered)
	return nil
}

// issueTitle extracts the first markdown heading from an issue page.
func issueTitle(entry *issue.Issue) string {
	for _, line := range strings.Split(string(entry.MarkdownMsg()), "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return title
		}
	}
	return ""
}

// glamourStyle maps the configured color scheme to a glamour style name.
func glamourStyle() string {
	switch config.Get().UI.ColorScheme {
	case config.ColorSchemeLight:
		return "light"
	default:
		return "dark"
	}
}
