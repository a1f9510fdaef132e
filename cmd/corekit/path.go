// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"corekit/internal/config"
	"corekit/internal/issue"
	"corekit/pkg/fsloc"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Inspect and combine filesystem locations",
	Long: `Inspect and combine filesystem locations.

Locations are classified by shape: a leading '/' makes them absolute,
a trailing '/' or a dotless last segment makes them directories, and a
dotted last segment makes them files. All subcommands work on that
decoded shape, not on the live filesystem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	pathCmd.AddCommand(&cobra.Command{
		Use:   "inspect <path>...",
		Short: "Decode locations and display their fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPathInspect(cmd.OutOrStdout(), args)
		},
	})

	pathCmd.AddCommand(&cobra.Command{
		Use:   "join <dir> <relative>",
		Short: "Join a directory location with a relative location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPathJoin(cmd.OutOrStdout(), args[0], args[1])
		},
	})

	pathCmd.AddCommand(&cobra.Command{
		Use:   "rel <base> <target>",
		Short: "Compute the target location relative to a base directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPathRel(cmd.OutOrStdout(), args[0], args[1])
		},
	})

	pathCmd.AddCommand(&cobra.Command{
		Use:   "match <pattern> <path>...",
		Short: "Glob-match locations against a doublestar pattern",
		Long: `Glob-match locations against a doublestar pattern.

Exits with status 1 when no location matches, mirroring grep.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPathMatch(cmd.OutOrStdout(), args[0], args[1:])
		},
	})
}

// locReport is the JSON projection of a decoded location.
type locReport struct {
	Input    string   `json:"input"`
	Encoded  string   `json:"encoded"`
	Anchor   string   `json:"anchor"`
	Class    string   `json:"class"`
	Segments []string `json:"segments"`
	Ups      int      `json:"ups,omitempty"`
	Name     string   `json:"name,omitempty"`
	Ext      string   `json:"ext,omitempty"`
	Depth    int      `json:"depth"`
}

func newLocReport(input string, l fsloc.Loc) locReport {
	return locReport{
		Input:    input,
		Encoded:  l.Encode(),
		Anchor:   l.Anchor().String(),
		Class:    l.Class().String(),
		Segments: l.Segments(),
		Ups:      l.Ups(),
		Name:     l.Name(),
		Ext:      l.Ext(),
		Depth:    l.Depth(),
	}
}

func runPathInspect(out io.Writer, args []string) error {
	format, err := resolveOutputFormat()
	if err != nil {
		return err
	}

	reports := make([]locReport, 0, len(args))
	for _, arg := range args {
		reports = append(reports, newLocReport(arg, fsloc.Decode(arg)))
	}

	if format == config.OutputFormatJSON {
		return writeJSON(out, reports)
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", TitleStyle.Render(r.Input))
		fmt.Fprintf(out, "  %s: %s\n", KeyStyle.Render("encoded"), r.Encoded)
		fmt.Fprintf(out, "  %s: %s\n", KeyStyle.Render("anchor"), r.Anchor)
		fmt.Fprintf(out, "  %s: %s\n", KeyStyle.Render("class"), r.Class)
		if r.Ups > 0 {
			fmt.Fprintf(out, "  %s: %d\n", KeyStyle.Render("ups"), r.Ups)
		}
		fmt.Fprintf(out, "  %s: %v\n", KeyStyle.Render("segments"), r.Segments)
		if r.Name != "" {
			fmt.Fprintf(out, "  %s: %s\n", KeyStyle.Render("name"), r.Name)
		}
		if r.Ext != "" {
			fmt.Fprintf(out, "  %s: %s\n", KeyStyle.Render("ext"), r.Ext)
		}
		fmt.Fprintf(out, "  %s: %d\n", KeyStyle.Render("depth"), r.Depth)
	}
	return nil
}

func runPathJoin(out io.Writer, baseArg, relArg string) error {
	base := fsloc.Decode(baseArg)

	operand, err := fsloc.DecodeRel(relArg)
	if err != nil {
		return newServiceError(err, issue.LocParseFailedId, "")
	}

	joined, err := fsloc.Join(base, operand)
	if err != nil {
		return newServiceError(err, issue.LocJoinFailedId, "")
	}

	fmt.Fprintln(out, joined.Encode())
	return nil
}

func runPathRel(out io.Writer, baseArg, targetArg string) error {
	base := fsloc.Decode(baseArg)
	target := fsloc.Decode(targetArg)

	rel, err := fsloc.RelativeTo(base, target)
	if err != nil {
		return newServiceError(err, issue.LocRelativizeFailedId, "")
	}

	fmt.Fprintln(out, rel.Encode())
	return nil
}

func runPathMatch(out io.Writer, pattern string, args []string) error {
	matched := 0
	for _, arg := range args {
		loc := fsloc.Decode(arg)
		ok, err := loc.Match(pattern)
		if err != nil {
			return newServiceError(err, issue.PatternInvalidId, "")
		}
		if ok {
			matched++
			fmt.Fprintln(out, loc.Encode())
		} else if verbose {
			logger.Debug("no match", "pattern", pattern, "location", loc.Encode())
		}
	}

	if matched == 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

// writeJSON writes v as indented JSON.
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
