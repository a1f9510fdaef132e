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
	"corekit/pkg/refined"

	"github.com/spf13/cobra"
)

var numCmd = &cobra.Command{
	Use:   "num <brand> <value>",
	Short: "Check a number against a refined brand",
	Long: `Check a number against a refined brand.

Brands: ` + strings.Join(brandNames(), ", ") + `

The value is accepted when it satisfies the brand's predicate and the
command prints its canonical form; otherwise the command fails with the
brand's rejection reason.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNumCheck(cmd.OutOrStdout(), args[0], args[1])
	},
}

// brandCheck parses raw and runs the brand constructor, returning the
// canonical string form of the accepted value.
type brandCheck func(raw string) (string, error)

var brands = map[string]brandCheck{
	"positive":     floatBrand(func(v float64) (fmt.Stringer, error) { b, err := refined.NewPositive(v); return b, err }),
	"non-negative": floatBrand(func(v float64) (fmt.Stringer, error) { b, err := refined.NewNonNegative(v); return b, err }),
	"non-zero":     floatBrand(func(v float64) (fmt.Stringer, error) { b, err := refined.NewNonZero(v); return b, err }),
	"whole":        floatBrand(func(v float64) (fmt.Stringer, error) { b, err := refined.NewWhole(v); return b, err }),
	"percent":      floatBrand(func(v float64) (fmt.Stringer, error) { b, err := refined.NewPercent(v); return b, err }),
	"even":         intBrand(func(v int64) (fmt.Stringer, error) { b, err := refined.NewEven(v); return b, err }),
	"odd":          intBrand(func(v int64) (fmt.Stringer, error) { b, err := refined.NewOdd(v); return b, err }),
	"natural":      intBrand(func(v int64) (fmt.Stringer, error) { b, err := refined.NewNatural(v); return b, err }),
	"port": func(raw string) (string, error) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("value %q is not an integer: %w", raw, err)
		}
		p, err := refined.NewPort(v)
		if err != nil {
			return "", err
		}
		return p.String(), nil
	},
}

func floatBrand(ctor func(float64) (fmt.Stringer, error)) brandCheck {
	return func(raw string) (string, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", fmt.Errorf("value %q is not a number: %w", raw, err)
		}
		b, err := ctor(v)
		if err != nil {
			return "", err
		}
		return b.String(), nil
	}
}

func intBrand(ctor func(int64) (fmt.Stringer, error)) brandCheck {
	return func(raw string) (string, error) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", fmt.Errorf("value %q is not an integer: %w", raw, err)
		}
		b, err := ctor(v)
		if err != nil {
			return "", err
		}
		return b.String(), nil
	}
}

func brandNames() []string {
	names := make([]string, 0, len(brands))
	for name := range brands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runNumCheck(out io.Writer, brand, raw string) error {
	check, ok := brands[brand]
	if !ok {
		return fmt.Errorf("unknown brand %q (valid: %s)", brand, strings.Join(brandNames(), ", "))
	}

	canonical, err := check(raw)
	if err != nil {
		return newServiceError(err, issue.RefinedOutOfRangeId, "")
	}

	format, err := resolveOutputFormat()
	if err != nil {
		return err
	}
	if format == config.OutputFormatJSON {
		return writeJSON(out, map[string]string{
			"brand": brand,
			"value": canonical,
		})
	}

	fmt.Fprintf(out, "%s %s is a valid %s\n", SuccessStyle.Render("✓"), canonical, brand)
	return nil
}
