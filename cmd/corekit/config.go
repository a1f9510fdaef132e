// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"corekit/internal/config"
	"corekit/internal/issue"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage corekit configuration",
	Long: `Manage corekit configuration.

Configuration is stored in:
  - Linux: ~/.config/corekit/config.toml
  - macOS: ~/Library/Application Support/corekit/config.toml
  - Windows: %APPDATA%\corekit\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.OutOrStdout())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.OutOrStdout())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd.OutOrStdout())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return newServiceError(err, issue.ConfigLoadFailedId, "")
			}

			tomlContent, err := config.GenerateTOML(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tomlContent)
			return nil
		},
	})
}

func showConfig(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return newServiceError(err, issue.ConfigLoadFailedId, "")
	}

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if path := config.ConfigFilePath(); path != "" {
		fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s:\n", KeyStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", SuccessStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(out, "  output_format: %s\n", SuccessStyle.Render(cfg.UI.OutputFormat.String()))
	fmt.Fprintf(out, "  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(out io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err = config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Fprintf(out, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)

	return nil
}

func showConfigPath(out io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Fprintf(out, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(out, "Config file: %s\n", cfgPath)

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		fmt.Fprintln(out, SubtitleStyle.Render("(file does not exist yet; run 'corekit config init')"))
	}

	return nil
}
