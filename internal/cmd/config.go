package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/Iron-Ham/feeflow/internal/config"
	"github.com/Iron-Ham/feeflow/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View feeflow configuration",
	Long: `View feeflow configuration.

Without arguments, displays the current configuration.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the dashboard.

Set tui.theme to a built-in theme, or tui.theme_file to a YAML theme.
Use 'theme export' to create a starting point for a custom theme.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in themes",
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a built-in theme to YAML",
	Long: `Export a built-in theme to YAML.

If no output file is specified, the YAML is printed to stdout.

Examples:
  feeflow config theme export default
  feeflow config theme export mono my-theme.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
}

// secretKeys are masked by 'config show'.
var secretKeys = map[string]bool{
	"api_key": true,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	if _, err := config.Load(); err != nil {
		fmt.Fprintf(out, "# WARNING: %v\n", err)
	}

	settings := viper.AllSettings()
	delete(settings, "config")
	redact(settings)

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// redact masks secret values in a nested settings map.
func redact(settings map[string]any) {
	for k, v := range settings {
		switch val := v.(type) {
		case map[string]any:
			redact(val)
		case string:
			if secretKeys[k] && val != "" {
				settings[k] = "********"
			}
		}
	}
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, config.ConfigFile())
	if used := viper.ConfigFileUsed(); used != "" && used != config.ConfigFile() {
		fmt.Fprintf(out, "(in use: %s)\n", used)
	}
	return nil
}

func runThemeList(cmd *cobra.Command, args []string) error {
	names := styles.BuiltinThemes()
	sort.Strings(names)
	current := viper.GetString("tui.theme")
	for _, name := range names {
		marker := "  "
		if name == current && viper.GetString("tui.theme_file") == "" {
			marker = "* "
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", marker, name)
	}
	if file := viper.GetString("tui.theme_file"); file != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "* %s (theme_file)\n", file)
	}
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	data, err := styles.ExportTheme(styles.ThemeName(args[0]))
	if err != nil {
		return err
	}

	if len(args) == 1 {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(args[1], data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to %s\n", args[1])
	return nil
}
