package cmd

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/Iron-Ham/feeflow/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "feeflow",
	Short: "Professional fee reconciliation workflow dashboard",
	Long: `feeflow shows the five-stage professional fee reconciliation
workflow in the terminal. Open a stage to read its overview, technical
document and source listing, fetched from the configured document store.

Store credentials can be set in the config file or through the
environment, e.g. FEEFLOW_STORE_URL and FEEFLOW_STORE_API_KEY. A .env
file in the working directory is loaded first.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/feeflow/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().IntVar(&startStage, "stage", 0, "open the detail view for this stage on startup (1-5)")
}

func initConfig() {
	// .env first so its values are visible to AutomaticEnv
	_ = loadDotEnv(".env")

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("FEEFLOW")
	// Replace dots with underscores for nested keys in env vars
	// e.g., FEEFLOW_STORE_API_KEY for store.api_key
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
