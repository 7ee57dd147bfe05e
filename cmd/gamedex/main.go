// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gamedex CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gamedex/internal/secrets"
	"github.com/pdiddy/gamedex/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// resolveAPIKey prefers the environment/config value and falls back to the
// .secrets/ key file.
func resolveAPIKey() string {
	if v := viper.GetString("api_key"); v != "" {
		return v
	}
	return loadedSecrets[secrets.APIKeyFile]
}

// rootCmd is the base command for the gamedex CLI.
var rootCmd = &cobra.Command{
	Use:   "gamedex",
	Short: "Look up video game metadata from the RAWG API",
	Long: `gamedex queries the RAWG video game metadata API by title and prints a
human-readable summary: name, release date, rating, description, and
background image URL. One invocation performs one lookup.

The RAWG API key comes from the RAWG_API_KEY environment variable or the
.secrets/rawg-api-key file. A .env file in the working directory is loaded
when present.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		s, err := secrets.Load(secrets.DefaultDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gamedex.yaml or ~/.config/gamedex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gamedex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gamedex"))
		}
	}

	viper.BindEnv("api_key", "RAWG_API_KEY")
	viper.BindEnv("developer_mode", "DEVELOPER_MODE")
	viper.BindEnv("request_timeout", "REQUEST_TIMEOUT")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gamedex: %v\n", err)
		os.Exit(types.ExitCode(err))
	}
}
