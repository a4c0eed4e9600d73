package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/coderadar/internal/client"
	"github.com/sevigo/coderadar/internal/version"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:     "coderadar-cli",
	Short:   "coderadar-cli is the command-line client for the CodeRadar review service.",
	Long:    `A CLI for talking to a running CodeRadar backend: check that it is up and submit code for an AI review.`,
	Version: version.Version,
	// main prints the error once, in color.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", client.DefaultBaseURL, "Base URL of the CodeRadar backend")

	if err := viper.BindPFlag("SERVER_URL", rootCmd.PersistentFlags().Lookup("server")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("CR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newClient builds an API client for the configured server. The flag wins
// over CR_SERVER_URL.
func newClient(opts ...client.Option) *client.Client {
	return client.New(viper.GetString("SERVER_URL"), opts...)
}
