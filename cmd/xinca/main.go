package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/xinca/cmd/xinca/commands"
	"github.com/fivetwenty-io/xinca/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "xinca",
	Short: "Xinca MDM API CLI",
	Long: `A command-line interface for the Xinca MDM API.

Every resource exposes exactly the operations the server supports: apps,
profiles and devices are read-only (devices can also be deleted), enrollment
program records can be updated, and users, groups and iBeacons support the
full create, read, update and delete cycle.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.xinca/config.yml)")
	rootCmd.PersistentFlags().StringP("server", "s", "", "API server URL (default "+constants.DefaultServer+")")
	rootCmd.PersistentFlags().StringP("username", "u", "", "API username")
	rootCmd.PersistentFlags().StringP("password", "p", "", "API password")
	rootCmd.PersistentFlags().Duration("timeout", constants.DefaultHTTPTimeout, "request timeout")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	for _, name := range []string{"config", "server", "username", "password", "timeout", "output", "verbose"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewAppsCommand())
	rootCmd.AddCommand(commands.NewDEPCommand())
	rootCmd.AddCommand(commands.NewDevicesCommand())
	rootCmd.AddCommand(commands.NewProfilesCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewGroupsCommand())
	rootCmd.AddCommand(commands.NewIBeaconsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.xinca/config.yml
		viper.AddConfigPath(filepath.Join(home, ".xinca"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
