package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/xinca/internal/constants"
)

// Config represents the CLI configuration file.
type Config struct {
	Server   string `json:"server,omitempty"   yaml:"server,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	Timeout  string `json:"timeout,omitempty"  yaml:"timeout,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the xinca configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the password masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Password != "" {
				config.Password = constants.MaskedSecret
			}

			return displayConfig(cmd.OutOrStdout(), config)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of server, username, password, timeout or output in the configuration file",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			viper.Set(key, value)

			if key == "password" {
				value = constants.MaskedSecret
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)

			return nil
		},
	}
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	config := &Config{
		Server:   viper.GetString("server"),
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
		Output:   viper.GetString("output"),
	}

	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		config.Timeout = timeout.String()
	}

	return config
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "server":
		config.Server = value
	case "username":
		config.Username = value
	case "password":
		config.Password = value
	case "timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}

		config.Timeout = timeout.String()
	case "output":
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath returns the file in use, or $HOME/.xinca/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".xinca", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displayConfig(w io.Writer, config *Config) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(config)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		return encoder.Encode(config)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	_ = table.Append([]string{"Server", valueOr(config.Server, constants.DefaultServer+" (default)")})
	_ = table.Append([]string{"Username", config.Username})
	_ = table.Append([]string{"Password", config.Password})
	_ = table.Append([]string{"Timeout", config.Timeout})
	_ = table.Append([]string{"Output", config.Output})

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
