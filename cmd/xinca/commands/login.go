package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/xinca/internal/constants"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Login to a Xinca MDM server",
		Long:  "Verify API credentials against the server and save them to the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := viper.GetString("server")
			username := viper.GetString("username")
			password := viper.GetString("password")

			reader := bufio.NewReader(cmd.InOrStdin())

			if username == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "Username: ")
				line, _ := reader.ReadString('\n')
				username = strings.TrimSpace(line)
			}

			if password == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "Password: ")

				secret, err := readPassword(reader)
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = secret
			}

			if username == "" || password == "" {
				return constants.ErrNoCredentials
			}

			client, err := createClient(server, username, password)
			if err != nil {
				return err
			}

			// Any authenticated read proves the credentials
			_, err = client.Profiles().List(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			config := loadConfig()
			config.Server = client.Server()
			config.Username = username
			config.Password = password

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", client.Server(), username)

			return nil
		},
	}
}

// readPassword reads without echo from a terminal, or a line otherwise.
func readPassword(reader *bufio.Reader) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Println()

		if err != nil {
			return "", err
		}

		return string(secret), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
