package commands

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
	"github.com/fivetwenty-io/xinca/pkg/xincaclient"
)

// createClientFromConfig builds a client from flags, environment and the
// config file, in that order of precedence.
func createClientFromConfig() (xinca.Client, error) {
	username := viper.GetString("username")
	password := viper.GetString("password")

	if username == "" || password == "" {
		return nil, constants.ErrNoCredentials
	}

	return createClient(viper.GetString("server"), username, password)
}

func createClient(server, username, password string) (xinca.Client, error) {
	config := &xinca.Config{
		Server:   server,
		Username: username,
		Password: password,
		Timeout:  viper.GetDuration("timeout"),
	}

	if viper.GetBool("verbose") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		config.Logger = xinca.NewSlogLogger(slog.New(handler))
		config.Debug = true
	}

	client, err := xincaclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// parseKeyValues turns KEY=VALUE pairs into url.Values. Repeated keys
// accumulate.
func parseKeyValues(pairs []string) (url.Values, error) {
	values := make(url.Values, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidKeyValue, pair)
		}

		values.Add(key, value)
	}

	return values, nil
}

// callFlags holds the per-call options shared by every resource subcommand.
type callFlags struct {
	params  []string
	headers []string
	path    string
}

func (f *callFlags) query() (url.Values, error) {
	if len(f.params) == 0 {
		return nil, nil
	}

	return parseKeyValues(f.params)
}

func (f *callFlags) options() ([]xinca.CallOptions, error) {
	if f.path == "" && len(f.headers) == 0 {
		return nil, nil
	}

	opts := xinca.CallOptions{Path: f.path}

	if len(f.headers) > 0 {
		headers, err := parseKeyValues(f.headers)
		if err != nil {
			return nil, err
		}

		opts.Headers = make(map[string]string, len(headers))
		for key := range headers {
			opts.Headers[key] = headers.Get(key)
		}
	}

	return []xinca.CallOptions{opts}, nil
}
