//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/xinca/pkg/xinca"
	"github.com/fivetwenty-io/xinca/pkg/xincaclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Server     string
	Username   string
	Password   string
	XincaPath  string
	Verbose    bool
	AllowWrite bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Server:     os.Getenv("XINCA_SERVER"),
		Username:   os.Getenv("XINCA_USERNAME"),
		Password:   os.Getenv("XINCA_PASSWORD"),
		XincaPath:  getXincaPath(),
		Verbose:    os.Getenv("XINCA_VERBOSE") == "true",
		AllowWrite: os.Getenv("XINCA_ALLOW_WRITE") == "true",
	}
}

// getXincaPath determines the path to the xinca binary
func getXincaPath() string {
	if path := os.Getenv("XINCA_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../xinca",
		"./xinca",
		"../xinca",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "xinca"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Server == "" || config.Username == "" || config.Password == "" {
		t.Skip("XINCA_SERVER, XINCA_USERNAME or XINCA_PASSWORD not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the xinca binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.XincaPath); err != nil {
		t.Skipf("xinca binary not found at %s, skipping integration test", config.XincaPath)
	}
}

// SkipIfReadOnly skips tests that create or delete records
func (config *TestConfig) SkipIfReadOnly(t *testing.T) {
	t.Helper()

	if !config.AllowWrite {
		t.Skip("XINCA_ALLOW_WRITE not set, skipping test that modifies server state")
	}
}

// NewClient creates a library client from the test configuration
func (config *TestConfig) NewClient(t *testing.T) xinca.Client {
	t.Helper()

	client, err := xincaclient.NewWithPassword(config.Server, config.Username, config.Password)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// CommandRunner provides utilities for running xinca commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a xinca command and returns output. Credentials reach the
// binary through the inherited XINCA_* environment.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.XincaPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.XincaPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test record name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupRecord attempts to delete a test record
func (runner *CommandRunner) CleanupRecord(resource, id string) {
	stdout, stderr, err := runner.Run(resource, "delete", id)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resource, id, stdout, stderr)
	}
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded any
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Errorf("Output does not appear to be YAML: %v\n%s", err, output)
	}
}
