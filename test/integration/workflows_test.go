//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/xinca/pkg/xinca"
	"github.com/fivetwenty-io/xinca/pkg/xincaclient"
)

// TestWorkflow_ReadOnlyResources lists every readable resource
func TestWorkflow_ReadOnlyResources(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	listers := map[string]xinca.Lister{
		"apps":     client.Apps(),
		"dep":      client.DEP(),
		"devices":  client.Devices(),
		"profiles": client.Profiles(),
		"users":    client.Users(),
		"groups":   client.Groups(),
		"ibeacons": client.IBeacons(),
	}

	for name, lister := range listers {
		t.Run(name, func(t *testing.T) {
			records, err := lister.List(ctx, nil)
			require.NoError(t, err)
			assert.NotNil(t, records)
		})
	}
}

// TestWorkflow_WrongCredentials checks the server rejects a bad password
func TestWorkflow_WrongCredentials(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client, err := xincaclient.NewWithPassword(config.Server, config.Username, config.Password+"-wrong")
	require.NoError(t, err)

	_, err = client.Profiles().List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, xinca.IsAuthentication(err) || xinca.IsUnexpectedRedirect(err), "unexpected error: %v", err)
}

// TestWorkflow_UserJourney creates, updates and deletes a user and a group
func TestWorkflow_UserJourney(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfReadOnly(t)

	client := config.NewClient(t)
	ctx := context.Background()

	userName := GenerateTestName("workflow-user")

	user, err := client.Users().Create(ctx, url.Values{
		"username":  {userName},
		"email":     {userName + "@workflow.test"},
		"firstName": {"Workflow"},
		"lastName":  {"User"},
	}, nil)
	require.NoError(t, err)

	userID := fmt.Sprint(user["id"])

	defer func() {
		_ = client.Users().Delete(ctx, userID)
	}()

	group, err := client.Groups().Create(ctx, url.Values{
		"name":      {GenerateTestName("workflow-group")},
		"members[]": {userID},
	}, nil)
	require.NoError(t, err)

	groupID := fmt.Sprint(group["id"])

	defer func() {
		_ = client.Groups().Delete(ctx, groupID)
	}()

	_, err = client.Users().Update(ctx, userID, url.Values{"lastName": {"Updated"}}, nil)
	require.NoError(t, err)

	fetched, err := client.Users().Get(ctx, userID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Updated", fetched["lastName"])

	require.NoError(t, client.Groups().Delete(ctx, groupID))
	require.NoError(t, client.Users().Delete(ctx, userID))

	_, err = client.Users().Get(ctx, userID, nil)
	require.Error(t, err)
	assert.True(t, xinca.IsNotFound(err), "unexpected error: %v", err)
}

// TestWorkflow_OutputFormats tests all CLI output formats work correctly
func TestWorkflow_OutputFormats(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfMissingBinary(t)

	runner := NewCommandRunner(config, t)

	for _, format := range []string{"json", "yaml", "table"} {
		t.Run(format, func(t *testing.T) {
			stdout, stderr, err := runner.Run("profiles", "list", "--output", format)
			require.NoError(t, err, "Failed to list profiles as %s: %s", format, stderr)

			switch format {
			case "json":
				AssertJSONOutput(t, stdout)
			case "yaml":
				AssertYAMLOutput(t, stdout)
			}
		})
	}
}

// TestWorkflow_CLIUserJourney drives the same lifecycle through the binary
func TestWorkflow_CLIUserJourney(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfMissingBinary(t)
	config.SkipIfReadOnly(t)

	runner := NewCommandRunner(config, t)
	userName := GenerateTestName("cli-user")

	stdout, stderr, err := runner.Run("users", "create",
		"--field", "username="+userName,
		"--field", "email="+userName+"@workflow.test",
		"--output", "json")
	require.NoError(t, err, "Failed to create user: %s", stderr)

	var created map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &created))

	userID := fmt.Sprint(created["id"])
	defer runner.CleanupRecord("users", userID)

	stdout, stderr, err = runner.Run("users", "get", userID, "--output", "yaml")
	require.NoError(t, err, "Failed to get user: %s", stderr)
	assert.Contains(t, stdout, userName)

	stdout, stderr, err = runner.Run("users", "delete", userID)
	require.NoError(t, err, "Failed to delete user: %s", stderr)
	assert.Contains(t, stdout, userID)
}
