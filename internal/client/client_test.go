package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/xinca/internal/client"
	"github.com/fivetwenty-io/xinca/internal/mdmtest"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, xinca.ErrConfigRequired)
	})

	t.Run("requires credentials or session", func(t *testing.T) {
		t.Parallel()

		for _, config := range []*xinca.Config{
			{},
			{Username: "admin"},
			{Password: "secret"},
		} {
			_, err := New(config)
			require.ErrorIs(t, err, xinca.ErrInvalidConfig)
			require.ErrorIs(t, err, xinca.ErrCredentialsRequired)
		}
	})

	t.Run("makes no request when credentials are missing", func(t *testing.T) {
		t.Parallel()

		server := mdmtest.NewServer()
		defer server.Close()

		_, err := New(&xinca.Config{Server: server.URL, Username: "admin"})
		require.Error(t, err)
		assert.Empty(t, server.Requests())
	})

	t.Run("defaults the server", func(t *testing.T) {
		t.Parallel()

		client, err := New(&xinca.Config{Username: "admin", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "https://apiv6.xincamdm.com", client.Server())
		assert.Equal(t, "Xinca MDM API - Server: https://apiv6.xincamdm.com", client.String())
	})

	t.Run("normalizes the server", func(t *testing.T) {
		t.Parallel()

		client, err := New(&xinca.Config{Server: "mdm.example.com/", Username: "admin", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "https://mdm.example.com", client.Server())
	})

	t.Run("rejects an invalid server", func(t *testing.T) {
		t.Parallel()

		_, err := New(&xinca.Config{Server: "https://bad host", Username: "admin", Password: "secret"})
		require.ErrorIs(t, err, xinca.ErrInvalidConfig)
	})

	t.Run("rejects a negative timeout", func(t *testing.T) {
		t.Parallel()

		_, err := New(&xinca.Config{Username: "admin", Password: "secret", Timeout: -time.Second})
		require.ErrorIs(t, err, xinca.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "Timeout")
	})

	t.Run("accepts a prepared session", func(t *testing.T) {
		t.Parallel()

		client, err := New(&xinca.Config{Session: http.DefaultClient})
		require.NoError(t, err)
		assert.NotNil(t, client.Devices())
	})

	t.Run("rejects a nil session pointer", func(t *testing.T) {
		t.Parallel()

		var session *http.Client

		_, err := New(&xinca.Config{Session: session, Username: "admin", Password: "secret"})
		require.ErrorIs(t, err, xinca.ErrInvalidConfig)
		require.ErrorIs(t, err, xinca.ErrNilSession)
	})

	t.Run("does not mutate config", func(t *testing.T) {
		t.Parallel()

		config := &xinca.Config{Server: "mdm.example.com/", Username: "admin", Password: "secret"}
		_, err := New(config)
		require.NoError(t, err)
		assert.Equal(t, "mdm.example.com/", config.Server)
	})
}

func TestNew_InsecureSkipVerify(t *testing.T) {
	t.Run("rejected outside dev mode", func(t *testing.T) {
		t.Setenv("XINCA_DEV_MODE", "")

		_, err := New(&xinca.Config{Username: "admin", Password: "secret", InsecureSkipVerify: true})
		require.ErrorIs(t, err, xinca.ErrSkipTLSOnlyInDev)
	})

	t.Run("allowed in dev mode", func(t *testing.T) {
		t.Setenv("XINCA_DEV_MODE", "true")

		server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client, err := New(&xinca.Config{Server: server.URL, Username: "admin", Password: "secret", InsecureSkipVerify: true})
		require.NoError(t, err)

		_, err = client.Profiles().List(context.Background(), nil)
		require.NoError(t, err)
	})

	t.Run("verifies certificates by default", func(t *testing.T) {
		server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client, err := New(&xinca.Config{Server: server.URL, Username: "admin", Password: "secret"})
		require.NoError(t, err)

		_, err = client.Profiles().List(context.Background(), nil)
		require.Error(t, err)
	})
}

func TestClient_SendsBasicCredentials(t *testing.T) {
	t.Parallel()

	server := mdmtest.NewServer(mdmtest.WithCredentials("admin", "secret"))
	defer server.Close()

	client, err := New(&xinca.Config{Server: server.URL, Username: "admin", Password: "secret"})
	require.NoError(t, err)

	_, err = client.Devices().List(context.Background(), nil)
	require.NoError(t, err)

	wrong, err := New(&xinca.Config{Server: server.URL, Username: "admin", Password: "wrong"})
	require.NoError(t, err)

	_, err = wrong.Devices().List(context.Background(), nil)
	require.ErrorIs(t, err, xinca.ErrAuthentication)
	assert.True(t, xinca.IsAuthentication(err))
	assert.Equal(t, http.StatusUnauthorized, xinca.StatusCode(err))
}

func TestClient_Verbs(t *testing.T) {
	t.Parallel()

	server := mdmtest.NewServer()
	defer server.Close()

	client := NewTestClient(server.URL, server.Client())
	ctx := context.Background()

	resp, err := client.Post(ctx, "/ibeacons", nil, map[string][]string{"name": {"lobby"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	record, err := resp.Record()
	require.NoError(t, err)

	id, ok := record["id"].(string)
	require.True(t, ok)

	_, err = client.Put(ctx, "/ibeacons/"+id, nil, map[string][]string{"name": {"hall"}})
	require.NoError(t, err)

	resp, err = client.Get(ctx, "/ibeacons/"+id, nil)
	require.NoError(t, err)

	record, err = resp.Record()
	require.NoError(t, err)
	assert.Equal(t, "hall", record["name"])

	require.NoError(t, client.Delete(ctx, "/ibeacons/"+id))
}
