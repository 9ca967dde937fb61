package legiscan

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/legis-cli/internal/logger"
)

const testKey = "test-secret-key"

// newTestClient starts a server answering every request with handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{APIKey: testKey, BaseURL: srv.URL})
	require.NoError(t, err)
	return client, srv
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNewClient_MissingKey(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "https://api.example.test"})
	assert.ErrorIs(t, err, domain.ErrMissingCredential)

	_, err = NewClient(Config{APIKey: "   "})
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Config{APIKey: testKey, BaseURL: "not a url"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewClient(Config{APIKey: testKey, RequestsPerSecond: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfig_Defaults(t *testing.T) {
	cfg := ConfigFromSettings(domain.APISettings{Key: testKey})
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.DefaultBaseURL, cfg.BaseURL)
}

func TestRequest_BuildsQuery(t *testing.T) {
	var got url.Values
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		got = r.URL.Query()
		respond(http.StatusOK, `{"status":"OK","bill":{"bill_id":1234}}`)(w, r)
	})

	payload, err := client.Request(context.Background(), driven.OpGetBill, driven.Params{"id": 1234})
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, testKey, got.Get("key"))
	assert.Equal(t, "getBill", got.Get("op"))
	assert.Equal(t, "1234", got.Get("id"))
	assert.True(t, payload.Has("bill"))
	assert.Equal(t, domain.StatusOK, payload.Status())
}

func TestRequest_StringifiesParams(t *testing.T) {
	var got url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		respond(http.StatusOK, `{"status":"OK"}`)(w, r)
	})

	_, err := client.Request(context.Background(), driven.OpSearch, driven.Params{
		"state": "KS",
		"query": "school finance",
		"year":  2,
	})
	require.NoError(t, err)

	assert.Equal(t, "KS", got.Get("state"))
	assert.Equal(t, "school finance", got.Get("query"))
	assert.Equal(t, "2", got.Get("year"))
}

func TestRequest_Non2xxIsTransportError(t *testing.T) {
	client, _ := newTestClient(t, respond(http.StatusServiceUnavailable, "upstream maintenance"))

	_, err := client.Request(context.Background(), driven.OpGetSessionList, driven.Params{"state": "KS"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)

	var te *domain.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
	assert.Equal(t, "upstream maintenance", te.Body)
	assert.Equal(t, "getSessionList", te.Operation)
}

func TestRequest_InvalidJSONIsTransportError(t *testing.T) {
	client, _ := newTestClient(t, respond(http.StatusOK, "<html>not json</html>"))

	_, err := client.Request(context.Background(), driven.OpGetBill, driven.Params{"id": 1})
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.NotErrorIs(t, err, domain.ErrAPIStatus)
}

func TestRequest_StatusNotOKIsAPIStatusError(t *testing.T) {
	body := `{"status":"ERROR","alert":{"message":"Unknown bill id: 99"}}`
	client, _ := newTestClient(t, respond(http.StatusOK, body))

	_, err := client.Request(context.Background(), driven.OpGetBill, driven.Params{"id": 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAPIStatus)
	assert.NotErrorIs(t, err, domain.ErrTransport)

	var se *domain.APIStatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "ERROR", se.Status)
	assert.Equal(t, "Unknown bill id: 99", se.Payload.AlertMessage())
	assert.Contains(t, err.Error(), "Unknown bill id: 99")
}

func TestRequest_MissingStatusIsAPIStatusError(t *testing.T) {
	client, _ := newTestClient(t, respond(http.StatusOK, `{"sessions":[]}`))

	_, err := client.Request(context.Background(), driven.OpGetSessionList, nil)

	var se *domain.APIStatusError
	require.ErrorAs(t, err, &se)
	assert.Empty(t, se.Status)
	assert.True(t, se.Payload.Has("sessions"))
}

func TestRequest_NetworkFailureIsTransportError(t *testing.T) {
	client, srv := newTestClient(t, respond(http.StatusOK, `{"status":"OK"}`))
	srv.Close()

	_, err := client.Request(context.Background(), driven.OpGetBill, driven.Params{"id": 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)

	var te *domain.TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.StatusCode)
	assert.NotNil(t, te.Err)
}

func TestRequest_CancelledContext(t *testing.T) {
	client, _ := newTestClient(t, respond(http.StatusOK, `{"status":"OK"}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Request(ctx, driven.OpGetBill, driven.Params{"id": 1})
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRequest_NeverRetries(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		respond(http.StatusBadGateway, "bad gateway")(w, r)
	})

	_, err := client.Request(context.Background(), driven.OpGetMasterList, driven.Params{"id": 2100})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRequest_Throttled(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		respond(http.StatusOK, `{"status":"OK"}`)(w, r)
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: testKey, BaseURL: srv.URL, RequestsPerSecond: 1000})
	require.NoError(t, err)
	require.NotNil(t, client.limiter)

	for range 3 {
		_, err := client.Request(context.Background(), driven.OpGetBill, driven.Params{"id": 1})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestRequest_LogsWithoutCredential(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	client, _ := newTestClient(t, respond(http.StatusOK, `{"status":"OK"}`))
	_, err := client.Request(context.Background(), driven.OpGetBill, driven.Params{"id": 42})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "op=getBill")
	assert.Contains(t, out, "request_id=")
	assert.NotContains(t, out, testKey)
}
