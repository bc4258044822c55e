package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 2 * time.Second},
		userAgent:  "marvin/test",
	}
}

// unreachableURL returns a base URL nothing listens on. The listener is
// closed immediately so connections are refused instead of hanging.
func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()
	return url
}

func TestClientDo_FirstCandidateServes(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("second candidate must not be contacted when the first serves")
	}))
	defer second.Close()

	resp, err := newTestClient().Do(context.Background(), Request{
		Method:     http.MethodGet,
		Path:       "/todayItems",
		Candidates: []string{srv.URL, second.URL},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, srv.URL, resp.Endpoint)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClientDo_FallsBackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("created"))
	}))
	defer srv.Close()

	resp, err := newTestClient().Do(context.Background(), Request{
		Method:      http.MethodPost,
		Path:        "/addTask",
		Body:        []byte("Buy milk"),
		ContentType: "text/plain",
		Candidates:  []string{unreachableURL(t), srv.URL},
	})
	require.NoError(t, err)

	assert.Equal(t, "created", string(resp.Body))
	assert.Equal(t, srv.URL, resp.Endpoint, "response must be tagged with the endpoint that served it")
}

func TestClientDo_HTTPErrorStopsFallback(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such item", http.StatusNotFound)
	}))
	defer first.Close()

	var secondHits int32
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&secondHits, 1)
		w.Write([]byte("should never be seen"))
	}))
	defer second.Close()

	_, err := newTestClient().Do(context.Background(), Request{
		Method:     http.MethodGet,
		Path:       "/doc/abc",
		Candidates: []string{first.URL, second.URL},
	})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, first.URL, statusErr.Endpoint)
	assert.Contains(t, statusErr.Body, "no such item")

	assert.Equal(t, int32(0), atomic.LoadInt32(&secondHits),
		"an HTTP response, whatever its status, must end the fallback chain")
}

func TestClientDo_ServerErrorStopsFallback(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer first.Close()

	var secondHits int32
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&secondHits, 1)
	}))
	defer second.Close()

	_, err := newTestClient().Do(context.Background(), Request{
		Method:     http.MethodPost,
		Path:       "/addTask",
		Body:       []byte("x"),
		Candidates: []string{first.URL, second.URL},
	})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, int32(0), atomic.LoadInt32(&secondHits),
		"a 5xx is still a response; the request must not run twice")
}

func TestClientDo_AllCandidatesUnreachable(t *testing.T) {
	_, err := newTestClient().Do(context.Background(), Request{
		Method:     http.MethodGet,
		Path:       "/todayItems",
		Candidates: []string{unreachableURL(t), unreachableURL(t)},
	})
	require.Error(t, err)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, ConnectionErrorNetwork, connErr.Type)
}

func TestClientDo_LastErrorNamesLastEndpoint(t *testing.T) {
	first := unreachableURL(t)
	second := unreachableURL(t)

	_, err := newTestClient().Do(context.Background(), Request{
		Method:     http.MethodGet,
		Path:       "/todayItems",
		Candidates: []string{first, second},
	})

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, second, connErr.Endpoint)
}

func TestClientDo_NoCandidates(t *testing.T) {
	_, err := newTestClient().Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/todayItems",
	})
	assert.Error(t, err)
}

func TestClientDo_RequestShape(t *testing.T) {
	var got *http.Request
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := newTestClient().Do(context.Background(), Request{
		Method:      http.MethodPost,
		Path:        "/addTask",
		Query:       url.Values{"date": []string{"2026-08-22"}},
		Body:        []byte(`{"title":"Buy milk"}`),
		ContentType: "application/json",
		Candidates:  []string{srv.URL},
		Credential:  Credential{Header: HeaderAPIToken, Token: "tok-123"},
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "/addTask", got.URL.Path)
	assert.Equal(t, "2026-08-22", got.URL.Query().Get("date"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "tok-123", got.Header.Get(HeaderAPIToken))
	assert.Empty(t, got.Header.Get(HeaderFullAccessToken))
	assert.Equal(t, "marvin/test", got.Header.Get("User-Agent"))
	assert.NotEmpty(t, got.Header.Get(HeaderRequestID))
	assert.Equal(t, `{"title":"Buy milk"}`, gotBody)
}

func TestClientDo_FullAccessHeader(t *testing.T) {
	var header http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	_, err := newTestClient().Do(context.Background(), Request{
		Method:     http.MethodGet,
		Path:       "/doc/abc123",
		Candidates: []string{srv.URL},
		Credential: Credential{Header: HeaderFullAccessToken, Token: "full-tok"},
	})
	require.NoError(t, err)

	assert.Equal(t, "full-tok", header.Get(HeaderFullAccessToken))
	assert.Empty(t, header.Get(HeaderAPIToken))
}

func TestClientDo_SameRequestIDAcrossFallback(t *testing.T) {
	var second http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		second = r.Header.Clone()
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := newTestClient().Do(context.Background(), Request{
		Method:     http.MethodGet,
		Path:       "/tracking",
		Candidates: []string{unreachableURL(t), srv.URL},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, second.Get(HeaderRequestID),
		"the correlation id survives into the fallback attempt")
}

func TestClientDo_TimeoutTreatedAsTransportFailure(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("too late"))
	}))
	defer slow.Close()

	fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("served"))
	}))
	defer fast.Close()

	client := &Client{
		httpClient: &http.Client{Timeout: 50 * time.Millisecond},
		userAgent:  "marvin/test",
	}

	resp, err := client.Do(context.Background(), Request{
		Method:     http.MethodGet,
		Path:       "/todayItems",
		Candidates: []string{slow.URL, fast.URL},
	})
	require.NoError(t, err, "a timed-out candidate must fall through to the next")
	assert.Equal(t, "served", string(resp.Body))
}

func TestClientDo_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := newTestClient().Do(ctx, Request{
		Method:     http.MethodGet,
		Path:       "/todayItems",
		Candidates: []string{srv.URL},
	})
	assert.Error(t, err)
}

func TestResponseDecodeJSON(t *testing.T) {
	resp := &Response{
		Body:     []byte(`[{"_id":"t1","title":"Buy milk"}]`),
		Endpoint: "http://localhost:12345/api",
	}

	var items []map[string]any
	require.NoError(t, resp.DecodeJSON(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0]["title"])

	resp.Body = []byte("not json")
	assert.Error(t, resp.DecodeJSON(&items))
}
