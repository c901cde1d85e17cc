package spokehttp

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"lgsmfleet/hub/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spokeFor(t *testing.T, srv *httptest.Server) domain.Spoke {
	t.Helper()
	host, port, err := net.SplitHostPort(srv.Listener.Addr().String())
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return domain.Spoke{ID: 1, Name: "box", IP: host, Port: p, APIKey: "spoke-key"}
}

func TestStatusProbe_Status(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		body     string
		wantCode int
	}{
		{name: "online", code: http.StatusOK, body: `{"status":"online","sessions":[]}`, wantCode: 200},
		{name: "server error is an answer", code: http.StatusInternalServerError, body: `{"error":{}}`, wantCode: 500},
		{name: "unauthorized is an answer", code: http.StatusUnauthorized, body: ``, wantCode: 401},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/status", r.URL.Path)
				assert.Equal(t, "spoke-key", r.Header.Get("X-API-KEY"))
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			res, err := NewStatusProbe(srv.Client()).Status(context.Background(), spokeFor(t, srv))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, res.StatusCode)
			assert.Equal(t, tt.body, string(res.Body))
		})
	}
}

func TestStatusProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	s := spokeFor(t, srv)
	srv.Close()

	_, err := NewStatusProbe(&http.Client{}).Status(context.Background(), s)
	assert.Error(t, err)
}

func TestStatusProbe_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewStatusProbe(srv.Client()).Status(ctx, spokeFor(t, srv))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewStatusProbe_PanicsOnNilClient(t *testing.T) {
	assert.PanicsWithValue(t, "spokehttp.probe.go: http client is required", func() { NewStatusProbe(nil) })
}
