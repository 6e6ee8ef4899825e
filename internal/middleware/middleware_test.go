package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/sheetledger/internal/auth"
	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/pkg/api"
)

type ping struct {
	Caller string `json:"caller"`
}

const (
	privateProcedure = "/test.v1.TestService/Private"
	publicProcedure  = "/test.v1.TestService/Public"
	missingProcedure = "/test.v1.TestService/Missing"
	brokenProcedure  = "/test.v1.TestService/Broken"
)

// newServer serves two procedures that echo the caller's user ID, one that
// fails with not_found and one that fails with internal.
func newServer(t *testing.T, interceptors ...connect.Interceptor) string {
	t.Helper()

	echo := func(ctx context.Context, _ *connect.Request[ping]) (*connect.Response[ping], error) {
		return connect.NewResponse(&ping{Caller: GetUserID(ctx).String()}), nil
	}
	opts := []connect.HandlerOption{connect.WithCodec(api.JSONCodec{}), connect.WithInterceptors(interceptors...)}

	mux := http.NewServeMux()
	mux.Handle(privateProcedure, connect.NewUnaryHandler(privateProcedure, echo, opts...))
	mux.Handle(publicProcedure, connect.NewUnaryHandler(publicProcedure, echo, opts...))
	mux.Handle(missingProcedure, connect.NewUnaryHandler(missingProcedure,
		func(context.Context, *connect.Request[ping]) (*connect.Response[ping], error) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("no such sheet"))
		}, opts...))
	mux.Handle(brokenProcedure, connect.NewUnaryHandler(brokenProcedure,
		func(context.Context, *connect.Request[ping]) (*connect.Response[ping], error) {
			return nil, connect.NewError(connect.CodeInternal, errors.New("internal error"))
		}, opts...))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

func call(t *testing.T, url, procedure, token string) (*connect.Response[ping], error) {
	t.Helper()
	client := connect.NewClient[ping, ping](http.DefaultClient, url+procedure, connect.WithCodec(api.JSONCodec{}))
	req := connect.NewRequest(&ping{})
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return client.CallUnary(context.Background(), req)
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	url := newServer(t, RequireAuth(jwtManager, func(p string) bool { return p == publicProcedure }))

	user := models.NewUser("ada@example.com", "Ada", "", "", 0)
	token, err := jwtManager.Generate(user)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		resp, err := call(t, url, privateProcedure, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.Msg.Caller)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := call(t, url, privateProcedure, "")
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("bad token", func(t *testing.T) {
		_, err := call(t, url, privateProcedure, "garbage")
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("public procedure", func(t *testing.T) {
		resp, err := call(t, url, publicProcedure, "")
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil.String(), resp.Msg.Caller)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"bearer abc", "abc", nil},
		{"", "", auth.ErrMissingToken},
		{"Basic abc", "", auth.ErrInvalidToken},
		{"Bearer", "", auth.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := bearerToken(tt.header)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	url := newServer(t, metrics.Interceptor(), RequireAuth(jwtManager, nil))

	_, _ = call(t, url, privateProcedure, "")
	_, _ = call(t, url, privateProcedure, "")

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(privateProcedure, "unauthenticated")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.duration))
}

// syncBuffer is written by the server goroutine and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return bytes.Clone(b.buf.Bytes())
}

func TestLoggingInterceptor(t *testing.T) {
	var buf syncBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	url := newServer(t, RequireAuth(jwtManager, nil), LoggingInterceptor(logger))

	user := models.NewUser("ada@example.com", "Ada", "", "", 0)
	token, err := jwtManager.Generate(user)
	require.NoError(t, err)

	_, err = call(t, url, privateProcedure, token)
	require.NoError(t, err)
	_, err = call(t, url, missingProcedure, token)
	require.Error(t, err)
	_, err = call(t, url, brokenProcedure, token)
	require.Error(t, err)

	var records []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var record map[string]any
		require.NoError(t, json.Unmarshal(line, &record))
		records = append(records, record)
	}
	require.Len(t, records, 3)

	tests := []struct {
		procedure string
		level     string
		code      any
	}{
		{privateProcedure, "INFO", nil},
		{missingProcedure, "WARN", "not_found"},
		{brokenProcedure, "ERROR", "internal"},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.procedure, records[i]["procedure"])
		assert.Equal(t, tt.level, records[i]["level"])
		assert.Equal(t, tt.code, records[i]["code"])
		assert.Equal(t, user.ID.String(), records[i]["user_id"])
	}
}
