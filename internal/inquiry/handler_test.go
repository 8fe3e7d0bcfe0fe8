package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driveline/internal/logger"
	"driveline/pkg/quota"
)

type fakeLimiter struct {
	admit bool
	err   error
}

func (f fakeLimiter) Admit(_ context.Context, _ string) (bool, error) {
	return f.admit, f.err
}

func newTestRouter(sender *fakeSender, limiter quota.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	svc := NewService(sender, logger.NopLogger())
	handler := NewHandler(svc, limiter, logger.NopLogger())
	handler.RegisterRoutes(router)

	return router
}

func postInquiry(router *gin.Engine, body interface{}, addr string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", &buf)
	req.Header.Set("Content-Type", "application/json")
	if addr != "" {
		req.Header.Set("X-Forwarded-For", addr)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitEndpointSuccess(t *testing.T) {
	sender := &fakeSender{configured: true, id: "msg_777"}
	router := newTestRouter(sender, fakeLimiter{admit: true})

	w := postInquiry(router, validRequest(), "203.0.113.9")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "msg_777", resp.MessageID)
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, 1, sender.calls)
}

func TestSubmitEndpointRateLimited(t *testing.T) {
	sender := &fakeSender{configured: true}
	router := newTestRouter(sender, fakeLimiter{admit: false})

	w := postInquiry(router, validRequest(), "203.0.113.9")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RATE_LIMITED", resp["error_code"])
	assert.NotEmpty(t, resp["error"])
	assert.Equal(t, 0, sender.calls)
}

func TestSubmitEndpointQuotaFailsOpen(t *testing.T) {
	sender := &fakeSender{configured: true, id: "msg_1"}
	router := newTestRouter(sender, fakeLimiter{admit: false, err: fmt.Errorf("store down")})

	w := postInquiry(router, validRequest(), "203.0.113.9")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, sender.calls)
}

func TestSubmitEndpointMalformedBody(t *testing.T) {
	sender := &fakeSender{configured: true}
	router := newTestRouter(sender, fakeLimiter{admit: true})

	w := postInquiry(router, `{"name": `, "203.0.113.9")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, sender.calls)
}

func TestSubmitEndpointMissingFields(t *testing.T) {
	sender := &fakeSender{configured: true}
	router := newTestRouter(sender, fakeLimiter{admit: true})

	w := postInquiry(router, SubmitRequest{Email: "jane@example.com"}, "203.0.113.9")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MISSING_FIELD", resp["error_code"])
	assert.Contains(t, resp["error"], "name")
	assert.Contains(t, resp["error"], "country")
	assert.Equal(t, 0, sender.calls)
}

func TestSubmitEndpointInvalidEmail(t *testing.T) {
	sender := &fakeSender{configured: true}
	router := newTestRouter(sender, fakeLimiter{admit: true})

	req := validRequest()
	req.Email = "not-an-email"

	w := postInquiry(router, req, "203.0.113.9")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_EMAIL", resp["error_code"])
}

func TestSubmitEndpointHoneypot(t *testing.T) {
	sender := &fakeSender{configured: true}
	router := newTestRouter(sender, fakeLimiter{admit: true})

	req := validRequest()
	req.Honeypot = "gotcha"

	w := postInquiry(router, req, "203.0.113.9")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.MessageID)
	assert.Equal(t, 0, sender.calls)
}

func TestSubmitEndpointProviderFailure(t *testing.T) {
	sender := &fakeSender{configured: true, err: fmt.Errorf("provider down")}
	router := newTestRouter(sender, fakeLimiter{admit: true})

	w := postInquiry(router, validRequest(), "203.0.113.9")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PROVIDER_ERROR", resp["error_code"])
	assert.Contains(t, resp["error"], "WhatsApp")
	assert.NotContains(t, resp["error"], "provider down", "provider detail must not leak")
}

func TestSubmitEndpointNotConfigured(t *testing.T) {
	sender := &fakeSender{configured: false}
	router := newTestRouter(sender, fakeLimiter{admit: true})

	w := postInquiry(router, validRequest(), "203.0.113.9")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_CONFIGURED", resp["error_code"])
	assert.Equal(t, 0, sender.calls)
}

func TestSubmitEndpointQuotaPerAddress(t *testing.T) {
	now := time.Unix(1700000000, 0)
	store := quota.NewMemoryStore(
		quota.Config{Limit: 5, Window: time.Hour},
		quota.WithClock(func() time.Time { return now }),
	)

	sender := &fakeSender{configured: true, id: "msg_1"}
	router := newTestRouter(sender, store)

	for i := 0; i < 5; i++ {
		w := postInquiry(router, validRequest(), "203.0.113.9")
		require.Equal(t, http.StatusOK, w.Code, "request %d should be admitted", i+1)
	}

	w := postInquiry(router, validRequest(), "203.0.113.9")
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "6th request within the hour")

	w = postInquiry(router, validRequest(), "198.51.100.4")
	assert.Equal(t, http.StatusOK, w.Code, "different address keeps its own window")
}

func TestClientAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		forwarded string
		want      string
	}{
		{
			name:      "single forwarded address",
			forwarded: "203.0.113.9",
			want:      "203.0.113.9",
		},
		{
			name:      "forwarded chain uses first hop",
			forwarded: "203.0.113.9, 10.0.0.1, 10.0.0.2",
			want:      "203.0.113.9",
		},
		{
			name:      "padded entry is trimmed",
			forwarded: "  203.0.113.9  ",
			want:      "203.0.113.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", nil)
			c.Request.Header.Set("X-Forwarded-For", tt.forwarded)
			assert.Equal(t, tt.want, clientAddress(c))
		})
	}
}
