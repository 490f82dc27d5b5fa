package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var wantSecurityHeaders = map[string]string{
	HeaderContentTypeOptions: HeaderValueNoSniff,
	HeaderFrameOptions:       HeaderValueSameOrigin,
	HeaderXSSProtection:      HeaderValueXSSBlock,
	HeaderReferrerPolicy:     HeaderValueReferrerStrictOrigin,
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handlers may not unset what the middleware wrote
		w.Header().Set(HeaderFrameOptions, "ALLOWALL")
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentTypeOptions))
	assert.Equal(t, "ALLOWALL", rec.Header().Get(HeaderFrameOptions), "handler headers win over defaults")
}

func TestSecurityHeaders_EveryRoute(t *testing.T) {
	srv, mgr := newTestServer(t, true)

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"html page", httptest.NewRequest(http.MethodGet, "/", nil)},
		{"login redirect", httptest.NewRequest(http.MethodGet, "/login", nil)},
		{"callback rejection", httptest.NewRequest(http.MethodGet, "/oauth_callback", nil)},
		{"anonymous redirect", httptest.NewRequest(http.MethodGet, "/inventory", nil)},
		{"weapons json", signedInRequest(t, mgr, "/inventory")},
		{"weapons page", signedInRequest(t, mgr, "/inventory/view")},
		{"debug token", signedInRequest(t, mgr, "/debug/token")},
		{"not found", httptest.NewRequest(http.MethodGet, "/nope", nil)},
		{"oversized body", httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", maxRequestBytes+1)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, tt.req)

			for header, want := range wantSecurityHeaders {
				assert.Equal(t, want, rec.Header().Get(header), header)
			}
		})
	}
}
