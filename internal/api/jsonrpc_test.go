package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(h *JSONRPCHandler) *gin.Engine {
	engine := gin.New()
	engine.POST("/", h.Handle)
	return engine
}

func call(t *testing.T, engine *gin.Engine, body string) JSONRPCResponse {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp JSONRPCResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func performGET(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func rpcBody(t *testing.T, method string, params interface{}) string {
	t.Helper()

	req := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
	}
	if params != nil {
		req["params"] = params
	}
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return string(b)
}

func TestHandleParseError(t *testing.T) {
	engine := newTestEngine(NewJSONRPCHandler())

	resp := call(t, engine, "{not json")
	if resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != ErrParseError {
		t.Errorf("expected code %d, got %d", ErrParseError, resp.Error.Code)
	}
}

func TestHandleInvalidVersion(t *testing.T) {
	engine := newTestEngine(NewJSONRPCHandler())

	resp := call(t, engine, `{"jsonrpc":"1.0","id":1,"method":"ping"}`)
	if resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != ErrInvalidRequest {
		t.Errorf("expected code %d, got %d", ErrInvalidRequest, resp.Error.Code)
	}
}

func TestHandleMethodNotFound(t *testing.T) {
	engine := newTestEngine(NewJSONRPCHandler())

	resp := call(t, engine, rpcBody(t, "no.such.method", nil))
	if resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != ErrMethodNotFound {
		t.Errorf("expected code %d, got %d", ErrMethodNotFound, resp.Error.Code)
	}
}

func TestHandleSuccess(t *testing.T) {
	handler := NewJSONRPCHandler()
	handler.RegisterMethod("ping", func(_ *gin.Context, _ json.RawMessage) (interface{}, error) {
		return gin.H{"pong": true}, nil
	})
	engine := newTestEngine(handler)

	resp := call(t, engine, rpcBody(t, "ping", nil))
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if result["pong"] != true {
		t.Errorf("expected pong=true, got %v", result["pong"])
	}
	if resp.JSONRPC != "2.0" {
		t.Errorf("expected jsonrpc 2.0, got %q", resp.JSONRPC)
	}
}

func TestHandleAPIErrorCode(t *testing.T) {
	handler := NewJSONRPCHandler()
	handler.RegisterMethod("missing", func(_ *gin.Context, _ json.RawMessage) (interface{}, error) {
		return nil, NotFoundError("post", "42")
	})
	handler.RegisterMethod("broken", func(_ *gin.Context, _ json.RawMessage) (interface{}, error) {
		return nil, errors.New("boom")
	})
	engine := newTestEngine(handler)

	resp := call(t, engine, rpcBody(t, "missing", nil))
	if resp.Error == nil || resp.Error.Code != ErrNotFound {
		t.Fatalf("expected not-found code %d, got %+v", ErrNotFound, resp.Error)
	}

	resp = call(t, engine, rpcBody(t, "broken", nil))
	if resp.Error == nil || resp.Error.Code != ErrServerError {
		t.Fatalf("expected server error code %d, got %+v", ErrServerError, resp.Error)
	}
}
