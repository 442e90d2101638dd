package server

import (
	"bufio"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ironsheep/floorplan-mcp/internal/config"
)

// newTestServer returns a server with fixed configuration, independent of
// the environment.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(&config.Config{
		LogLevel:        "info",
		MinRegionPixels: 1500,
		OCRWhitelist:    "0123456789",
		OCRLanguage:     "eng",
		OCRTimeout:      5 * time.Second,
		MaxPixels:       40_000_000,
		OCRMinWidth:     1600,
	})
}

func TestNew(t *testing.T) {
	s := newTestServer(t)
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.digitizer == nil {
		t.Fatal("New() did not initialize digitizer")
	}
}

func TestNew_NilConfig(t *testing.T) {
	t.Setenv(config.EnvMinRegionPixels, "42")

	s := New(nil)
	if s.cfg.MinRegionPixels != 42 {
		t.Errorf("config should come from the environment, got %d", s.cfg.MinRegionPixels)
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
		})
	}
}

func TestMCPError_Marshal(t *testing.T) {
	mcpErr := MCPError{
		Code:    -32000,
		Message: "Tool execution failed",
		Data:    "footprint not found",
	}

	data, err := json.Marshal(mcpErr)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded MCPError
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if decoded.Code != -32000 || decoded.Data != "footprint not found" {
		t.Errorf("got %+v", decoded)
	}
}

func TestHandleRequest(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      MCPRequest
		wantNil  bool
		wantCode int
	}{
		{"initialize", MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"}, false, 0},
		{"ping", MCPRequest{JSONRPC: "2.0", ID: "ping-1", Method: "ping"}, false, 0},
		{"tools/list", MCPRequest{JSONRPC: "2.0", ID: 2, Method: "tools/list"}, false, 0},
		{"notification", MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"}, true, 0},
		{"unknown method", MCPRequest{JSONRPC: "2.0", ID: 3, Method: "nonexistent/method"}, false, -32601},
		{"bad params", MCPRequest{JSONRPC: "2.0", ID: 4, Method: "tools/call", Params: json.RawMessage(`[1,2]`)}, false, -32602},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.handleRequest(ctx, &tt.req)
			if tt.wantNil {
				if resp != nil {
					t.Errorf("expected no response, got %+v", resp)
				}
				return
			}
			if resp == nil {
				t.Fatal("handleRequest returned nil")
			}
			if resp.ID != tt.req.ID {
				t.Errorf("ID: got %v, want %v", resp.ID, tt.req.ID)
			}
			if tt.wantCode == 0 && resp.Error != nil {
				t.Fatalf("Unexpected error: %+v", resp.Error)
			}
			if tt.wantCode != 0 && (resp.Error == nil || resp.Error.Code != tt.wantCode) {
				t.Errorf("Error: got %+v, want code %d", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestHandleInitialize(t *testing.T) {
	s := newTestServer(t)
	s.SetVersion("1.2.3")

	resp := s.handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "floorplan-mcp" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != "1.2.3" {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}
}

func TestServe(t *testing.T) {
	s := newTestServer(t)

	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}`,
	}, "\n")

	var out strings.Builder
	if err := s.Serve(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	var responses []MCPResponse
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var resp MCPResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response line %q: %v", scanner.Text(), err)
		}
		responses = append(responses, resp)
	}

	if len(responses) != 3 {
		t.Fatalf("got %d responses, want 3", len(responses))
	}
	if responses[2].Error == nil || responses[2].Error.Code != -32000 {
		t.Errorf("unknown tool should fail with -32000, got %+v", responses[2].Error)
	}
}

func TestServe_Cancelled(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	err := s.Serve(ctx, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &out)
	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("no response expected after cancellation, got %q", out.String())
	}
}
