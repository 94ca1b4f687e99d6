package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/service"
)

func TestMCPServer_CallToolOverInMemoryTransport(t *testing.T) {
	log, logs := newObserved()
	srv := NewMCPServer(newSearchService(t), log)
	require.NotNil(t, srv.Server())

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Server().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: service.ToolGetSearchConfig})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	assert.Equal(t, true, out["success"])

	calls := logs.FilterField(zap.String("tool", service.ToolGetSearchConfig)).All()
	require.Len(t, calls, 1)
	assert.Equal(t, "MCP request", calls[0].Message)
	assert.Equal(t, "tools/call", calls[0].ContextMap()["method"])
	assert.NotEmpty(t, calls[0].ContextMap()["request_id"])
}

func TestMCPServer_SearchFailureStaysInEnvelope(t *testing.T) {
	log, _ := newObserved()
	srv := NewMCPServer(newSearchService(t), log)

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Server().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	session, err := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil).
		Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      service.ToolWebSearch,
		Arguments: map[string]any{"query": "golang", "engine": "yahoo"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, "Unsupported search engine: yahoo")
}

func TestMCPServer_NullOptionalArguments(t *testing.T) {
	log, _ := newObserved()
	srv := NewMCPServer(newSearchService(t), log)

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Server().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	session, err := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil).
		Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	tests := []struct {
		name string
		tool string
		args map[string]any
	}{
		{"web_search engine", service.ToolWebSearch, map[string]any{"query": "golang", "engine": nil}},
		{"web_search language", service.ToolWebSearch, map[string]any{"query": "golang", "language": nil, "max_results": nil}},
		{"search_news language", service.ToolSearchNews, map[string]any{"query": "golang", "language": nil}},
		{"get_page_content format", service.ToolGetPageContent, map[string]any{"url": "ftp://example.com", "format": nil, "max_length": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: tt.tool, Arguments: tt.args})
			require.NoError(t, err)
			assert.False(t, res.IsError)
			require.NotEmpty(t, res.Content)

			var out map[string]any
			require.NoError(t, json.Unmarshal([]byte(res.Content[0].(*mcp.TextContent).Text), &out))
			assert.Contains(t, out, "success")
		})
	}
}
