package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names
const (
	ToolWebSearch       = "web_search"
	ToolGetSearchConfig = "get_search_config"
	ToolSearchNews      = "search_news"
	ToolGetPageContent  = "get_page_content"
)

// RegisterTools adds the four search tools to server
func (s *SearchService) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: ToolWebSearch,
		Description: "Search the web with Bing, Google or Baidu. Bing and Google fall back to Baidu " +
			"when their API keys are missing or the call fails; the engine field names the provider that answered.",
	}, s.webSearchTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolGetSearchConfig,
		Description: "Show the default search engine, supported engines and which API keys are configured.",
	}, s.searchConfigTool)

	mcp.AddTool(server, &mcp.Tool{
		Name: ToolSearchNews,
		Description: "Search recent news articles. Uses NewsAPI when NEWS_API_KEY is set, otherwise a " +
			"news-biased web search on the default engine.",
	}, s.searchNewsTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolGetPageContent,
		Description: "Fetch a web page and return its readable text, truncated to max_length characters.",
	}, s.pageContentTool)
}

func (s *SearchService) webSearchTool(ctx context.Context, _ *mcp.CallToolRequest, in WebSearchRequest) (*mcp.CallToolResult, any, error) {
	return toolResult(s.WebSearch(ctx, &in))
}

func (s *SearchService) searchConfigTool(ctx context.Context, _ *mcp.CallToolRequest, _ SearchConfigRequest) (*mcp.CallToolResult, any, error) {
	return toolResult(s.GetSearchConfig(ctx))
}

func (s *SearchService) searchNewsTool(ctx context.Context, _ *mcp.CallToolRequest, in NewsSearchRequest) (*mcp.CallToolResult, any, error) {
	return toolResult(s.SearchNews(ctx, &in))
}

func (s *SearchService) pageContentTool(ctx context.Context, _ *mcp.CallToolRequest, in PageContentRequest) (*mcp.CallToolResult, any, error) {
	return toolResult(s.GetPageContent(ctx, &in))
}

// toolResult returns the envelope as a JSON text block and as structured content
func toolResult(envelope any) (*mcp.CallToolResult, any, error) {
	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, envelope, nil
}
