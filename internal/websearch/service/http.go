package service

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/lk2023060901/websearch-mcp/internal/pkg/errors"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/response"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/extract"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// HandleWebSearch serves web_search over HTTP. Failed envelopes map to error codes.
func (s *SearchService) HandleWebSearch(c *gin.Context) {
	var req WebSearchRequest
	if err := c.ShouldBind(&req); err != nil {
		s.logger.Warn("invalid web search request", zap.Error(err))
		response.HandleError(c, apperrors.NewInvalidParamsError(err))
		return
	}

	resp := s.WebSearch(c.Request.Context(), &req)
	if !resp.Success {
		response.ErrorWithCode(c, searchErrorCode(resp.Err), resp.Error)
		return
	}
	response.Success(c, resp)
}

func (s *SearchService) HandleSearchNews(c *gin.Context) {
	var req NewsSearchRequest
	if err := c.ShouldBind(&req); err != nil {
		s.logger.Warn("invalid news search request", zap.Error(err))
		response.HandleError(c, apperrors.NewInvalidParamsError(err))
		return
	}

	resp := s.SearchNews(c.Request.Context(), &req)
	if !resp.Success {
		response.ErrorWithCode(c, searchErrorCode(resp.Err), resp.Error)
		return
	}
	response.Success(c, resp)
}

func (s *SearchService) HandleGetSearchConfig(c *gin.Context) {
	response.Success(c, s.GetSearchConfig(c.Request.Context()))
}

func (s *SearchService) HandleGetPageContent(c *gin.Context) {
	var req PageContentRequest
	if err := c.ShouldBind(&req); err != nil {
		s.logger.Warn("invalid page content request", zap.Error(err))
		response.HandleError(c, apperrors.NewInvalidParamsError(err))
		return
	}
	if _, err := extract.NormalizeFormat(stringOr(req.Format)); err != nil {
		response.HandleError(c, apperrors.NewInvalidParamsError(err))
		return
	}

	page := s.GetPageContent(c.Request.Context(), &req)
	if !page.Success {
		response.ErrorWithCode(c, apperrors.ErrPageFetchFailed, page.Error)
		return
	}
	response.Success(c, page)
}

// searchErrorCode classifies the cause of a failed search
func searchErrorCode(err error) int {
	switch {
	case errors.Is(err, types.ErrEmptyQuery):
		return apperrors.ErrSearchEmptyQuery
	case errors.Is(err, types.ErrUnsupportedEngine):
		return apperrors.ErrSearchUnsupportedEngine
	default:
		return apperrors.ErrSearchFailed
	}
}

func (s *SearchService) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", s.HandleWebSearch)
	r.POST("/search", s.HandleWebSearch)
	r.GET("/news", s.HandleSearchNews)
	r.POST("/news", s.HandleSearchNews)
	r.GET("/page", s.HandleGetPageContent)
	r.POST("/page", s.HandleGetPageContent)
	r.GET("/config", s.HandleGetSearchConfig)
}
