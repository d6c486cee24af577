package server

import (
	"errors"
	"net/http"

	"github.com/KevinFernandez21/nasa2025-backend/internal/graph"
	"github.com/KevinFernandez21/nasa2025-backend/internal/service"
	"github.com/KevinFernandez21/nasa2025-backend/pkg/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultSearchLimit  = 5
	defaultInsightLimit = 5
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"database":   s.cfg.Db.Neo4jDatabase,
		"collection": s.cfg.CollectionName,
	})
}

func (s *Server) getGraph(c *gin.Context) {
	var payload types.GraphRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customQuery := ""
	if payload.Query != nil {
		customQuery = *payload.Query
	}
	limit := graph.DefaultLimit
	if payload.Limit != nil {
		limit = *payload.Limit
	}

	result, err := s.graphs.GetGraphData(c.Request.Context(), customQuery, limit)
	if err != nil {
		var queryErr *graph.QueryError
		if errors.As(err, &queryErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": queryErr.Message})
			return
		}
		s.logger.Error("graph data retrieval failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) searchDocuments(c *gin.Context) {
	var payload types.SearchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := defaultSearchLimit
	if payload.Limit != nil {
		limit = *payload.Limit
	}
	onlyFullContent := true
	if payload.OnlyFullContent != nil {
		onlyFullContent = *payload.OnlyFullContent
	}

	hits, err := s.search.SearchDocuments(c.Request.Context(), payload.Query, uint64(limit), onlyFullContent)
	if err != nil {
		s.logger.Error("document search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.SearchResponse{Items: hits})
}

func (s *Server) generateTitle(c *gin.Context) {
	var payload types.TitleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, source, err := s.titles.GenerateTitle(c.Request.Context(), payload.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("title generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.TitleResponse{Title: title, Source: source})
}

func (s *Server) generateInsight(c *gin.Context) {
	var payload types.InsightRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := defaultInsightLimit
	if payload.Limit != nil {
		limit = *payload.Limit
	}
	onlyFullContent := true
	if payload.OnlyFullContent != nil {
		onlyFullContent = *payload.OnlyFullContent
	}

	hits, err := s.search.SearchDocuments(c.Request.Context(), payload.Query, uint64(limit), onlyFullContent)
	if err != nil {
		s.logger.Error("insight search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	insight, source := s.insights.GenerateInsight(c.Request.Context(), payload.Query, hits, limit)
	references := service.References(hits, limit)

	c.JSON(http.StatusOK, types.InsightResponse{
		Insight:        insight,
		References:     references,
		PapersAnalyzed: len(references),
		Source:         source,
	})
}

func (s *Server) storePaper(c *gin.Context) {
	var payload types.PaperRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.papers.StorePaper(c.Request.Context(), payload)
	if err != nil {
		s.logger.Error("paper ingestion failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, types.PaperResponse{ID: id})
}
