package server

import (
	"context"

	"github.com/KevinFernandez21/nasa2025-backend/internal/graph"
	"github.com/KevinFernandez21/nasa2025-backend/pkg/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GraphDataProvider is the graph gateway capability consumed by POST /graph.
type GraphDataProvider interface {
	GetGraphData(ctx context.Context, customQuery string, limit int) (*graph.Result, error)
}

type DocumentSearcher interface {
	SearchDocuments(ctx context.Context, query string, limit uint64, onlyFullContent bool) ([]types.DocumentHit, error)
}

type TitleGenerator interface {
	GenerateTitle(ctx context.Context, text string) (title string, source string, err error)
}

type InsightGenerator interface {
	GenerateInsight(ctx context.Context, query string, papers []types.DocumentHit, maxPapers int) (insight string, source string)
}

type PaperStore interface {
	StorePaper(ctx context.Context, paper types.PaperRequest) (string, error)
}

// Server wires the services to the HTTP routes.
type Server struct {
	graphs   GraphDataProvider
	search   DocumentSearcher
	titles   TitleGenerator
	insights InsightGenerator
	papers   PaperStore
	cfg      types.Config
	logger   *zap.Logger
}

func New(
	graphs GraphDataProvider,
	search DocumentSearcher,
	titles TitleGenerator,
	insights InsightGenerator,
	papers PaperStore,
	cfg types.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		graphs:   graphs,
		search:   search,
		titles:   titles,
		insights: insights,
		papers:   papers,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)
	r.POST("/graph", s.getGraph)
	r.POST("/search", s.searchDocuments)
	r.POST("/title", s.generateTitle)
	r.POST("/insight", s.generateInsight)
	r.POST("/papers", s.storePaper)
}
