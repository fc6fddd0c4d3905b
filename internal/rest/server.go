package rest

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/maqala/maqala/internal/classifier"
	"github.com/maqala/maqala/internal/database"
	"github.com/maqala/maqala/internal/rest/handler"
	"github.com/maqala/maqala/internal/rest/middleware/auth"
	"github.com/maqala/maqala/internal/setup/config"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	commentHandler *handler.CommentHandler
	reportHandler  *handler.ReportHandler
	appealHandler  *handler.AppealHandler
	adminHandler   *handler.AdminHandler
}

// NewServer creates a new REST API server.
func NewServer(
	db database.Client, orchestrator *classifier.Orchestrator, cfg *config.Config, logger *zap.Logger,
) (http.Handler, error) {
	// Create server instance with handlers
	server := &Server{
		commentHandler: handler.NewCommentHandler(db, orchestrator, cfg.Moderation.PreferRemote, logger),
		reportHandler:  handler.NewReportHandler(db, logger),
		appealHandler:  handler.NewAppealHandler(db, logger),
		adminHandler:   handler.NewAdminHandler(db, logger),
	}

	// Create middleware instances
	authMiddleware := auth.New(db.Model().Reviewer(), logger)

	// Create base router
	router := bunrouter.New()

	// Public routes
	router.WithGroup("/v1", func(g *bunrouter.Group) {
		g.POST("/comments", server.commentHandler.SubmitComment)
		g.GET("/articles/:id/comments", server.commentHandler.GetArticleComments)
		g.POST("/comments/:id/reports", server.reportHandler.FileReport)
		g.POST("/comments/:id/appeals", server.appealHandler.FileAppeal)
	})

	// Reviewer-only routes
	router.Use(authMiddleware.AsRESTMiddleware).WithGroup("/v1/admin", func(g *bunrouter.Group) {
		g.GET("/comments", server.adminHandler.ListComments)
		g.POST("/comments/:id/status", server.adminHandler.ChangeStatus)
		g.GET("/comments/:id/log", server.adminHandler.CommentTrail)
		g.GET("/appeals", server.adminHandler.ListPendingAppeals)
		g.POST("/appeals/:id/approve", server.adminHandler.ApproveAppeal)
		g.POST("/appeals/:id/reject", server.adminHandler.RejectAppeal)
		g.GET("/moderation/accuracy", server.adminHandler.ModerationAccuracy)
	})

	// Health check for load balancers
	router.GET("/health", func(w http.ResponseWriter, req bunrouter.Request) error {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("ok"))
		return err
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router), nil
}
