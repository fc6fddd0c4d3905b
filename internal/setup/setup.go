package setup

import (
	"context"
	"errors"
	"log"

	"github.com/maqala/maqala/internal/ai"
	aiClient "github.com/maqala/maqala/internal/ai/client"
	"github.com/maqala/maqala/internal/classifier"
	"github.com/maqala/maqala/internal/database"
	"github.com/maqala/maqala/internal/setup/config"
	"go.uber.org/zap"
)

// App bundles all core dependencies and services needed by the application.
// Each field represents a major subsystem that needs initialization and cleanup.
type App struct {
	Config     *config.Config           // Application configuration
	Logger     *zap.Logger              // Main application logger
	DBLogger   *zap.Logger              // Database-specific logger
	DB         database.Client          // Database connection pool
	AIClient   *aiClient.AIClient       // Remote classification provider, nil when not configured
	Classifier *classifier.Orchestrator // Comment classification pipeline
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, logDir string) (*App, error) {
	// Load app configuration
	cfg, configPath, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, dbLogger, err := GetLoggers(logDir, cfg.Debug.LogLevel, cfg.Debug.MaxLogsToKeep)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded configuration", zap.String("path", configPath))

	// Initialize database with migrations
	db, err := database.NewConnection(ctx, cfg, dbLogger, true)
	if err != nil {
		return nil, err
	}

	// Remote classification is optional; a missing API key leaves the
	// pipeline running on the local classifier alone
	var remote classifier.Remote

	aiCli, err := aiClient.NewClient(&cfg.OpenAI, logger)
	switch {
	case err == nil:
		analyzer := ai.NewCommentAnalyzer(aiCli.Chat(), cfg.OpenAI.CommentModel, logger)
		remote = classifier.NewRemote(analyzer)
	case errors.Is(err, aiClient.ErrProviderNotConfigured):
		logger.Info("Remote classifier not configured, using local classification only")
	default:
		return nil, err
	}

	orchestrator := classifier.NewOrchestrator(
		classifier.NewLocal(moderationRules(&cfg.Moderation)),
		remote,
		cfg.Moderation.RemoteTimeoutDuration(),
		logger,
	)

	// Bundle all initialized components
	return &App{
		Config:     cfg,
		Logger:     logger,
		DBLogger:   dbLogger,
		DB:         db,
		AIClient:   aiCli,
		Classifier: orchestrator,
	}, nil
}

// moderationRules builds the local classifier rule set from the configuration,
// keeping the defaults for anything not overridden.
func moderationRules(m *config.Moderation) classifier.Rules {
	rules := classifier.DefaultRules()

	if len(m.BannedTerms) > 0 {
		rules.BannedTerms = m.BannedTerms
	}
	if len(m.ProfanityTerms) > 0 {
		rules.ProfanityTerms = m.ProfanityTerms
	}
	if m.BannedTermPenalty > 0 {
		rules.BannedTermPenalty = m.BannedTermPenalty
	}
	if m.ProfanityPenalty > 0 {
		rules.ProfanityPenalty = m.ProfanityPenalty
	}

	return rules
}

// Cleanup ensures graceful shutdown of all components in reverse initialization order.
// Logs but does not fail on cleanup errors to ensure all components get cleanup attempts.
func (s *App) Cleanup(_ context.Context) {
	// Sync buffered logs before shutdown
	if err := s.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	if err := s.DBLogger.Sync(); err != nil {
		log.Printf("Failed to sync DB logger: %v", err)
	}

	// Close database connections
	if err := s.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}
}
