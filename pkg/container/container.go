package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"recitation-backend/internal/config"
	"recitation-backend/internal/infrastructure/database"
	"recitation-backend/internal/infrastructure/session"
	"recitation-backend/pkg/jwt"

	"recitation-backend/internal/domains/audiorequest"
	audioRequestHandler "recitation-backend/internal/domains/audiorequest/handler"
	audioRequestRepo "recitation-backend/internal/domains/audiorequest/repository"
	audioRequestService "recitation-backend/internal/domains/audiorequest/service"
	"recitation-backend/internal/domains/corpus"
	corpusHandler "recitation-backend/internal/domains/corpus/handler"
	corpusRepo "recitation-backend/internal/domains/corpus/repository"
	corpusService "recitation-backend/internal/domains/corpus/service"
	"recitation-backend/internal/domains/project"
	projectHandler "recitation-backend/internal/domains/project/handler"
	projectRepo "recitation-backend/internal/domains/project/repository"
	projectService "recitation-backend/internal/domains/project/service"
	"recitation-backend/internal/domains/tag"
	tagHandler "recitation-backend/internal/domains/tag/handler"
	tagRepo "recitation-backend/internal/domains/tag/repository"
	tagService "recitation-backend/internal/domains/tag/service"
	"recitation-backend/internal/domains/user"
	userHandler "recitation-backend/internal/domains/user/handler"
	userRepo "recitation-backend/internal/domains/user/repository"
	userService "recitation-backend/internal/domains/user/service"
	"recitation-backend/internal/domains/versetag"
	verseTagHandler "recitation-backend/internal/domains/versetag/handler"
	verseTagRepo "recitation-backend/internal/domains/versetag/repository"
	verseTagService "recitation-backend/internal/domains/versetag/service"
	"recitation-backend/internal/domains/voice"
	voiceHandler "recitation-backend/internal/domains/voice/handler"
	voiceRepo "recitation-backend/internal/domains/voice/repository"
	voiceService "recitation-backend/internal/domains/voice/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Every component is a
// singleton built once at startup, in dependency order.
type Container struct {
	// Infrastructure, shared across all domains.
	Config     *config.Config
	DB         *database.PostgresDB
	Sessions   *session.RevocationStore
	JWTManager *jwt.Manager

	// Repositories.
	UserRepo         user.Repository
	VoiceRepo        voice.Repository
	TagRepo          tag.Repository
	CorpusRepo       corpus.Repository
	ProjectRepo      project.Repository
	AudioRequestRepo audiorequest.Repository
	VerseTagRepo     versetag.Repository

	// Services.
	UserService         user.Service
	VoiceService        voice.Service
	TagService          tag.Service
	CorpusService       corpus.Service
	ProjectService      project.Service
	AudioRequestService audiorequest.Service
	VerseTagService     versetag.Service

	// Handlers.
	UserHandler         *userHandler.UserHandler
	VoiceHandler        *voiceHandler.VoiceHandler
	TagHandler          *tagHandler.TagHandler
	CorpusHandler       *corpusHandler.CorpusHandler
	ProjectHandler      *projectHandler.ProjectHandler
	AudioRequestHandler *audioRequestHandler.AudioRequestHandler
	VerseTagHandler     *verseTagHandler.VerseTagHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the full dependency graph:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE SESSION STORE AND TOKENS
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Revoked JTIs live exactly as long as the token would have.
	sessions := session.NewRevocationStore(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
		c.JWTManager.Expiry(),
	)
	if err := sessions.Connect(context.Background()); err != nil {
		// Without the revocation store, logout cannot invalidate tokens.
		// Tokens still expire on their own, so startup continues.
		log.Printf("⚠️  Redis connection failed (logout revocation degraded): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}
	c.Sessions = sessions

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.VoiceRepo = voiceRepo.NewPostgresRepository(pool)
	c.TagRepo = tagRepo.NewPostgresRepository(pool)
	c.CorpusRepo = corpusRepo.NewPostgresRepository(pool)
	c.ProjectRepo = projectRepo.NewPostgresRepository(pool)
	c.AudioRequestRepo = audioRequestRepo.NewPostgresRepository(pool)
	c.VerseTagRepo = verseTagRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Sessions)
	c.VoiceService = voiceService.NewVoiceService(c.VoiceRepo)
	c.TagService = tagService.NewTagService(c.TagRepo)
	c.CorpusService = corpusService.NewCorpusService(c.CorpusRepo)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo)

	// Sub-resource services resolve the parent project themselves so every
	// operation re-verifies the ownership chain.
	c.AudioRequestService = audioRequestService.NewAudioRequestService(c.AudioRequestRepo, c.ProjectService)
	c.VerseTagService = verseTagService.NewVerseTagService(c.VerseTagRepo, c.ProjectService)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.VoiceHandler = voiceHandler.NewVoiceHandler(c.VoiceService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
	c.CorpusHandler = corpusHandler.NewCorpusHandler(c.CorpusService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.AudioRequestHandler = audioRequestHandler.NewAudioRequestHandler(c.AudioRequestService)
	c.VerseTagHandler = verseTagHandler.NewVerseTagHandler(c.VerseTagService)
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup releases container resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Sessions != nil {
		if err := c.Sessions.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
