package bootstrap

import (
	"context"
	"fmt"

	"calorie-planner/config"
	domainRepo "calorie-planner/internal/domain/repository"
	"calorie-planner/internal/infrastructure/cache"
	"calorie-planner/internal/infrastructure/database"
	"calorie-planner/internal/infrastructure/oauth"
	"calorie-planner/internal/infrastructure/recipeapi"
	"calorie-planner/internal/repository"
	"calorie-planner/internal/service"
	"calorie-planner/internal/usecase"
	"calorie-planner/pkg/jwt"
	"calorie-planner/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Core holds the connections and usecases shared by the HTTP server and the CLI.
type Core struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Store       domainRepo.DocumentStore
	Validator   *validator.CustomValidator
	JWTService  *jwt.JWTService

	AuthUsecase       usecase.AuthUsecase
	EstimationUsecase usecase.EstimationUsecase
	ProfileUsecase    usecase.ProfileUsecase
	SettingsUsecase   usecase.SettingsUsecase
	MealUsecase       usecase.MealUsecase
}

// NewCore connects to the configured backends and wires every usecase.
func NewCore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Core, error) {
	core := &Core{Config: cfg, Log: log}

	// Redis backs tokens, oauth state and the meal cache for every store driver
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	core.RedisClient = redisClient

	if err := core.initStore(); err != nil {
		core.Close()
		return nil, err
	}

	core.wire()
	return core, nil
}

func (c *Core) initStore() error {
	switch c.Config.Store.Driver {
	case config.StoreDriverPostgres:
		if c.Config.DB.RunMigrations {
			if err := database.RunMigrations(c.Config.DB, c.Log); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		db, err := database.NewPostgresConnection(c.Config.DB, c.Log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		c.Store = repository.NewGormDocumentStore(db)
	case config.StoreDriverRedis:
		c.Store = repository.NewRedisDocumentStore(c.RedisClient)
	case config.StoreDriverMemory:
		c.Log.Warn("Using in-memory document store, data is lost on restart")
		c.Store = repository.NewMemoryDocumentStore()
	default:
		return fmt.Errorf("unknown store driver %q", c.Config.Store.Driver)
	}

	c.Log.WithField("driver", c.Config.Store.Driver).Info("Document store initialized")
	return nil
}

func (c *Core) wire() {
	cfg := c.Config

	// Initialize JWT service
	c.JWTService = jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	c.Validator = validator.NewValidator()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(c.Store)
	credentialRepo := repository.NewCredentialRepository(c.Store)
	settingsRepo := repository.NewSettingsRepository(c.Store)
	auditLogRepo := repository.NewAuditLogRepository(c.Store)
	mealCatalog := repository.NewMealCatalog(recipeapi.NewClient(cfg.RecipeAPI), c.RedisClient, cfg.RecipeAPI.CacheTTL, c.Log)

	// Initialize services
	auditService := service.NewAuditService(c.Log, auditLogRepo)
	tokenStore := service.NewTokenStore(c.RedisClient)
	stateStore := service.NewStateStore(c.RedisClient, cfg.OAuth.StateTTL)
	providers := oauth.NewRegistryFromConfig(cfg.OAuth)

	// Initialize usecases
	c.AuthUsecase = usecase.NewAuthUsecase(c.Log, profileRepo, credentialRepo, providers, stateStore, tokenStore, auditService, c.JWTService)
	c.EstimationUsecase = usecase.NewEstimationUsecase(c.Log, c.Validator, profileRepo)
	c.ProfileUsecase = usecase.NewProfileUsecase(c.Log, profileRepo, auditService)
	c.SettingsUsecase = usecase.NewSettingsUsecase(c.Log, settingsRepo, auditService)
	c.MealUsecase = usecase.NewMealUsecase(c.Log, mealCatalog)
}

// Close closes all connections (database, redis, etc.)
func (c *Core) Close() {
	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}
}
