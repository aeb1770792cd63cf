package main

import (
	"context"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/inkpost/backend/internal/config"
	"github.com/inkpost/backend/internal/db"
	"github.com/inkpost/backend/internal/handler"
	"github.com/inkpost/backend/internal/logger"
	"github.com/inkpost/backend/internal/service"
)

// @title Inkpost API
// @version 1.0
// @description User and article CRUD API with JWT authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	logger.Init()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	hasher := service.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := service.NewTokenService(cfg.Auth)
	authSvc := service.NewAuthService(repo, hasher, tokens)
	userSvc := service.NewUserService(repo)
	articleSvc := service.NewArticleService(repo)

	router := newRouter(repo, tokens, authSvc, userSvc, articleSvc)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newRouter(
	repo *db.Postgres,
	tokens *service.TokenService,
	authSvc *service.AuthService,
	userSvc *service.UserService,
	articleSvc *service.ArticleService,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger(), handler.CORSMiddleware())

	healthHandler := handler.NewHealthHandler(repo)
	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	articleHandler := handler.NewArticleHandler(articleSvc)

	router.GET("/", healthHandler.Check)
	router.GET("/health", healthHandler.Check)
	router.GET("/health/detailed", healthHandler.CheckDetailed)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", handler.RequireAuth(tokens), authHandler.Me)

	users := api.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", handler.RequireAuth(tokens), userHandler.Update)
	users.DELETE("/:id", handler.RequireAuth(tokens), userHandler.Delete)

	articles := api.Group("/articles")
	articles.GET("", handler.OptionalAuth(tokens), articleHandler.List)
	articles.GET("/:id", handler.OptionalAuth(tokens), articleHandler.Get)
	articles.POST("", handler.RequireAuth(tokens), articleHandler.Create)
	articles.PUT("/:id", handler.RequireAuth(tokens), articleHandler.Update)
	articles.DELETE("/:id", handler.RequireAuth(tokens), articleHandler.Delete)

	return router
}
