package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"medialist/api/internal/cache"
	"medialist/api/internal/config"
	"medialist/api/internal/middleware"
	"medialist/api/internal/repository"
	"medialist/api/internal/service"
)

type HandlerSet struct {
	log       zerolog.Logger
	cfg       *config.AppConfig
	auth      *service.Authenticator
	accounts  *service.AccountService
	favorites *service.FavoriteService
	avatars   *service.AvatarService
	db        *pgxpool.Pool
	cache     *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, redisClient *redis.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	avatarCache := cache.NewAvatarCache(redisClient, cfg.Avatar.CacheTTL, log)

	auth := service.NewAuthenticator(userRepo, tokenRepo, cfg.Security.JWTSecret, log)
	accounts := service.NewAccountService(userRepo, favoriteRepo, auth, avatarCache, log)
	favorites := service.NewFavoriteService(favoriteRepo, log)
	avatars := service.NewAvatarService(userRepo, avatarCache, cfg.Avatar.MaxUploadBytes, log)

	return HandlerSet{
		log:       log,
		cfg:       cfg,
		auth:      auth,
		accounts:  accounts,
		favorites: favorites,
		avatars:   avatars,
		db:        db,
		cache:     redisClient,
	}
}

func (h HandlerSet) Register(router gin.IRouter) {
	router.GET("/healthz", h.Health)

	router.POST("/user", h.RegisterAccount)
	router.POST("/user/login", h.Login)
	router.GET("/user/:id/avatar", h.GetAvatar)

	protected := router.Group("/user", middleware.Auth(h.auth))
	protected.POST("/logout", h.Logout)
	protected.POST("/logoutAll", h.LogoutAll)
	protected.GET("/me", h.Me)
	protected.DELETE("/delete", h.DeleteAccount)
	protected.PATCH("/:id", h.UpdateAccount)

	protected.POST("/fav", h.AddFavorite)
	protected.POST("/get/fav", h.ListFavorites)
	protected.DELETE("/remove/fav", h.RemoveFavorite)

	protected.POST("/me/avatar", h.UploadAvatar)
	protected.DELETE("/me/avatar", h.ClearAvatar)
}
