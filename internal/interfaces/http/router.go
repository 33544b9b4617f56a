package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"seedfund/internal/application/account/services"
	accountUC "seedfund/internal/application/account/usecases"
	contentUC "seedfund/internal/application/content/usecases"
	projectUC "seedfund/internal/application/project/usecases"
	"seedfund/internal/infrastructure/auth"
	"seedfund/internal/infrastructure/config"
	"seedfund/internal/infrastructure/email"
	"seedfund/internal/infrastructure/ratelimit"
	"seedfund/internal/infrastructure/repository"
	"seedfund/internal/infrastructure/token"
	"seedfund/internal/interfaces/http/handlers"
	"seedfund/internal/interfaces/http/middleware"
	"seedfund/internal/shared/authorization"
	"seedfund/internal/shared/db"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/services/markdown"
)

// Router assembles the HTTP surface: handlers, middleware, and routes.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	accountHandler *handlers.AccountHandler
	adminHandler   *handlers.AdminHandler
	projectHandler *handlers.ProjectHandler
	contentHandler *handlers.ContentHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    ratelimit.RateLimiter
	cfg            *config.Config
	logger         logger.Interface
}

// jwtServiceAdapter bridges the infrastructure JWT service to the token pair
// shape the application layer declares.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(accountID uint, email string, role authorization.Role) (*accountUC.TokenPair, error) {
	pair, err := a.JWTService.Generate(accountID, email, role)
	if err != nil {
		return nil, err
	}
	return &accountUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) Refresh(refreshToken string) (*accountUC.TokenPair, error) {
	pair, err := a.JWTService.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return &accountUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// oauthClientAdapter converts the provider-neutral identity struct between
// the infrastructure and application layers.
type oauthClientAdapter struct {
	provider auth.OAuthProvider
}

func (a *oauthClientAdapter) GetAuthURL(state string) string {
	return a.provider.GetAuthURL(state)
}

func (a *oauthClientAdapter) ExchangeCode(ctx context.Context, code string) (string, error) {
	return a.provider.ExchangeCode(ctx, code)
}

func (a *oauthClientAdapter) GetUserInfo(ctx context.Context, accessToken string) (*accountUC.OAuthUserInfo, error) {
	info, err := a.provider.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return &accountUC.OAuthUserInfo{
		Email:         info.Email,
		FirstName:     info.FirstName,
		LastName:      info.LastName,
		Picture:       info.Picture,
		EmailVerified: info.EmailVerified,
		Provider:      info.Provider,
		ProviderID:    info.ProviderID,
	}, nil
}

type oauthManagerAdapter struct {
	manager *auth.OAuthManager
}

func (a *oauthManagerAdapter) GetClient(provider string) (accountUC.OAuthClient, error) {
	p, err := a.manager.GetProvider(provider)
	if err != nil {
		return nil, err
	}
	return &oauthClientAdapter{provider: p}, nil
}

// NewRouter wires repositories, services, use cases and handlers.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	accountRepo := repository.NewAccountRepository(database)
	authMethodRepo := repository.NewAuthMethodRepository(database)
	otpRepo := repository.NewOTPRepository(database)
	stateTokenRepo := repository.NewStateTokenRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	investmentRepo := repository.NewInvestmentRepository(database)
	articleRepo := repository.NewArticleRepository(database)

	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(
		cfg.Auth.JWT.AccessSecret,
		cfg.Auth.JWT.RefreshSecret,
		cfg.Auth.JWT.AccessExpHours,
		cfg.Auth.JWT.RefreshExpDays,
	)
	jwtService := &jwtServiceAdapter{jwtSvc}

	emailService := email.NewSMTPEmailService(cfg.Email)

	oauthManager := auth.NewOAuthManager(&cfg.OAuth, log.Named("oauth"))
	oauthResolver := &oauthManagerAdapter{manager: oauthManager}
	stateGen := token.NewStateGenerator()

	otpEngine := services.NewOTPEngine(otpRepo, emailService, services.OTPEngineConfig{
		TTL:          time.Duration(cfg.Auth.OTP.TTLMinutes) * time.Minute,
		ResendWindow: time.Duration(cfg.Auth.OTP.ResendWindowMin) * time.Minute,
	}, log.Named("otp"))

	renderer := markdown.NewService()

	// account use cases
	signupUC := accountUC.NewSignupUseCase(accountRepo, authMethodRepo, otpEngine, hasher, txManager, log)
	loginUC := accountUC.NewLoginUseCase(accountRepo, authMethodRepo, otpEngine, hasher, jwtService, log)
	requestLoginOTPUC := accountUC.NewRequestLoginOTPUseCase(accountRepo, otpEngine, log)
	verifyEmailUC := accountUC.NewVerifyEmailUseCase(accountRepo, otpEngine, log)
	resendVerificationUC := accountUC.NewResendVerificationUseCase(accountRepo, otpEngine, log)
	requestResetUC := accountUC.NewRequestPasswordResetUseCase(accountRepo, otpEngine, log)
	resetPasswordUC := accountUC.NewResetPasswordUseCase(accountRepo, authMethodRepo, otpEngine, hasher, emailService, txManager, log)
	refreshTokenUC := accountUC.NewRefreshTokenUseCase(jwtService, log)
	initiateOAuthUC := accountUC.NewInitiateOAuthLoginUseCase(
		stateTokenRepo, oauthResolver, stateGen,
		time.Duration(cfg.Auth.OTP.StateTokenTTLMin)*time.Minute, log,
	)
	handleOAuthUC := accountUC.NewHandleOAuthCallbackUseCase(
		accountRepo, authMethodRepo, stateTokenRepo, oauthResolver, jwtService, txManager, log,
	)
	updateProfileUC := accountUC.NewUpdateProfileUseCase(accountRepo, log)
	selectRoleUC := accountUC.NewSelectRoleUseCase(accountRepo, log)
	resubmitUC := accountUC.NewResubmitApplicationUseCase(accountRepo, log)
	changePasswordUC := accountUC.NewChangePasswordUseCase(accountRepo, hasher, emailService, log)
	listAuthMethodsUC := accountUC.NewListAuthMethodsUseCase(authMethodRepo, log)
	setPrimaryMethodUC := accountUC.NewSetPrimaryAuthMethodUseCase(authMethodRepo, log)
	unlinkMethodUC := accountUC.NewUnlinkAuthMethodUseCase(authMethodRepo, log)
	listPendingUC := accountUC.NewListPendingAccountsUseCase(accountRepo, log)
	approveUC := accountUC.NewApproveAccountUseCase(accountRepo, log)
	rejectUC := accountUC.NewRejectAccountUseCase(accountRepo, log)

	// project use cases
	createProjectUC := projectUC.NewCreateProjectUseCase(projectRepo, accountRepo, log)
	publishProjectUC := projectUC.NewPublishProjectUseCase(projectRepo, log)
	listProjectsUC := projectUC.NewListProjectsUseCase(projectRepo, log)
	getProjectUC := projectUC.NewGetProjectUseCase(projectRepo, investmentRepo, log)
	investUC := projectUC.NewInvestUseCase(projectRepo, investmentRepo, accountRepo, txManager, log)
	rateProjectUC := projectUC.NewRateProjectUseCase(projectRepo, investmentRepo, accountRepo, log)
	toggleWatchlistUC := projectUC.NewToggleWatchlistUseCase(projectRepo, investmentRepo, log)
	listWatchlistUC := projectUC.NewListWatchlistUseCase(investmentRepo, log)
	listInvestmentsUC := projectUC.NewListInvestmentsUseCase(investmentRepo, log)

	// content use cases
	createArticleUC := contentUC.NewCreateArticleUseCase(articleRepo, log)
	updateArticleUC := contentUC.NewUpdateArticleUseCase(articleRepo, log)
	getArticleUC := contentUC.NewGetArticleUseCase(articleRepo, renderer, log)
	listArticlesUC := contentUC.NewListArticlesUseCase(articleRepo, log)

	authHandler := handlers.NewAuthHandler(
		signupUC, loginUC, requestLoginOTPUC, verifyEmailUC, resendVerificationUC,
		requestResetUC, resetPasswordUC, refreshTokenUC, initiateOAuthUC, handleOAuthUC,
		log.Named("auth"),
	)
	accountHandler := handlers.NewAccountHandler(
		updateProfileUC, selectRoleUC, resubmitUC, changePasswordUC,
		listAuthMethodsUC, setPrimaryMethodUC, unlinkMethodUC, accountRepo,
		log.Named("account"),
	)
	adminHandler := handlers.NewAdminHandler(listPendingUC, approveUC, rejectUC, log.Named("admin"))
	projectHandler := handlers.NewProjectHandler(
		createProjectUC, publishProjectUC, listProjectsUC, getProjectUC,
		investUC, rateProjectUC, toggleWatchlistUC, listWatchlistUC, listInvestmentsUC,
		log.Named("project"),
	)
	contentHandler := handlers.NewContentHandler(
		createArticleUC, updateArticleUC, getArticleUC, listArticlesUC,
		log.Named("content"),
	)

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		accountHandler: accountHandler,
		adminHandler:   adminHandler,
		projectHandler: projectHandler,
		contentHandler: contentHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
		rateLimiter:    ratelimit.NewRedisRateLimiter(redisClient),
		cfg:            cfg,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	otpLimit := ratelimit.RateLimitConfig{RequestsPerMinute: 3, RequestsPerHour: 20}
	loginLimit := ratelimit.RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 100}

	authGroup := r.engine.Group("/auth")
	{
		authGroup.POST("/signup", middleware.RateLimit(r.rateLimiter, "signup", loginLimit, r.logger), r.authHandler.Signup)
		authGroup.POST("/login", middleware.RateLimit(r.rateLimiter, "login", loginLimit, r.logger), r.authHandler.Login)
		authGroup.POST("/login/otp", middleware.RateLimit(r.rateLimiter, "otp", otpLimit, r.logger), r.authHandler.RequestLoginOTP)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/resend-verification", middleware.RateLimit(r.rateLimiter, "otp", otpLimit, r.logger), r.authHandler.ResendVerification)
		authGroup.POST("/forgot-password", middleware.RateLimit(r.rateLimiter, "otp", otpLimit, r.logger), r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)

		authGroup.GET("/oauth/:provider", r.authHandler.InitiateOAuth)
		authGroup.GET("/oauth/:provider/callback", r.authHandler.OAuthCallback)
	}

	accountGroup := r.engine.Group("/account")
	accountGroup.Use(r.authMiddleware.RequireAuth())
	{
		accountGroup.GET("/me", r.accountHandler.GetMe)
		accountGroup.PUT("/profile", r.accountHandler.UpdateProfile)
		accountGroup.POST("/role", r.accountHandler.SelectRole)
		accountGroup.POST("/resubmit", r.accountHandler.ResubmitApplication)
		accountGroup.POST("/change-password", r.accountHandler.ChangePassword)
		accountGroup.GET("/auth-methods", r.accountHandler.ListAuthMethods)
		accountGroup.POST("/auth-methods/primary", r.accountHandler.SetPrimaryAuthMethod)
		accountGroup.POST("/auth-methods/unlink", r.accountHandler.UnlinkAuthMethod)
	}

	adminGroup := r.engine.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		adminGroup.GET("/accounts/pending", r.adminHandler.ListPendingAccounts)
		adminGroup.POST("/accounts/:id/approve", r.adminHandler.ApproveAccount)
		adminGroup.POST("/accounts/:id/reject", r.adminHandler.RejectAccount)
	}

	projectGroup := r.engine.Group("/projects")
	{
		projectGroup.GET("", r.projectHandler.ListProjects)
		projectGroup.GET("/:id", r.projectHandler.GetProject)

		authed := projectGroup.Group("")
		authed.Use(r.authMiddleware.RequireAuth())
		{
			authed.POST("", r.projectHandler.CreateProject)
			authed.POST("/:id/publish", r.projectHandler.PublishProject)
			authed.POST("/:id/invest", r.projectHandler.Invest)
			authed.POST("/:id/rate", r.projectHandler.RateProject)
			authed.POST("/:id/watchlist", r.projectHandler.ToggleWatchlist)
		}
	}

	meGroup := r.engine.Group("/me")
	meGroup.Use(r.authMiddleware.RequireAuth())
	{
		meGroup.GET("/investments", r.projectHandler.ListInvestments)
		meGroup.GET("/watchlist", r.projectHandler.ListWatchlist)
	}

	contentGroup := r.engine.Group("/articles")
	{
		contentGroup.GET("", r.authMiddleware.OptionalAuth(), r.contentHandler.ListArticles)
		contentGroup.GET("/:slug", r.authMiddleware.OptionalAuth(), r.contentHandler.GetArticle)

		authed := contentGroup.Group("")
		authed.Use(r.authMiddleware.RequireAuth())
		{
			authed.POST("", r.contentHandler.CreateArticle)
			authed.PUT("/:slug", r.contentHandler.UpdateArticle)
		}
	}
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
