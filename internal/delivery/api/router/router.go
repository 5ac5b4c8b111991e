// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"apikit/internal/delivery/api/middleware"
	"apikit/internal/delivery/api/router/handler"
	"apikit/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserController      *handler.UserController
	MessageController   *handler.MessageController
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth      *handler.AuthHandler
	users     *handler.UserController
	messages  *handler.MessageController
	health    *handler.HealthHandler
	authMW    *middleware.AuthMiddleware
	rateLimit *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:      params.AuthHandler,
		users:     params.UserController,
		messages:  params.MessageController,
		health:    params.HealthHandler,
		authMW:    params.AuthMiddleware,
		rateLimit: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.health.Check)

	v1 := e.Group("/v1")

	authGroup := v1.Group("/auth", r.rateLimit.Handle)
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/logout", r.auth.Logout)
		authGroup.POST("/refresh-tokens", r.auth.RefreshTokens)
		authGroup.POST("/forgot-password", r.auth.ForgotPassword)
		authGroup.POST("/reset-password", r.auth.ResetPassword)
		authGroup.POST("/verify-email", r.auth.VerifyEmail)
		authGroup.POST("/send-verification-email", r.auth.SendVerificationEmail, r.authMW.Authenticate)
		authGroup.POST("/blacklist-token", r.auth.BlacklistToken,
			r.authMW.Authenticate, r.authMW.RequireRights(entity.PermManageUsers))
	}

	manageUsers := r.authMW.RequireRights(entity.PermManageUsers)
	selfOrManageUsers := r.authMW.SelfOrRights("id", entity.PermManageUsers)
	usersGroup := v1.Group("/users", r.authMW.Authenticate)
	{
		usersGroup.GET("", r.users.ReadManyPaginated, r.authMW.RequireRights(entity.PermGetUsers))
		usersGroup.GET("/all", r.users.ReadMany, manageUsers)
		usersGroup.POST("", r.users.CreateOne, manageUsers)
		usersGroup.POST("/many", r.users.CreateMany, manageUsers)
		usersGroup.PATCH("/many", r.users.UpdateMany, manageUsers)
		usersGroup.DELETE("/many", r.users.DeleteMany, manageUsers)
		usersGroup.GET("/:id", r.users.ReadOne)
		usersGroup.PATCH("/:id", r.users.UpdateOne, selfOrManageUsers)
		usersGroup.DELETE("/:id", r.users.DeleteOne, selfOrManageUsers)
	}

	manageMessages := r.authMW.RequireRights(entity.PermManageMessages)
	messagesGroup := v1.Group("/messages", r.authMW.Authenticate)
	{
		messagesGroup.GET("", r.messages.ReadManyPaginated)
		messagesGroup.GET("/all", r.messages.ReadMany, manageMessages)
		messagesGroup.POST("", r.messages.CreateOne)
		messagesGroup.POST("/many", r.messages.CreateMany, manageMessages)
		messagesGroup.PATCH("/many", r.messages.UpdateMany, manageMessages)
		messagesGroup.DELETE("/many", r.messages.DeleteMany, manageMessages)
		messagesGroup.GET("/:id", r.messages.ReadOne)
		messagesGroup.PATCH("/:id", r.messages.UpdateOne)
		messagesGroup.DELETE("/:id", r.messages.DeleteOne)
	}
}
