// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"garflex/internal/delivery/http/middleware"
	"garflex/internal/delivery/http/router/handler"
	"garflex/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The whole
// surface is registered here so route, required role and handler can be
// reviewed in one place.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog reads
	e.GET("/products", r.productHandler.List)
	e.GET("/products/recent", r.productHandler.ListRecent)
	e.GET("/products/:id", r.productHandler.Get, authenticate)

	// Account routes that require authentication but no role
	userGroup := e.Group("/users")
	userGroup.Use(authenticate)
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.PATCH("/login", r.userHandler.Login)
		userGroup.POST("/google", r.userHandler.GoogleSignIn)
		userGroup.GET("/me", r.userHandler.Me)
	}

	// Buyer routes
	buyerGroup := e.Group("/buyer")
	buyerGroup.Use(authenticate)
	buyerGroup.Use(r.authMiddleware.RequireRole(entity.RoleBuyer))
	{
		buyerGroup.POST("/orders", r.orderHandler.Place)
		buyerGroup.GET("/my-orders", r.orderHandler.MyOrders)
		buyerGroup.DELETE("/orders/:id", r.orderHandler.Cancel)
	}

	// Manager routes
	managerGroup := e.Group("/manager")
	managerGroup.Use(authenticate)
	managerGroup.Use(r.authMiddleware.RequireRole(entity.RoleManager))
	{
		managerGroup.POST("/products", r.productHandler.Create)
		managerGroup.GET("/my-products", r.productHandler.ListOwn)
		managerGroup.PATCH("/products/:id", r.productHandler.UpdateOwn)
		managerGroup.DELETE("/products/:id", r.productHandler.DeleteOwn)
		managerGroup.GET("/pending-orders", r.orderHandler.PendingOrders)
		managerGroup.GET("/approved-orders", r.orderHandler.ApprovedOrders)
		managerGroup.PATCH("/orders/:id/status", r.orderHandler.SetStatus)
		managerGroup.PATCH("/orders/:id/tracking", r.orderHandler.AddTracking)
	}

	// Admin routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/manage-users", r.userHandler.ManageUsers)
		adminGroup.PATCH("/users/role/:id", r.userHandler.UpdateRoleStatus)
		adminGroup.DELETE("/users/:id", r.userHandler.DeleteUser)
		adminGroup.GET("/all-products", r.productHandler.ListAll)
		adminGroup.PATCH("/products/:id", r.productHandler.UpdateAny)
		adminGroup.DELETE("/products/:id", r.productHandler.DeleteAny)
		adminGroup.GET("/all-orders", r.orderHandler.AllOrders)
		adminGroup.GET("/orders/:id", r.orderHandler.Get)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.SetStatus)
	}
}
