package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	GetOwnerEvent(c *ginext.Context)
	ListOwnerEvents(c *ginext.Context)
	AdminUpdateEvent(c *ginext.Context)
	GetPublicEvent(c *ginext.Context)
	ListPublicEvents(c *ginext.Context)
	CreateRequest(c *ginext.Context)
	CancelRequest(c *ginext.Context)
	ListOwnRequests(c *ginext.Context)
	ListEventRequests(c *ginext.Context)
	UpdateEventRequests(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	ListCategories(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public event reads
		api.GET("/events", h.ListPublicEvents)
		api.GET("/events/:id", h.GetPublicEvent)

		// Owner events
		api.POST("/users/:userId/events", h.CreateEvent)
		api.GET("/users/:userId/events", h.ListOwnerEvents)
		api.GET("/users/:userId/events/:eventId", h.GetOwnerEvent)
		api.PATCH("/users/:userId/events/:eventId", h.UpdateEvent)
		api.PATCH("/users/:userId/events/:eventId/cancel", h.CancelEvent)

		// Participation requests
		api.POST("/users/:userId/requests", h.CreateRequest)
		api.GET("/users/:userId/requests", h.ListOwnRequests)
		api.PATCH("/users/:userId/requests/:requestId/cancel", h.CancelRequest)

		// Owner moderation
		api.GET("/users/:userId/events/:eventId/requests", h.ListEventRequests)
		api.PATCH("/users/:userId/events/:eventId/requests", h.UpdateEventRequests)

		// Admin moderation
		api.PATCH("/admin/events/:eventId", h.AdminUpdateEvent)

		// Users & categories
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.POST("/categories", h.CreateCategory)
		api.GET("/categories", h.ListCategories)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
