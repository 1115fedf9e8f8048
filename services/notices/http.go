package notices

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PATCH(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Notices is the interface for the notices service.
type Notices interface {
	ListNotices(ctx context.Context, query ListNoticesQuery) ([]*fsdb.Notice, error)
	GetNotice(ctx context.Context, id string) (*fsdb.Notice, error)
	CreateNotice(ctx context.Context, req CreateNoticeRequest) (*fsdb.Notice, error)
	UpdateNotice(ctx context.Context, id string, req UpdateNoticeRequest) (*fsdb.Notice, error)
	DeactivateNotice(ctx context.Context, id string) error
	ListNotifications(ctx context.Context, query ListNotificationsQuery) ([]*fsdb.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	DeleteNotification(ctx context.Context, id string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Notices

	// The router instance to configure the notice routes.
	Router Router

	// Separate router for the notification inbox routes.
	NotificationsRouter Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("", h.listNoticesHandler)
	r.GET("/:notice_id", h.getNoticeHandler)
	r.POST("", h.createNoticeHandler)
	r.PATCH("/:notice_id", h.updateNoticeHandler)
	r.DELETE("/:notice_id", h.deactivateNoticeHandler)

	n := opts.NotificationsRouter
	n.GET("", h.listNotificationsHandler)
	n.PATCH("/:notification_id/read", h.markReadHandler)
	n.DELETE("/:notification_id", h.deleteNotificationHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) listNoticesHandler(c *gin.Context) {
	query := ListNoticesQuery{
		ImportantOnly:   c.Query("important") == "true",
		IncludeInactive: c.Query("includeInactive") == "true",
	}

	notices, err := h.Service.ListNotices(c, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": notices})
}

func (h *httpHandler) getNoticeHandler(c *gin.Context) {
	notice, err := h.Service.GetNotice(c, c.Param("notice_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": notice})
}

func (h *httpHandler) createNoticeHandler(c *gin.Context) {
	var request CreateNoticeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	notice, err := h.Service.CreateNotice(c, request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"notice": notice})
}

func (h *httpHandler) updateNoticeHandler(c *gin.Context) {
	var request UpdateNoticeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	notice, err := h.Service.UpdateNotice(c, c.Param("notice_id"), request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": notice})
}

func (h *httpHandler) deactivateNoticeHandler(c *gin.Context) {
	err := h.Service.DeactivateNotice(c, c.Param("notice_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notice deactivated"})
}

func (h *httpHandler) listNotificationsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	query := ListNotificationsQuery{
		UserID:     c.Query("userId"),
		UnreadOnly: c.Query("unread") == "true",
		Limit:      limit,
	}

	notifications, err := h.Service.ListNotifications(c, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *httpHandler) markReadHandler(c *gin.Context) {
	err := h.Service.MarkNotificationRead(c, c.Param("notification_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification read"})
}

func (h *httpHandler) deleteNotificationHandler(c *gin.Context) {
	err := h.Service.DeleteNotification(c, c.Param("notification_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, fsdb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		c.Abort()
		return
	}
	log.Printf("Request failed: %v\n", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	c.Abort()
}
