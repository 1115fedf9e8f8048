package matches

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

// Matches is the interface for the match service.
type Matches interface {
	ListMatches(ctx context.Context, query ListMatchesQuery) ([]*fsdb.Match, error)
	GetMatch(ctx context.Context, id string) (*fsdb.Match, error)
	CreateMatch(ctx context.Context, req CreateMatchRequest) ([]string, error)
	UpdateMatch(ctx context.Context, id string, req UpdateMatchRequest) (*fsdb.Match, error)
	CancelMatch(ctx context.Context, id string) error
	ListEvents(ctx context.Context, matchID, eventType string) ([]*EventView, error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (*fsdb.MatchEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Matches

	// The router instance to configure the match routes.
	Router Router

	// Separate router for the match event routes.
	EventsRouter Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("", h.listMatchesHandler)
	r.GET("/:match_id", h.getMatchHandler)
	r.POST("", h.createMatchHandler)
	r.PATCH("/:match_id", h.updateMatchHandler)
	r.DELETE("/:match_id", h.cancelMatchHandler)
	r.GET("/:match_id/events", h.listEventsHandler)

	e := opts.EventsRouter
	e.POST("", h.createEventHandler)
	e.DELETE("/:event_id", h.deleteEventHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) listMatchesHandler(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	query := ListMatchesQuery{
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Month:     month,
	}

	matches, err := h.Service.ListMatches(c, query)
	if err != nil {
		if errors.Is(err, ErrBadDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func (h *httpHandler) getMatchHandler(c *gin.Context) {
	match, err := h.Service.GetMatch(c, c.Param("match_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match})
}

func (h *httpHandler) createMatchHandler(c *gin.Context) {
	var request CreateMatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	ids, err := h.Service.CreateMatch(c, request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": len(ids), "ids": ids})
}

func (h *httpHandler) updateMatchHandler(c *gin.Context) {
	var request UpdateMatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	match, err := h.Service.UpdateMatch(c, c.Param("match_id"), request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match})
}

func (h *httpHandler) cancelMatchHandler(c *gin.Context) {
	err := h.Service.CancelMatch(c, c.Param("match_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Match cancelled"})
}

func (h *httpHandler) listEventsHandler(c *gin.Context) {
	events, err := h.Service.ListEvents(c, c.Param("match_id"), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *httpHandler) createEventHandler(c *gin.Context) {
	var request CreateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	event, err := h.Service.CreateEvent(c, request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

func (h *httpHandler) deleteEventHandler(c *gin.Context) {
	err := h.Service.DeleteEvent(c, c.Param("event_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Match event deleted"})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fsdb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, ErrUnknownEventType),
		errors.Is(err, ErrUnknownSide),
		errors.Is(err, ErrOwnGoalSide),
		errors.Is(err, ErrBadDate),
		errors.Is(err, ErrBadStatus),
		errors.Is(err, ErrMatchCompleted):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Request failed: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
	c.Abort()
}
