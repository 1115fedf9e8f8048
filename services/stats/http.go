package stats

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
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Stats is the interface for the statistics service.
type Stats interface {
	Get(ctx context.Context, memberID string) (*StatsView, error)
	Recalculate(ctx context.Context, memberID string) (*fsdb.Statistics, error)
	RecalculateForMatch(ctx context.Context, matchID string) error
	List(ctx context.Context, sortBy string, limit, offset int) ([]*StatsView, error)
	Leaderboard(ctx context.Context, category string, limit int) ([]*LeaderboardEntry, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Stats

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("", h.listHandler)
	r.GET("/leaderboard", h.leaderboardHandler)
	r.GET("/member/:member_id", h.getMemberHandler)
	r.POST("/member/:member_id/recalculate", h.recalculateMemberHandler)
	r.POST("/match/:match_id/recalculate", h.recalculateMatchHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) listHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	views, err := h.Service.List(c, c.DefaultQuery("sortBy", "goals"), limit, offset)
	if err != nil {
		log.Printf("Failed to list statistics: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": views})
}

func (h *httpHandler) leaderboardHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	category := c.DefaultQuery("category", "goals")

	entries, err := h.Service.Leaderboard(c, category, limit)
	if err != nil {
		log.Printf("Failed to build leaderboard: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "leaderboard": entries})
}

func (h *httpHandler) getMemberHandler(c *gin.Context) {
	view, err := h.Service.Get(c, c.Param("member_id"))
	if err != nil {
		if errors.Is(err, fsdb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			c.Abort()
			return
		}
		log.Printf("Failed to get member statistics: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": view})
}

func (h *httpHandler) recalculateMemberHandler(c *gin.Context) {
	statistics, err := h.Service.Recalculate(c, c.Param("member_id"))
	if err != nil {
		log.Printf("Failed to recalculate member statistics: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": statistics, "message": "Member statistics recalculated"})
}

func (h *httpHandler) recalculateMatchHandler(c *gin.Context) {
	if err := h.Service.RecalculateForMatch(c, c.Param("match_id")); err != nil {
		log.Printf("Failed to recalculate match statistics: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Match statistics recalculated"})
}
