package admin

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Admin is the interface for the admin service.
type Admin interface {
	RecalculateAllStatistics(ctx context.Context) (int, error)
	RecountMatchScores(ctx context.Context, matchID string) (*fsdb.Match, error)
	PurgeMember(ctx context.Context, memberID string) error
	IssueLinkCode(ctx context.Context, memberID string) (string, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Admin

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/statistics/recalculate", h.recalculateAllHandler)
	r.POST("/matches/:match_id/recount", h.recountHandler)
	r.DELETE("/members/:member_id", h.purgeMemberHandler)
	r.POST("/members/:member_id/link-code", h.linkCodeHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) recalculateAllHandler(c *gin.Context) {
	count, err := h.Service.RecalculateAllStatistics(c)
	if err != nil {
		log.Printf("Batch recalculation stopped after %d members: %v\n", count, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "recalculation failed",
			"completed": count,
		})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"recalculated": count})
}

func (h *httpHandler) recountHandler(c *gin.Context) {
	match, err := h.Service.RecountMatchScores(c, c.Param("match_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match})
}

func (h *httpHandler) purgeMemberHandler(c *gin.Context) {
	err := h.Service.PurgeMember(c, c.Param("member_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member permanently deleted"})
}

func (h *httpHandler) linkCodeHandler(c *gin.Context) {
	code, err := h.Service.IssueLinkCode(c, c.Param("member_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
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
