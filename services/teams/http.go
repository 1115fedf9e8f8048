package teams

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
	PATCH(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Teams is the interface for the team registry.
type Teams interface {
	ListTeams(ctx context.Context, includeInactive bool) ([]*fsdb.Team, error)
	GetTeam(ctx context.Context, id string) (*TeamView, error)
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*fsdb.Team, error)
	UpdateTeam(ctx context.Context, id string, req UpdateTeamRequest) (*fsdb.Team, error)
	DeactivateTeam(ctx context.Context, id string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Teams

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("", h.listTeamsHandler)
	r.GET("/:team_id", h.getTeamHandler)
	r.POST("", h.createTeamHandler)
	r.PATCH("/:team_id", h.updateTeamHandler)
	r.DELETE("/:team_id", h.deactivateTeamHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) listTeamsHandler(c *gin.Context) {
	teams, err := h.Service.ListTeams(c, c.Query("includeInactive") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

func (h *httpHandler) getTeamHandler(c *gin.Context) {
	team, err := h.Service.GetTeam(c, c.Param("team_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team})
}

func (h *httpHandler) createTeamHandler(c *gin.Context) {
	var request CreateTeamRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	team, err := h.Service.CreateTeam(c, request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"team": team})
}

func (h *httpHandler) updateTeamHandler(c *gin.Context) {
	var request UpdateTeamRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	team, err := h.Service.UpdateTeam(c, c.Param("team_id"), request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team})
}

func (h *httpHandler) deactivateTeamHandler(c *gin.Context) {
	err := h.Service.DeactivateTeam(c, c.Param("team_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deactivated"})
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
