package members

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

// Members is the interface for the member registry.
type Members interface {
	ListMembers(ctx context.Context, query ListMembersQuery) ([]*fsdb.Member, error)
	GetMember(ctx context.Context, id string) (*fsdb.Member, error)
	CreateMember(ctx context.Context, req CreateMemberRequest) (*fsdb.Member, error)
	BulkImport(ctx context.Context, req BulkImportRequest) ([]string, error)
	UpdateMember(ctx context.Context, id string, req UpdateMemberRequest) (*fsdb.Member, error)
	DeactivateMember(ctx context.Context, id string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Members

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("", h.listMembersHandler)
	r.GET("/:member_id", h.getMemberHandler)
	r.POST("", h.createMemberHandler)
	r.POST("/bulk", h.bulkImportHandler)
	r.PATCH("/:member_id", h.updateMemberHandler)
	r.DELETE("/:member_id", h.deactivateMemberHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) listMembersHandler(c *gin.Context) {
	query := ListMembersQuery{
		TeamID:          c.Query("teamId"),
		IncludeInactive: c.Query("includeInactive") == "true",
	}

	members, err := h.Service.ListMembers(c, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *httpHandler) getMemberHandler(c *gin.Context) {
	member, err := h.Service.GetMember(c, c.Param("member_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

func (h *httpHandler) createMemberHandler(c *gin.Context) {
	var request CreateMemberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	member, err := h.Service.CreateMember(c, request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": member})
}

func (h *httpHandler) bulkImportHandler(c *gin.Context) {
	var request BulkImportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	ids, err := h.Service.BulkImport(c, request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": len(ids), "ids": ids})
}

func (h *httpHandler) updateMemberHandler(c *gin.Context) {
	var request UpdateMemberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	member, err := h.Service.UpdateMember(c, c.Param("member_id"), request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

func (h *httpHandler) deactivateMemberHandler(c *gin.Context) {
	err := h.Service.DeactivateMember(c, c.Param("member_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deactivated"})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fsdb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, ErrBadPosition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Request failed: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
	c.Abort()
}
