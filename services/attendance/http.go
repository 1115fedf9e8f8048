package attendance

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

// Attendances is the interface for the attendance service.
type Attendances interface {
	ListAttendance(ctx context.Context, query ListAttendanceQuery) ([]*AttendanceView, error)
	UpdateAttendance(ctx context.Context, id string, req UpdateAttendanceRequest) (*fsdb.Attendance, error)
	BulkUpsert(ctx context.Context, req BulkUpsertRequest) (int, error)
	GetAssignment(ctx context.Context, matchID string) (*AssignmentView, error)
	SaveAssignment(ctx context.Context, req SaveAssignmentRequest) (*AssignmentView, error)
	UpdateAssignment(ctx context.Context, id string, req UpdateAssignmentRequest) (*AssignmentView, error)
	DeleteAssignment(ctx context.Context, id string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Attendances

	// The router instance to configure the attendance routes.
	Router Router

	// Separate router for the team assignment routes.
	AssignmentsRouter Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("", h.listAttendanceHandler)
	r.PATCH("/:attendance_id", h.updateAttendanceHandler)
	r.POST("/bulk", h.bulkUpsertHandler)

	a := opts.AssignmentsRouter
	a.GET("/match/:match_id", h.getAssignmentHandler)
	a.POST("", h.saveAssignmentHandler)
	a.PATCH("/:assignment_id", h.updateAssignmentHandler)
	a.DELETE("/:assignment_id", h.deleteAssignmentHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) listAttendanceHandler(c *gin.Context) {
	query := ListAttendanceQuery{
		MatchID:  c.Query("matchId"),
		MemberID: c.Query("memberId"),
		Status:   c.Query("status"),
	}

	attendances, err := h.Service.ListAttendance(c, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendances": attendances})
}

func (h *httpHandler) updateAttendanceHandler(c *gin.Context) {
	var request UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	attendance, err := h.Service.UpdateAttendance(c, c.Param("attendance_id"), request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": attendance})
}

func (h *httpHandler) bulkUpsertHandler(c *gin.Context) {
	var request BulkUpsertRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	count, err := h.Service.BulkUpsert(c, request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}

func (h *httpHandler) getAssignmentHandler(c *gin.Context) {
	assignment, err := h.Service.GetAssignment(c, c.Param("match_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}

func (h *httpHandler) saveAssignmentHandler(c *gin.Context) {
	var request SaveAssignmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	assignment, err := h.Service.SaveAssignment(c, request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assignment": assignment})
}

func (h *httpHandler) updateAssignmentHandler(c *gin.Context) {
	var request UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	assignment, err := h.Service.UpdateAssignment(c, c.Param("assignment_id"), request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}

func (h *httpHandler) deleteAssignmentHandler(c *gin.Context) {
	err := h.Service.DeleteAssignment(c, c.Param("assignment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team assignment deleted"})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fsdb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, ErrBadAttendanceStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Request failed: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
	c.Abort()
}
