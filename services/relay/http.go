package relay

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is the interface for a router.
type Router interface {
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Relay is the interface for the chatbot relay.
type Relay interface {
	Dispatch(ctx context.Context, req RelayRequest) RelayResponse
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Relay

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/webhook", h.webhookHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) webhookHandler(c *gin.Context) {
	var request RelayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, h.Service.Dispatch(c, request))
}
