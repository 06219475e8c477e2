package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardpress/internal/cards"
	"github.com/youruser/cardpress/internal/deck"
	"github.com/youruser/cardpress/internal/logging"
)

const (
	pptxContentType    = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	attachmentFilename = `attachment; filename=generated_A4.pptx`
)

// Handlers holds the service dependencies of the HTTP layer. The
// builder is constructed once at startup and injected; nothing is
// mutated after construction.
type Handlers struct {
	builder *deck.Builder
}

// NewHandlers wires the generation service into the HTTP layer.
func NewHandlers(b *deck.Builder) *Handlers {
	return &Handlers{builder: b}
}

// health
func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generatePPT builds the card document for one request and returns it
// as a binary attachment. The response is all-or-nothing.
func (h *Handlers) generatePPT(c *gin.Context) {
	var req cards.Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.builder.Build(req)
	if err != nil {
		logging.Logger().Error("document generation failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", attachmentFilename)
	c.Data(http.StatusOK, pptxContentType, out)
}
