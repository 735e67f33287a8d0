package webserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scout-plus/scout-ai/src/qa"
)

// detailEmptyQuestion is the fixed client-error message.
const detailEmptyQuestion = "Question cannot be empty."

type askRequest struct {
	Question string `json:"question"`
}

// Ask answers a single question. Downstream failures never produce a 5xx:
// the only rejection is invalid client input.
type Ask struct {
	svc *qa.Service
}

func NewAsk(svc *qa.Service) *Ask {
	return &Ask{svc: svc}
}

func (h *Ask) Handle(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Request body must be JSON with a question field."})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": detailEmptyQuestion})
		return
	}

	res := h.svc.Answer(c.Request.Context(), req.Question)
	c.JSON(http.StatusOK, res)
}
