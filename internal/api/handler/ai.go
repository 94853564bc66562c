package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Question string `json:"question" binding:"required"`
}

// fallbackAnswer is returned when the completion service is down or not
// configured; adapter failures never surface as HTTP errors.
const fallbackAnswer = "The HR assistant is currently unavailable. Please try again later or contact HR directly."

// Chat answers a free-text HR question.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Question is required")
		return
	}

	answer, err := h.AI.Answer(c.Request.Context(), req.Question)
	if err != nil {
		log.Printf("ERROR: HR chat answer failed: %v", err)
		answer = fallbackAnswer
	}
	c.JSON(http.StatusOK, gin.H{"response": answer})
}
