package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"dreamwall/internal/generation"

	"github.com/gin-gonic/gin"
)

type DalleHandler struct {
	generator generation.Generator
}

func NewDalleHandler(generator generation.Generator) *DalleHandler {
	return &DalleHandler{generator: generator}
}

func (h *DalleHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the image generator!"})
}

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

func (h *DalleHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	photo, err := h.generator.Generate(ctx, req.Prompt)
	if err != nil {
		log.Printf("Generate error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo": photo})
}
