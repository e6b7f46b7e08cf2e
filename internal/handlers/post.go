package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"dreamwall/internal/models"
	"dreamwall/internal/repository"
	"dreamwall/internal/service"

	"github.com/gin-gonic/gin"
)

// Gallery is the slice of the gallery service the post handlers need.
type Gallery interface {
	CreatePost(ctx context.Context, name, prompt, photo string) (*models.Post, error)
	DeletePost(ctx context.Context, id string) (warning string, err error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
}

type PostHandler struct {
	gallery Gallery
}

func NewPostHandler(gallery Gallery) *PostHandler {
	return &PostHandler{gallery: gallery}
}

type CreatePostRequest struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
	Photo  string `json:"photo"`
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	posts, err := h.gallery.ListPosts(ctx)
	if err != nil {
		log.Printf("ListPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch posts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	post, err := h.gallery.GetPost(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("GetPost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": post})
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// Uploads can be slow for large payloads.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	post, err := h.gallery.CreatePost(ctx, req.Name, req.Prompt, req.Photo)
	if errors.Is(err, service.ErrInvalidArgument) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Name, prompt, and photo are required",
		})
		return
	}
	if err != nil {
		log.Printf("CreatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": post})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	warning, err := h.gallery.DeletePost(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("DeletePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete post",
			"error":   err.Error(),
		})
		return
	}

	body := gin.H{"success": true, "message": "Post deleted successfully"}
	if warning != "" {
		body["warning"] = warning
	}
	c.JSON(http.StatusOK, body)
}
