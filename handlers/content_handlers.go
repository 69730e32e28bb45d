// api/handlers/content_handlers.go
package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"borapassageiro/api/models"
	"borapassageiro/api/utils"
)

// contentTypeYouTube marks sections embedding a YouTube video; their URL is
// reduced to the bare video id before storage.
const contentTypeYouTube = "youtube"

type contentStore interface {
	ListContent(ctx context.Context, activeOnly bool) ([]models.SiteContent, error)
	CreateContent(ctx context.Context, req models.SiteContent) (*models.SiteContent, error)
	UpdateContent(ctx context.Context, req models.SiteContent) (*models.SiteContent, error)
	DeleteContent(ctx context.Context, id int64) error
}

type ContentHandlers struct {
	Store contentStore
}

func NewContentHandlers(store contentStore) *ContentHandlers {
	return &ContentHandlers{Store: store}
}

// GetPublicContent lists active sections in display order for the landing
// page itself. No auth required.
func (h *ContentHandlers) GetPublicContent(c *gin.Context) {
	h.listContent(c, true)
}

// GetContent lists every section, active or not, for the admin dashboard.
func (h *ContentHandlers) GetContent(c *gin.Context) {
	h.listContent(c, false)
}

func (h *ContentHandlers) listContent(c *gin.Context, activeOnly bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	contents, err := h.Store.ListContent(ctx, activeOnly)
	if err != nil {
		log.Printf("Error listing site contents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, contents)
}

// UpsertContent creates a record when no id is supplied and updates the
// existing one otherwise.
func (h *ContentHandlers) UpsertContent(c *gin.Context) {
	var req models.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	content := models.SiteContent{
		ID:       req.ID,
		Section:  req.Section,
		Type:     req.Type,
		Title:    req.Title,
		URL:      req.URL,
		Content:  req.Content,
		IsActive: isActive,
		Order:    req.Order,
	}

	if content.Type == contentTypeYouTube {
		content.URL = utils.ExtractYouTubeID(content.URL)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if req.ID > 0 {
		updated, err := h.Store.UpdateContent(ctx, content)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
				return
			}
			log.Printf("Error updating site content %d: %v", req.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, updated)
		return
	}

	created, err := h.Store.CreateContent(ctx, content)
	if err != nil {
		log.Printf("Error creating site content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteContent removes a record by id.
func (h *ContentHandlers) DeleteContent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Store.DeleteContent(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		log.Printf("Error deleting site content %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
