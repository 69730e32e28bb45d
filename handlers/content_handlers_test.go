package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"borapassageiro/api/models"
)

type fakeContentStore struct {
	contents   []models.SiteContent
	activeOnly *bool
	created    *models.SiteContent
	updated    *models.SiteContent
	deletedID  int64
	missing    bool
}

func (f *fakeContentStore) ListContent(ctx context.Context, activeOnly bool) ([]models.SiteContent, error) {
	f.activeOnly = &activeOnly
	if activeOnly {
		var active []models.SiteContent
		for _, c := range f.contents {
			if c.IsActive {
				active = append(active, c)
			}
		}
		return active, nil
	}
	return f.contents, nil
}

func (f *fakeContentStore) CreateContent(ctx context.Context, req models.SiteContent) (*models.SiteContent, error) {
	req.ID = 42
	f.created = &req
	return &req, nil
}

func (f *fakeContentStore) UpdateContent(ctx context.Context, req models.SiteContent) (*models.SiteContent, error) {
	if f.missing {
		return nil, sql.ErrNoRows
	}
	f.updated = &req
	return &req, nil
}

func (f *fakeContentStore) DeleteContent(ctx context.Context, id int64) error {
	if f.missing {
		return sql.ErrNoRows
	}
	f.deletedID = id
	return nil
}

func contentRouter(store *fakeContentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewContentHandlers(store)
	r.GET("/api/content/public", h.GetPublicContent)
	r.GET("/api/content", h.GetContent)
	r.POST("/api/content", h.UpsertContent)
	r.DELETE("/api/content/:id", h.DeleteContent)
	return r
}

func TestGetPublicContent_ActiveOnly(t *testing.T) {
	store := &fakeContentStore{contents: []models.SiteContent{
		{ID: 1, Section: "hero", IsActive: true},
		{ID: 2, Section: "faq", IsActive: false},
	}}
	r := contentRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content/public", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, store.activeOnly)
	assert.True(t, *store.activeOnly)

	var resp []models.SiteContent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "hero", resp[0].Section)
}

func TestGetContent_ReturnsAll(t *testing.T) {
	store := &fakeContentStore{contents: []models.SiteContent{
		{ID: 1, IsActive: true}, {ID: 2, IsActive: false},
	}}
	r := contentRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, store.activeOnly)
	assert.False(t, *store.activeOnly)

	var resp []models.SiteContent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestUpsertContent_CreateNormalizesYouTubeURL(t *testing.T) {
	store := &fakeContentStore{}
	r := contentRouter(store)

	body := `{"section":"video","type":"youtube","url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`
	req := httptest.NewRequest(http.MethodPost, "/api/content", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, store.created)
	assert.Equal(t, "dQw4w9WgXcQ", store.created.URL)
	// isActive defaults to true when omitted.
	assert.True(t, store.created.IsActive)
}

func TestUpsertContent_TextTypeKeepsURL(t *testing.T) {
	store := &fakeContentStore{}
	r := contentRouter(store)

	body := `{"section":"hero","type":"text","url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`
	req := httptest.NewRequest(http.MethodPost, "/api/content", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, store.created)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", store.created.URL)
}

func TestUpsertContent_UpdateByID(t *testing.T) {
	store := &fakeContentStore{}
	r := contentRouter(store)

	body := `{"id":7,"section":"hero","type":"text","title":"New title","isActive":false,"order":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/content", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.updated)
	assert.Equal(t, int64(7), store.updated.ID)
	assert.False(t, store.updated.IsActive)
	assert.Equal(t, 3, store.updated.Order)
	assert.Nil(t, store.created)
}

func TestUpsertContent_MissingIDReturns404(t *testing.T) {
	store := &fakeContentStore{missing: true}
	r := contentRouter(store)

	body := `{"id":999,"section":"hero","type":"text"}`
	req := httptest.NewRequest(http.MethodPost, "/api/content", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertContent_MissingRequiredFields(t *testing.T) {
	store := &fakeContentStore{}
	r := contentRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/content", bytes.NewBufferString(`{"title":"no section"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteContent(t *testing.T) {
	store := &fakeContentStore{}
	r := contentRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/content/7", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), store.deletedID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/content/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	store.missing = true
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/content/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
