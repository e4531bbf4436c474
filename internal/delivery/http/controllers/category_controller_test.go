package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendahub/internal/delivery/http/helpers"
	"agendahub/internal/domain"
)

const testCategoryID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

// fakeCategoryService implements domain.CategoryService for handler tests.
type fakeCategoryService struct {
	createErr    error
	createResult *domain.EventCategory
	listErr      error
	listResult   []*domain.EventCategory
	renameErr    error
	renameResult *domain.EventCategory
	deleteErr    error

	lastCreateName string
	lastRenameID   string
	lastRenameName string
	lastDeleteID   string
}

func (f *fakeCategoryService) CreateCategory(ctx context.Context, name string) (*domain.EventCategory, error) {
	f.lastCreateName = name
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeCategoryService) ListCategories(ctx context.Context) ([]*domain.EventCategory, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeCategoryService) RenameCategory(ctx context.Context, id, name string) (*domain.EventCategory, error) {
	f.lastRenameID = id
	f.lastRenameName = name
	if f.renameErr != nil {
		return nil, f.renameErr
	}
	return f.renameResult, nil
}

func (f *fakeCategoryService) DeleteCategory(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func newCategoryController(svc domain.CategoryService) *CategoryController {
	return NewCategoryController(testLogger, svc, helpers.NewClassifier(false))
}

func TestCategoryController_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeCategoryService{createResult: &domain.EventCategory{ID: testCategoryID, Name: "work"}}
		ctrl := newCategoryController(svc)
		w := httptest.NewRecorder()
		ctrl.Create(w, httptest.NewRequest("POST", "/categories", bytes.NewBufferString(`{"name":"work"}`)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "work", svc.lastCreateName)
	})
	t.Run("duplicate", func(t *testing.T) {
		ctrl := newCategoryController(&fakeCategoryService{createErr: domain.ErrDuplicateCategory})
		w := httptest.NewRecorder()
		ctrl.Create(w, httptest.NewRequest("POST", "/categories", bytes.NewBufferString(`{"name":"work"}`)))

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeEnvelope(t, w.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeDuplicateCategory, resp.Error.Code)
	})
	t.Run("blank name", func(t *testing.T) {
		ctrl := newCategoryController(&fakeCategoryService{})
		w := httptest.NewRecorder()
		ctrl.Create(w, httptest.NewRequest("POST", "/categories", bytes.NewBufferString(`{"name":"  "}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCategoryController_List(t *testing.T) {
	svc := &fakeCategoryService{listResult: []*domain.EventCategory{{ID: testCategoryID, Name: "work"}}}
	ctrl := newCategoryController(svc)
	w := httptest.NewRecorder()
	ctrl.List(w, httptest.NewRequest("GET", "/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestCategoryController_Rename(t *testing.T) {
	t.Run("renamed", func(t *testing.T) {
		svc := &fakeCategoryService{renameResult: &domain.EventCategory{ID: testCategoryID, Name: "office"}}
		ctrl := newCategoryController(svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("PUT", "/categories/"+testCategoryID, bytes.NewBufferString(`{"name":"office"}`))
		r.SetPathValue("categoryID", testCategoryID)
		ctrl.Rename(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testCategoryID, svc.lastRenameID)
		assert.Equal(t, "office", svc.lastRenameName)
	})
	t.Run("not found", func(t *testing.T) {
		ctrl := newCategoryController(&fakeCategoryService{renameErr: domain.ErrNotFound})
		w := httptest.NewRecorder()
		r := httptest.NewRequest("PUT", "/categories/"+testCategoryID, bytes.NewBufferString(`{"name":"office"}`))
		r.SetPathValue("categoryID", testCategoryID)
		ctrl.Rename(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCategoryController_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &fakeCategoryService{}
		ctrl := newCategoryController(svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("DELETE", "/categories/"+testCategoryID, nil)
		r.SetPathValue("categoryID", testCategoryID)
		ctrl.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, testCategoryID, svc.lastDeleteID)
	})
	t.Run("in use", func(t *testing.T) {
		ctrl := newCategoryController(&fakeCategoryService{deleteErr: domain.ErrCategoryInUse})
		w := httptest.NewRecorder()
		r := httptest.NewRequest("DELETE", "/categories/"+testCategoryID, nil)
		r.SetPathValue("categoryID", testCategoryID)
		ctrl.Delete(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeEnvelope(t, w.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeCategoryInUse, resp.Error.Code)
	})
	t.Run("malformed id", func(t *testing.T) {
		ctrl := newCategoryController(&fakeCategoryService{})
		w := httptest.NewRecorder()
		r := httptest.NewRequest("DELETE", "/categories/nope", nil)
		r.SetPathValue("categoryID", "nope")
		ctrl.Delete(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
