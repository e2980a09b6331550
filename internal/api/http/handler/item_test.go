package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/openshelf/openshelf-server/internal/mocks"
	"github.com/openshelf/openshelf-server/internal/model"
	"github.com/openshelf/openshelf-server/internal/testutil"
)

func itemTestRouter(h *Item) http.Handler {
	r := chi.NewRouter()
	r.Post("/item", h.Create)
	r.Get("/item", h.List)
	r.Get("/item/{itemID}", h.Get)
	r.Put("/item/{itemID}", h.Update)
	r.Delete("/item/{itemID}", h.Delete)
	r.Get("/store/{storeID}/item", h.ListByStore)
	return r
}

func TestItem_Create(t *testing.T) {
	t.Parallel()

	svc := mocks.NewItemService(t)
	lg := testutil.MakeNoopLogger()

	storeID := uuid.New()
	itemID := uuid.New()
	svc.On("CreateItem", mock.Anything, storeID, "hammer", 9.99).
		Return(model.Item{ID: itemID, StoreID: storeID, Name: "hammer", Price: 9.99}, nil)

	r := itemTestRouter(NewItem(svc, lg))
	body := fmt.Sprintf(`{"store_id":%q,"name":"hammer","price":9.99}`, storeID)
	req := httptest.NewRequest(http.MethodPost, "/item", strings.NewReader(body))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), itemID.String())
}

func TestItem_Create_InvalidPrice(t *testing.T) {
	t.Parallel()

	svc := mocks.NewItemService(t)
	lg := testutil.MakeNoopLogger()

	storeID := uuid.New()
	svc.On("CreateItem", mock.Anything, storeID, "hammer", -1.0).
		Return(model.Item{}, model.ErrInvalidPrice)

	r := itemTestRouter(NewItem(svc, lg))
	body := fmt.Sprintf(`{"store_id":%q,"name":"hammer","price":-1}`, storeID)
	req := httptest.NewRequest(http.MethodPost, "/item", strings.NewReader(body))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItem_Create_UnknownStore(t *testing.T) {
	t.Parallel()

	svc := mocks.NewItemService(t)
	lg := testutil.MakeNoopLogger()

	storeID := uuid.New()
	svc.On("CreateItem", mock.Anything, storeID, "hammer", 1.0).
		Return(model.Item{}, model.ErrNotFound)

	r := itemTestRouter(NewItem(svc, lg))
	body := fmt.Sprintf(`{"store_id":%q,"name":"hammer","price":1}`, storeID)
	req := httptest.NewRequest(http.MethodPost, "/item", strings.NewReader(body))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItem_Update(t *testing.T) {
	t.Parallel()

	svc := mocks.NewItemService(t)
	lg := testutil.MakeNoopLogger()

	itemID := uuid.New()
	svc.On("UpdateItemPrice", mock.Anything, itemID, 12.5).
		Return(model.Item{ID: itemID, Name: "hammer", Price: 12.5}, nil)

	r := itemTestRouter(NewItem(svc, lg))
	req := httptest.NewRequest(http.MethodPut, "/item/"+itemID.String(), strings.NewReader(`{"price":12.5}`))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `12.5`)
}

func TestItem_Delete(t *testing.T) {
	t.Parallel()

	svc := mocks.NewItemService(t)
	lg := testutil.MakeNoopLogger()

	itemID := uuid.New()
	svc.On("DeleteItem", mock.Anything, itemID).Return(nil)

	r := itemTestRouter(NewItem(svc, lg))
	req := httptest.NewRequest(http.MethodDelete, "/item/"+itemID.String(), nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"item deleted"}`, rec.Body.String())
}

func TestItem_ListByStore_StorageUnavailable(t *testing.T) {
	t.Parallel()

	svc := mocks.NewItemService(t)
	lg := testutil.MakeNoopLogger()

	storeID := uuid.New()
	svc.On("ListStoreItems", mock.Anything, storeID).
		Return(nil, fmt.Errorf("%w: connection refused", model.ErrStorageUnavailable))

	r := itemTestRouter(NewItem(svc, lg))
	req := httptest.NewRequest(http.MethodGet, "/store/"+storeID.String()+"/item", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
