package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/dto"
	"github.com/fcg-platform/users-svc/internal/core/validation"
)

type stubUserService struct {
	listAllFn     func(ctx context.Context) ([]dto.UserProjection, error)
	getByIDFn     func(ctx context.Context, id primitive.ObjectID) (*dto.UserProjection, error)
	findFn        func(ctx context.Context, filter dto.FilterUserDTO) ([]dto.UserProjection, error)
	createFn      func(ctx context.Context, in dto.CreateUserDTO) (*dto.UserProjection, error)
	createAdminFn func(ctx context.Context, in dto.CreateUserAdminDTO) (*dto.UserProjection, error)
	updateFn      func(ctx context.Context, id primitive.ObjectID, in dto.UpdateUserDTO) error
	deleteFn      func(ctx context.Context, id primitive.ObjectID) error
	getAdminFn    func(ctx context.Context) (*domain.User, error)
}

func (s *stubUserService) ListAll(ctx context.Context) ([]dto.UserProjection, error) {
	return s.listAllFn(ctx)
}

func (s *stubUserService) GetByID(ctx context.Context, id primitive.ObjectID) (*dto.UserProjection, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserService) Find(ctx context.Context, filter dto.FilterUserDTO) ([]dto.UserProjection, error) {
	return s.findFn(ctx, filter)
}

func (s *stubUserService) Create(ctx context.Context, in dto.CreateUserDTO) (*dto.UserProjection, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) CreateAdmin(ctx context.Context, in dto.CreateUserAdminDTO) (*dto.UserProjection, error) {
	return s.createAdminFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, id primitive.ObjectID, in dto.UpdateUserDTO) error {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) GetAdmin(ctx context.Context) (*domain.User, error) {
	return s.getAdminFn(ctx)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestUserHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listAllFn: func(context.Context) ([]dto.UserProjection, error) {
			return []dto.UserProjection{
				{ID: primitive.NewObjectID(), Name: "alice", Email: "alice@fcg.com"},
				{ID: primitive.NewObjectID(), Name: "bob", Email: "bob@fcg.com"},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
	if _, leaks := resp[0]["password"]; leaks {
		t.Fatalf("password leaked into listing: %v", resp[0])
	}
}

func TestUserHandler_Get_Success(t *testing.T) {
	e := newTestEcho()
	id := primitive.NewObjectID()
	stub := &stubUserService{
		getByIDFn: func(_ context.Context, got primitive.ObjectID) (*dto.UserProjection, error) {
			if got != id {
				t.Fatalf("unexpected id: %s", got.Hex())
			}
			return &dto.UserProjection{ID: id, Name: "alice", Email: "alice@fcg.com"}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getByIDFn: func(context.Context, primitive.ObjectID) (*dto.UserProjection, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-hex")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getByIDFn: func(context.Context, primitive.ObjectID) (*dto.UserProjection, error) {
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	id := primitive.NewObjectID()
	stub := &stubUserService{
		createFn: func(_ context.Context, in dto.CreateUserDTO) (*dto.UserProjection, error) {
			return &dto.UserProjection{ID: id, Name: in.Name, Email: in.Email}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := postJSON(e, "/api/users", `{"name":"alice","email":"alice@fcg.com","password":"Senha@123"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_ValidationErrors(t *testing.T) {
	e := newTestEcho()
	var result validation.Result
	result.AddError("name is required")
	stub := &stubUserService{
		createFn: func(context.Context, dto.CreateUserDTO) (*dto.UserProjection, error) {
			return nil, validation.NewError(result)
		},
	}
	handler := NewUserHandler(stub)

	c, rec := postJSON(e, "/api/users", `{"email":"alice@fcg.com"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["errors"].([]any); !ok {
		t.Fatalf("expected listed errors, got %v", resp)
	}
}

func TestUserHandler_CreateAdmin(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createAdminFn: func(_ context.Context, in dto.CreateUserAdminDTO) (*dto.UserProjection, error) {
			if in.Name != "root" {
				t.Fatalf("unexpected payload: %+v", in)
			}
			return &dto.UserProjection{ID: primitive.NewObjectID(), Name: in.Name, Email: in.Email}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := postJSON(e, "/api/users/admin", `{"name":"root","email":"root@fcg.com","password":"Senha@123"}`)
	if err := handler.CreateAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	id := primitive.NewObjectID()
	updated := false
	stub := &stubUserService{
		getByIDFn: func(context.Context, primitive.ObjectID) (*dto.UserProjection, error) {
			return &dto.UserProjection{ID: id, Name: "alice", Email: "alice@fcg.com"}, nil
		},
		updateFn: func(_ context.Context, got primitive.ObjectID, in dto.UpdateUserDTO) error {
			if got != id || in.Email != "new@fcg.com" {
				t.Fatalf("unexpected update: %s %+v", got.Hex(), in)
			}
			updated = true
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"email":"new@fcg.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !updated {
		t.Fatalf("service not called")
	}
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getByIDFn: func(context.Context, primitive.ObjectID) (*dto.UserProjection, error) {
			return nil, nil
		},
		updateFn: func(context.Context, primitive.ObjectID, dto.UpdateUserDTO) error {
			t.Fatalf("should not update a missing user")
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"name":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Update_BadEmailRejected(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getByIDFn: func(context.Context, primitive.ObjectID) (*dto.UserProjection, error) {
			t.Fatalf("should not be reached")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())

	if err := handler.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	id := primitive.NewObjectID()
	stub := &stubUserService{
		getByIDFn: func(context.Context, primitive.ObjectID) (*dto.UserProjection, error) {
			return &dto.UserProjection{ID: id}, nil
		},
		deleteFn: func(_ context.Context, got primitive.ObjectID) error {
			if got != id {
				t.Fatalf("unexpected id: %s", got.Hex())
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getByIDFn: func(context.Context, primitive.ObjectID) (*dto.UserProjection, error) {
			return nil, nil
		},
		deleteFn: func(context.Context, primitive.ObjectID) error {
			t.Fatalf("should not delete a missing user")
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Find(t *testing.T) {
	e := newTestEcho()
	id := primitive.NewObjectID()
	stub := &stubUserService{
		findFn: func(_ context.Context, filter dto.FilterUserDTO) ([]dto.UserProjection, error) {
			if filter.ID != id || filter.Name != "alice" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return []dto.UserProjection{{ID: id, Name: "alice", Email: "alice@fcg.com"}}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := postJSON(e, "/api/users/find", `{"id":"`+id.Hex()+`","name":"alice"}`)
	if err := handler.Find(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Find_BadID(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		findFn: func(context.Context, dto.FilterUserDTO) ([]dto.UserProjection, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := postJSON(e, "/api/users/find", `{"id":"zz"}`)
	if err := handler.Find(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_GetAdmin(t *testing.T) {
	e := newTestEcho()
	id := primitive.NewObjectID()
	stub := &stubUserService{
		getAdminFn: func(context.Context) (*domain.User, error) {
			return &domain.User{ID: id, Name: "root", Email: "root@fcg.com", Password: "digest", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "root" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	if _, leaks := resp["password"]; leaks {
		t.Fatalf("password leaked: %v", resp)
	}
	if _, leaks := resp["role"]; leaks {
		t.Fatalf("role leaked: %v", resp)
	}
}

func TestUserHandler_GetAdmin_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getAdminFn: func(context.Context) (*domain.User, error) {
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
