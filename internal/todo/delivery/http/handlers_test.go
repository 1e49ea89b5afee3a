package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"conversational-todo/internal/middleware"
	"conversational-todo/internal/model"
	"conversational-todo/internal/todo"
	todoHTTP "conversational-todo/internal/todo/delivery/http"
	"conversational-todo/pkg/datemath"
	"conversational-todo/pkg/log"
	"conversational-todo/pkg/response"
	"conversational-todo/pkg/scope"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockTodoUseCase struct {
	createFn func(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error)
	listFn   func(ctx context.Context, sc model.Scope, input todo.ListInput) (todo.ListOutput, error)
	detailFn func(ctx context.Context, sc model.Scope, id int64) (todo.DetailOutput, error)
	updateFn func(ctx context.Context, sc model.Scope, input todo.UpdateInput) (todo.UpdateOutput, error)
	deleteFn func(ctx context.Context, sc model.Scope, id int64) (todo.DeleteOutput, error)
}

func (m *mockTodoUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error) {
	return m.createFn(ctx, sc, input)
}
func (m *mockTodoUseCase) List(ctx context.Context, sc model.Scope, input todo.ListInput) (todo.ListOutput, error) {
	return m.listFn(ctx, sc, input)
}
func (m *mockTodoUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (todo.DetailOutput, error) {
	return m.detailFn(ctx, sc, id)
}
func (m *mockTodoUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateInput) (todo.UpdateOutput, error) {
	return m.updateFn(ctx, sc, input)
}
func (m *mockTodoUseCase) Delete(ctx context.Context, sc model.Scope, id int64) (todo.DeleteOutput, error) {
	return m.deleteFn(ctx, sc, id)
}

// ── Test Helpers ───────────────────────────────────────────────────────────

const testUserID = "user-123"

func newTestEnv(t *testing.T, muc *mockTodoUseCase) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()

	jwtManager, err := scope.NewJWTManager("test-secret-please-ignore", time.Hour)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	token, err := jwtManager.IssueToken(testUserID)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	engine := gin.New()
	h := todoHTTP.New(l, muc, parser)
	mw := middleware.New(l, jwtManager, 1000)
	todoHTTP.RegisterRoutes(engine.Group("/api/v1"), h, mw)

	return engine, token
}

func doJSON(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		ErrorCode int                    `json:"error_code"`
		Message   string                 `json:"message"`
		Data      map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
	}
	return resp.Data
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestCreateEndpoint(t *testing.T) {
	t.Run("Created With Scope From Token", func(t *testing.T) {
		var gotScope model.Scope
		muc := &mockTodoUseCase{
			createFn: func(_ context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error) {
				gotScope = sc
				return todo.CreateOutput{Todo: model.Todo{
					ID:       7,
					Title:    input.Title,
					Priority: model.PriorityHigh,
					DueDate:  input.DueDate,
					UserID:   sc.UserID,
				}}, nil
			},
		}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/todos", token, gin.H{
			"title":    "buy groceries",
			"priority": 1,
			"due_date": "tomorrow",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
		}
		if gotScope.UserID != testUserID {
			t.Errorf("expected scope user %q, got %q", testUserID, gotScope.UserID)
		}

		data := decodeData(t, w)
		td, _ := data["todo"].(map[string]interface{})
		if td == nil {
			t.Fatalf("expected todo in response, got %v", data)
		}
		if td["due_date"] != "tomorrow" {
			t.Errorf("expected raw due token in response, got %v", td["due_date"])
		}
		dueOn, _ := td["due_on"].(string)
		if _, err := time.Parse(response.DateFormat, dueOn); err != nil {
			t.Errorf("expected due_on in %s format, got %v: %v", response.DateFormat, td["due_on"], err)
		}
	})

	t.Run("Rejects Missing Token", func(t *testing.T) {
		muc := &mockTodoUseCase{}
		engine, _ := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/todos", "", gin.H{"title": "x"})

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Rejects Missing Title", func(t *testing.T) {
		muc := &mockTodoUseCase{}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/todos", token, gin.H{"description": "no title"})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestListEndpoint(t *testing.T) {
	t.Run("Forwards Filters And Defaults Paging", func(t *testing.T) {
		var gotInput todo.ListInput
		muc := &mockTodoUseCase{
			listFn: func(_ context.Context, _ model.Scope, input todo.ListInput) (todo.ListOutput, error) {
				gotInput = input
				return todo.ListOutput{Todos: []model.Todo{}, Limit: input.Limit, Offset: input.Offset}, nil
			},
		}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodGet, "/api/v1/todos?completed=true&priority=1&due=tomorrow", token, nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
		}
		if gotInput.Completed == nil || !*gotInput.Completed {
			t.Errorf("expected completed=true filter, got %v", gotInput.Completed)
		}
		if gotInput.Priority == nil || *gotInput.Priority != model.PriorityHigh {
			t.Errorf("expected priority filter 1, got %v", gotInput.Priority)
		}
		if gotInput.DueToken != "tomorrow" {
			t.Errorf("expected due token forwarded, got %q", gotInput.DueToken)
		}
		if gotInput.Limit != 20 || gotInput.Offset != 0 {
			t.Errorf("expected default paging 20/0, got %d/%d", gotInput.Limit, gotInput.Offset)
		}
	})

	t.Run("Invalid Due Filter Is Bad Request", func(t *testing.T) {
		muc := &mockTodoUseCase{
			listFn: func(_ context.Context, _ model.Scope, _ todo.ListInput) (todo.ListOutput, error) {
				return todo.ListOutput{}, todo.ErrInvalidDueFilter
			},
		}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodGet, "/api/v1/todos?due=nonsense", token, nil)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestDetailEndpoint(t *testing.T) {
	t.Run("Not Found Maps To 404", func(t *testing.T) {
		muc := &mockTodoUseCase{
			detailFn: func(_ context.Context, _ model.Scope, _ int64) (todo.DetailOutput, error) {
				return todo.DetailOutput{}, todo.ErrTodoNotFound
			},
		}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodGet, "/api/v1/todos/42", token, nil)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Rejects Non Numeric ID", func(t *testing.T) {
		muc := &mockTodoUseCase{}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodGet, "/api/v1/todos/abc", token, nil)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestUpdateEndpoint(t *testing.T) {
	t.Run("Partial Update Forwards Pointers", func(t *testing.T) {
		var gotInput todo.UpdateInput
		muc := &mockTodoUseCase{
			updateFn: func(_ context.Context, _ model.Scope, input todo.UpdateInput) (todo.UpdateOutput, error) {
				gotInput = input
				return todo.UpdateOutput{Todo: model.Todo{ID: input.ID, Completed: true}}, nil
			},
		}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodPut, "/api/v1/todos/5", token, gin.H{"completed": true})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
		}
		if gotInput.ID != 5 {
			t.Errorf("expected ID 5 from URI, got %d", gotInput.ID)
		}
		if gotInput.Completed == nil || !*gotInput.Completed {
			t.Errorf("expected completed pointer true, got %v", gotInput.Completed)
		}
		if gotInput.Title != nil || gotInput.Priority != nil {
			t.Errorf("expected absent fields to stay nil")
		}
	})

	t.Run("No Fields Is Bad Request", func(t *testing.T) {
		muc := &mockTodoUseCase{
			updateFn: func(_ context.Context, _ model.Scope, _ todo.UpdateInput) (todo.UpdateOutput, error) {
				return todo.UpdateOutput{}, todo.ErrNoFields
			},
		}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodPut, "/api/v1/todos/5", token, gin.H{})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestDeleteEndpoint(t *testing.T) {
	t.Run("Returns Deleted Identity", func(t *testing.T) {
		muc := &mockTodoUseCase{
			deleteFn: func(_ context.Context, _ model.Scope, id int64) (todo.DeleteOutput, error) {
				return todo.DeleteOutput{DeletedID: id, DeletedTitle: "old task"}, nil
			},
		}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodDelete, "/api/v1/todos/9", token, nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeData(t, w)
		if data["deleted_id"] != float64(9) {
			t.Errorf("expected deleted_id 9, got %v", data["deleted_id"])
		}
		if data["deleted_title"] != "old task" {
			t.Errorf("expected deleted_title, got %v", data["deleted_title"])
		}
	})

	t.Run("Not Found Maps To 404", func(t *testing.T) {
		muc := &mockTodoUseCase{
			deleteFn: func(_ context.Context, _ model.Scope, _ int64) (todo.DeleteOutput, error) {
				return todo.DeleteOutput{}, todo.ErrTodoNotFound
			},
		}
		engine, token := newTestEnv(t, muc)

		w := doJSON(engine, http.MethodDelete, "/api/v1/todos/9", token, nil)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
