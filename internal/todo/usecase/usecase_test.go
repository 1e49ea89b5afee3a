package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"conversational-todo/internal/model"
	"conversational-todo/internal/todo"
	"conversational-todo/internal/todo/repository"
	"conversational-todo/internal/todo/usecase"
	"conversational-todo/pkg/datemath"
	"conversational-todo/pkg/log"
)

// mockTodoRepo is an in-memory Repository backed by a map, enough to drive
// the usecase through its branches.
type mockTodoRepo struct {
	todos  map[int64]model.Todo
	nextID int64
	fail   bool
}

func newMockTodoRepo() *mockTodoRepo {
	return &mockTodoRepo{todos: map[int64]model.Todo{}, nextID: 1}
}

func (m *mockTodoRepo) CreateTodo(ctx context.Context, opt repository.CreateTodoOptions) (model.Todo, error) {
	if m.fail {
		return model.Todo{}, errors.New("db error")
	}
	t := model.Todo{
		ID:          m.nextID,
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.todos[t.ID] = t
	m.nextID++
	return t, nil
}

func (m *mockTodoRepo) GetOneTodo(ctx context.Context, opt repository.GetOneTodoOptions) (model.Todo, error) {
	if m.fail {
		return model.Todo{}, errors.New("db error")
	}
	t, ok := m.todos[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Todo{}, nil
	}
	return t, nil
}

func (m *mockTodoRepo) ListTodos(ctx context.Context, opt repository.ListTodosOptions) ([]model.Todo, int, error) {
	if m.fail {
		return nil, 0, errors.New("db error")
	}
	var out []model.Todo
	for id := int64(1); id < m.nextID; id++ {
		t, ok := m.todos[id]
		if !ok || t.UserID != opt.UserID {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.Priority != nil && t.Priority != *opt.Priority {
			continue
		}
		out = append(out, t)
	}
	total := len(out)
	if opt.Offset > 0 {
		if opt.Offset >= len(out) {
			out = nil
		} else {
			out = out[opt.Offset:]
		}
	}
	if opt.Limit > 0 && opt.Limit < len(out) {
		out = out[:opt.Limit]
	}
	return out, total, nil
}

func (m *mockTodoRepo) UpdateTodo(ctx context.Context, opt repository.UpdateTodoOptions) (model.Todo, error) {
	if m.fail {
		return model.Todo{}, errors.New("db error")
	}
	t, ok := m.todos[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Todo{}, nil
	}
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Description != nil {
		t.Description = *opt.Description
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.DueDate != nil {
		t.DueDate = *opt.DueDate
	}
	t.UpdatedAt = time.Now()
	m.todos[opt.ID] = t
	return t, nil
}

func (m *mockTodoRepo) DeleteTodo(ctx context.Context, opt repository.DeleteTodoOptions) error {
	if m.fail {
		return errors.New("db error")
	}
	delete(m.todos, opt.ID)
	return nil
}

func newUseCase(repo repository.Repository) todo.UseCase {
	parser, _ := datemath.NewParser("UTC")
	return usecase.New(repo, parser, log.NewNop())
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Success With Defaults", func(t *testing.T) {
		uc := newUseCase(newMockTodoRepo())
		out, err := uc.Create(ctx, sc, todo.CreateInput{Title: "buy groceries"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Todo.Priority != model.PriorityMedium {
			t.Errorf("default priority = %d, want %d", out.Todo.Priority, model.PriorityMedium)
		}
		if out.Todo.UserID != "u1" {
			t.Errorf("owner = %q, want u1", out.Todo.UserID)
		}
	})

	t.Run("Empty Title Rejected", func(t *testing.T) {
		uc := newUseCase(newMockTodoRepo())
		_, err := uc.Create(ctx, sc, todo.CreateInput{Title: "   "})
		if !errors.Is(err, todo.ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Invalid Priority Rejected", func(t *testing.T) {
		uc := newUseCase(newMockTodoRepo())
		_, err := uc.Create(ctx, sc, todo.CreateInput{Title: "x", Priority: 9})
		if !errors.Is(err, todo.ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("Due Token Stored Verbatim", func(t *testing.T) {
		uc := newUseCase(newMockTodoRepo())
		out, err := uc.Create(ctx, sc, todo.CreateInput{Title: "x", DueDate: "by_date:12/25"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Todo.DueDate != "by_date:12/25" {
			t.Errorf("due token = %q, want by_date:12/25", out.Todo.DueDate)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	seed := func(t *testing.T) (todo.UseCase, int64) {
		t.Helper()
		repo := newMockTodoRepo()
		uc := newUseCase(repo)
		out, err := uc.Create(ctx, sc, todo.CreateInput{Title: "original", Description: "original"})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		return uc, out.Todo.ID
	}

	t.Run("Sparse Update Touches Only Set Fields", func(t *testing.T) {
		uc, id := seed(t)
		out, err := uc.Update(ctx, sc, todo.UpdateInput{ID: id, Completed: boolPtr(true)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Todo.Completed {
			t.Errorf("completed not applied")
		}
		if out.Todo.Title != "original" {
			t.Errorf("title changed to %q, want untouched", out.Todo.Title)
		}
	})

	t.Run("No Fields Rejected", func(t *testing.T) {
		uc, id := seed(t)
		_, err := uc.Update(ctx, sc, todo.UpdateInput{ID: id})
		if !errors.Is(err, todo.ErrNoFields) {
			t.Fatalf("expected ErrNoFields, got %v", err)
		}
	})

	t.Run("Missing Todo", func(t *testing.T) {
		uc, _ := seed(t)
		_, err := uc.Update(ctx, sc, todo.UpdateInput{ID: 999, Title: strPtr("new")})
		if !errors.Is(err, todo.ErrTodoNotFound) {
			t.Fatalf("expected ErrTodoNotFound, got %v", err)
		}
	})

	t.Run("Other Owner Invisible", func(t *testing.T) {
		uc, id := seed(t)
		_, err := uc.Update(ctx, model.Scope{UserID: "u2"}, todo.UpdateInput{ID: id, Title: strPtr("hijack")})
		if !errors.Is(err, todo.ErrTodoNotFound) {
			t.Fatalf("expected ErrTodoNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Reports Deleted Title", func(t *testing.T) {
		repo := newMockTodoRepo()
		uc := newUseCase(repo)
		created, _ := uc.Create(ctx, sc, todo.CreateInput{Title: "old task"})

		out, err := uc.Delete(ctx, sc, created.Todo.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.DeletedID != created.Todo.ID || out.DeletedTitle != "old task" {
			t.Errorf("got %+v, want id %d title %q", out, created.Todo.ID, "old task")
		}
		if _, err := uc.Detail(ctx, sc, created.Todo.ID); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("todo still visible after delete")
		}
	})

	t.Run("Missing Todo", func(t *testing.T) {
		uc := newUseCase(newMockTodoRepo())
		if _, err := uc.Delete(ctx, sc, 42); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Fatalf("expected ErrTodoNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	seed := func(t *testing.T) todo.UseCase {
		t.Helper()
		uc := newUseCase(newMockTodoRepo())
		inputs := []todo.CreateInput{
			{Title: "due soon", DueDate: "tomorrow"},
			{Title: "due later", DueDate: "next_month"},
			{Title: "no due date", Priority: model.PriorityHigh},
		}
		for _, in := range inputs {
			if _, err := uc.Create(ctx, sc, in); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		return uc
	}

	t.Run("Priority Filter", func(t *testing.T) {
		uc := seed(t)
		out, err := uc.List(ctx, sc, todo.ListInput{Priority: intPtr(model.PriorityHigh)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 || len(out.Todos) != 1 || out.Todos[0].Title != "no due date" {
			t.Errorf("got %+v, want the single high priority todo", out)
		}
	})

	t.Run("Due Filter Resolves Tokens", func(t *testing.T) {
		uc := seed(t)
		out, err := uc.List(ctx, sc, todo.ListInput{DueToken: "next_week"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 || len(out.Todos) != 1 || out.Todos[0].Title != "due soon" {
			t.Errorf("got %+v, want only the todo due tomorrow", out)
		}
	})

	t.Run("Bad Due Filter", func(t *testing.T) {
		uc := seed(t)
		_, err := uc.List(ctx, sc, todo.ListInput{DueToken: "whenever"})
		if !errors.Is(err, todo.ErrInvalidDueFilter) {
			t.Fatalf("expected ErrInvalidDueFilter, got %v", err)
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		uc := seed(t)
		out, err := uc.List(ctx, sc, todo.ListInput{Limit: 2, Offset: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 3 || len(out.Todos) != 1 {
			t.Errorf("total = %d len = %d, want 3 and 1", out.Total, len(out.Todos))
		}
	})
}
