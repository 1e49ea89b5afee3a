package http

import (
	"time"

	"conversational-todo/internal/model"
	"conversational-todo/internal/todo"
	"conversational-todo/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Priority    int    `json:"priority"    binding:"omitempty,min=1,max=5"`
	DueDate     string `json:"due_date"    binding:"max=64"`
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
	}
}

// ---

type listReq struct {
	Completed *bool  `form:"completed"`
	Priority  *int   `form:"priority" binding:"omitempty,min=1,max=5"`
	Due       string `form:"due"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() todo.ListInput {
	limit := r.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 1000 {
		limit = 1000
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return todo.ListInput{
		Completed: r.Completed,
		Priority:  r.Priority,
		DueToken:  r.Due,
		Limit:     limit,
		Offset:    offset,
	}
}

// ---

type updateReq struct {
	ID          int64   `json:"-"` // populated from URI param
	Title       *string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
	Priority    *int    `json:"priority"    binding:"omitempty,min=1,max=5"`
	DueDate     *string `json:"due_date"    binding:"omitempty,max=64"`
}

func (r updateReq) toInput() todo.UpdateInput {
	return todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Completed   bool              `json:"completed"`
	Priority    int               `json:"priority"`
	DueDate     string            `json:"due_date,omitempty"`
	DueOn       *response.Date    `json:"due_on,omitempty"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

// newTodoResp renders a todo, resolving the stored due token to a concrete
// date when it parses. Unresolvable tokens are passed through as-is.
func (h *handler) newTodoResp(t model.Todo) todoResp {
	resp := todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
	if t.DueDate != "" {
		if due, err := h.parser.Parse(t.DueDate, time.Now()); err == nil {
			dueOn := response.Date(due)
			resp.DueOn = &dueOn
		}
	}
	return resp
}

type createResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newCreateResp(out todo.CreateOutput) createResp {
	return createResp{Todo: h.newTodoResp(out.Todo)}
}

type listResp struct {
	Todos  []todoResp `json:"todos"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, t := range out.Todos {
		todos[i] = h.newTodoResp(t)
	}
	return listResp{
		Todos:  todos,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newDetailResp(out todo.DetailOutput) detailResp {
	return detailResp{Todo: h.newTodoResp(out.Todo)}
}

type updateResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newUpdateResp(out todo.UpdateOutput) updateResp {
	return updateResp{Todo: h.newTodoResp(out.Todo)}
}

type deleteResp struct {
	DeletedID    int64  `json:"deleted_id"`
	DeletedTitle string `json:"deleted_title"`
}

func (h *handler) newDeleteResp(out todo.DeleteOutput) deleteResp {
	return deleteResp{DeletedID: out.DeletedID, DeletedTitle: out.DeletedTitle}
}
