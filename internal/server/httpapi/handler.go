// Package httpapi exposes the item CRUD operations over HTTP. Dispatch is
// purely method-based on a single route; every operation goes through one
// shared error-translation layer.
package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/scrapbook/internal/common"
	"github.com/dmitrijs2005/scrapbook/internal/logging"
	"github.com/dmitrijs2005/scrapbook/internal/server/services"
)

type Handler struct {
	todos  *services.TodoService
	logger logging.Logger
}

func NewHandler(todos *services.TodoService, logger logging.Logger) *Handler {
	return &Handler{todos: todos, logger: logger.With("module", "httpapi")}
}

type createRequest struct {
	Text     string  `json:"text"`
	Category string  `json:"category"`
	Image    *string `json:"image"`
}

type updateRequest struct {
	ID        string  `json:"id"`
	Text      *string `json:"text"`
	Category  *string `json:"category"`
	Completed *bool   `json:"completed"`
	Image     *string `json:"image"`
}

type updateResponse struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

type deleteResponse struct {
	Deleted int64 `json:"deletedCount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Register attaches the CRUD operations to the echo instance. Verbs other
// than the four registered ones get a 405 from the router.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/todos", h.wrap(h.list))
	e.POST("/todos", h.wrap(h.create))
	e.PUT("/todos", h.wrap(h.update))
	e.DELETE("/todos", h.wrap(h.delete))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
}

// wrap is the shared error-translation layer: operations return a payload or
// an error, and the error kind alone decides the response status.
func (h *Handler) wrap(op func(c echo.Context) (any, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		payload, err := op(c)
		if err != nil {
			return h.writeError(c, err)
		}
		return c.JSON(http.StatusOK, payload)
	}
}

func (h *Handler) writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	}

	h.logger.Error(c.Request().Context(), "request failed",
		"method", c.Request().Method, "status", status, "error", err.Error())

	return c.JSON(status, errorResponse{Error: err.Error()})
}

// queryInt64 reads an integer query parameter, falling back to def when the
// parameter is absent or unparsable.
func queryInt64(c echo.Context, name string, def int64) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func (h *Handler) list(c echo.Context) (any, error) {
	page := queryInt64(c, "page", 1)
	limit := queryInt64(c, "limit", 0)

	items, err := h.todos.List(c.Request().Context(), page, limit, c.QueryParam("category"))
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (h *Handler) create(c echo.Context) (any, error) {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return nil, fmt.Errorf("%w: malformed request body", common.ErrValidation)
	}

	todo, err := h.todos.Create(c.Request().Context(), services.CreateParams{
		Text:     req.Text,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return nil, err
	}

	h.logger.Info(c.Request().Context(), "todo created", "id", todo.ID.Hex())
	return todo, nil
}

func (h *Handler) update(c echo.Context) (any, error) {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return nil, fmt.Errorf("%w: malformed request body", common.ErrValidation)
	}

	res, err := h.todos.Update(c.Request().Context(), services.UpdateParams{
		ID:        req.ID,
		Text:      req.Text,
		Category:  req.Category,
		Completed: req.Completed,
		Image:     req.Image,
	})
	if err != nil {
		return nil, err
	}

	return updateResponse{Matched: res.Matched, Modified: res.Modified}, nil
}

func (h *Handler) delete(c echo.Context) (any, error) {
	n, err := h.todos.Delete(c.Request().Context(), c.QueryParam("id"))
	if err != nil {
		return nil, err
	}

	return deleteResponse{Deleted: n}, nil
}
