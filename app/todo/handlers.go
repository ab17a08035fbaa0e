package todo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/logger"
	"github.com/dmitrymomot/waypoint/core/response"
)

type errorBody struct {
	Error string `json:"error"`
}

type dataBody struct {
	Data any `json:"data"`
}

type tokenBody struct {
	Token string `json:"token"`
}

func (a *App) login(req *handler.Request, res *response.Writer, _ handler.Next) {
	token, err := a.auth.login(credentialsFrom(req.Body))
	if errors.Is(err, ErrInvalidCredentials) {
		a.send(req, res.Status(http.StatusUnauthorized), errorBody{Error: http.StatusText(http.StatusUnauthorized)})
		return
	}
	if err != nil {
		a.logger.ErrorContext(req.Context(), "failed to issue token", logger.Error(err))
		a.send(req, res.Status(http.StatusInternalServerError), errorBody{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}
	a.send(req, res, tokenBody{Token: token})
}

func (a *App) listTodos(req *handler.Request, res *response.Writer, _ handler.Next) {
	a.send(req, res, dataBody{Data: a.store.List()})
}

func (a *App) createTodo(req *handler.Request, res *response.Writer, _ handler.Next) {
	fields, ok := objectBody(req.Body)
	if !ok {
		a.send(req, res.Status(http.StatusBadRequest), errorBody{Error: "body must be a JSON object"})
		return
	}
	a.send(req, res, dataBody{Data: a.store.Create(fields)})
}

func (a *App) getTodo(req *handler.Request, res *response.Writer, _ handler.Next) {
	id, ok := a.todoID(req, res)
	if !ok {
		return
	}
	item, err := a.store.Get(id)
	if err != nil {
		a.send(req, res.Status(http.StatusNotFound), errorBody{Error: err.Error()})
		return
	}
	a.send(req, res, dataBody{Data: item})
}

func (a *App) deleteTodo(req *handler.Request, res *response.Writer, _ handler.Next) {
	id, ok := a.todoID(req, res)
	if !ok {
		return
	}
	if err := a.store.Delete(id); err != nil {
		a.send(req, res.Status(http.StatusNotFound), errorBody{Error: err.Error()})
		return
	}
	a.send(req, res.Status(http.StatusNoContent), "")
}

func (a *App) todoID(req *handler.Request, res *response.Writer) (int, bool) {
	id, err := strconv.Atoi(req.Param("id"))
	if err != nil || id < 1 {
		a.send(req, res.Status(http.StatusBadRequest), errorBody{Error: "invalid todo id"})
		return 0, false
	}
	return id, true
}

func (a *App) send(req *handler.Request, res *response.Writer, body any) {
	if err := res.Send(body); err != nil {
		a.logger.ErrorContext(req.Context(), "failed to send response", logger.Error(err))
	}
}

// objectBody accepts a decoded JSON object or an absent body.
func objectBody(body any) (map[string]any, bool) {
	switch b := body.(type) {
	case map[string]any:
		return b, true
	case nil:
		return nil, true
	case string:
		return nil, b == ""
	}
	return nil, false
}
