package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/user-directory/internal/repository"
	"github.com/maxviazov/user-directory/internal/service"
)

const welcomeMessage = "Welcome to the user management application"

// Flash texts shown after a redirect.
const (
	msgCreated      = "User created successfully"
	msgUpdated      = "User updated successfully"
	msgDeleted      = "User deleted successfully"
	msgNotFound     = "User not found"
	msgUpdateFailed = "Error while updating the user"
	msgDeleteFailed = "Error while deleting the user"
	msgCreateFailed = "Error while creating the user"
)

// PageHandler serves the server-rendered HTML pages.
type PageHandler struct {
	svc service.UserService
	log zerolog.Logger
}

func NewPageHandler(svc service.UserService, logger zerolog.Logger) *PageHandler {
	return &PageHandler{svc: svc, log: logger.With().Str("module", "handler").Str("component", "pages").Logger()}
}

func (h *PageHandler) Register(r gin.IRouter) {
	r.GET("/", h.index)

	g := r.Group(UsersPath)
	{
		g.GET("", h.list)
		g.GET("/add", h.addForm)
		g.POST("/add", h.add)
		g.GET("/edit/:id", h.editForm)
		g.POST("/edit/:id", h.edit)
		// GET is kept for plain links; the list page itself posts.
		g.GET("/delete/:id", h.delete)
		g.POST("/delete/:id", h.delete)
	}
}

func (h *PageHandler) index(c *gin.Context) {
	count, err := h.svc.CountUsers(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("count users failed")
	}
	c.HTML(http.StatusOK, tmplIndex, indexView{
		Title:     "Home",
		Flash:     popFlash(c),
		Message:   welcomeMessage,
		UserCount: count,
	})
}

func (h *PageHandler) list(c *gin.Context) {
	// Malformed numbers fall back to defaults; Paginate clamps the rest.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.Query("size"))

	res, err := h.svc.ListUsers(c.Request.Context(), page, size)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "failed to list users")
		return
	}
	c.HTML(http.StatusOK, tmplUserList, userListView{
		Title:  "Users",
		Flash:  popFlash(c),
		Users:  res.Items,
		Window: res.Window,
	})
}

func (h *PageHandler) addForm(c *gin.Context) {
	c.HTML(http.StatusOK, tmplUserForm, userFormView{
		Title:  "Add user",
		Flash:  popFlash(c),
		Action: UsersPath + "/add",
	})
}

func (h *PageHandler) add(c *gin.Context) {
	var in service.UserInput
	_ = c.ShouldBind(&in) // string-only form, missing fields stay empty and fail validation

	_, err := h.svc.CreateUser(c.Request.Context(), in)
	switch {
	case err == nil:
		h.redirect(c, FlashSuccess, msgCreated)
	case errors.Is(err, service.ErrInvalidInput):
		c.HTML(http.StatusBadRequest, tmplUserForm, userFormView{
			Title:  "Add user",
			Action: UsersPath + "/add",
			Form:   in,
			Errors: service.FieldErrorMap(err),
		})
	default:
		_ = c.Error(err)
		h.redirect(c, FlashError, msgCreateFailed)
	}
}

func (h *PageHandler) editForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.redirect(c, FlashError, msgNotFound)
		return
	}
	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, service.ErrInvalidInput) {
			_ = c.Error(err)
		}
		h.redirect(c, FlashError, msgNotFound)
		return
	}
	c.HTML(http.StatusOK, tmplUserForm, userFormView{
		Title:  "Edit user",
		Flash:  popFlash(c),
		IsEdit: true,
		Action: editPath(id),
		Form:   service.InputFromUser(u),
	})
}

func (h *PageHandler) edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.redirect(c, FlashError, msgUpdateFailed)
		return
	}
	var in service.UserInput
	_ = c.ShouldBind(&in)

	_, err := h.svc.UpdateUser(c.Request.Context(), id, in)
	switch {
	case err == nil:
		h.redirect(c, FlashSuccess, msgUpdated)
	case errors.Is(err, service.ErrInvalidInput):
		c.HTML(http.StatusBadRequest, tmplUserForm, userFormView{
			Title:  "Edit user",
			IsEdit: true,
			Action: editPath(id),
			Form:   in,
			Errors: service.FieldErrorMap(err),
		})
	default:
		if !errors.Is(err, repository.ErrNotFound) {
			_ = c.Error(err)
		}
		h.redirect(c, FlashError, msgUpdateFailed)
	}
}

func (h *PageHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.redirect(c, FlashError, msgDeleteFailed)
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, service.ErrInvalidInput) {
			_ = c.Error(err)
		}
		h.redirect(c, FlashError, msgDeleteFailed)
		return
	}
	h.redirect(c, FlashSuccess, msgDeleted)
}

func (h *PageHandler) redirect(c *gin.Context, kind, message string) {
	setFlash(c, kind, message)
	c.Redirect(http.StatusSeeOther, UsersPath)
}

func editPath(id int64) string {
	return UsersPath + "/edit/" + strconv.FormatInt(id, 10)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
