package handler

import (
	"embed"
	"html/template"

	"github.com/maxviazov/user-directory/internal/model"
	"github.com/maxviazov/user-directory/internal/repository"
	"github.com/maxviazov/user-directory/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names, one per page file under templates/.
const (
	tmplIndex    = "index.html"
	tmplUserList = "user_list.html"
	tmplUserForm = "user_form.html"
)

// Templates parses the embedded page templates. They ship with the binary,
// so a parse error is a programming error.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type indexView struct {
	Title     string
	Flash     *Flash
	Message   string
	UserCount int
}

type userListView struct {
	Title  string
	Flash  *Flash
	Users  []model.User
	Window repository.Window
}

type userFormView struct {
	Title  string
	Flash  *Flash
	IsEdit bool
	Action string
	Form   service.UserInput
	Errors map[string]string
}
