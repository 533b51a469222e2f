package views

import (
	"medicare-frontend/internal/app/delivery/navigation"
	"medicare-frontend/internal/app/delivery/shell"
	"medicare-frontend/internal/app/delivery/table"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/app/services/forms"
)

const (
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageResource  = "resource"
	PageForm      = "form"
	PageConfirm   = "confirm"
)

var pages = []string{PageLogin, PageDashboard, PageResource, PageForm, PageConfirm}

// Layout is shared by every page. Identity is nil on the login page.
type Layout struct {
	Title    string
	Identity *models.Identity
	Menu     []navigation.Item
	Current  string
	Error    string
	Notice   string
}

type FormView struct {
	Title  string
	Action string
	Submit string
	Cancel string
	Error  string
	Fields []forms.Field
}

// NewFormView lays out form for posting to action.
func NewFormView(form forms.Form, action, submit, cancel string) FormView {
	return FormView{
		Title:  form.Title(),
		Action: action,
		Submit: submit,
		Cancel: cancel,
		Error:  form.Error(),
		Fields: form.Fields(),
	}
}

type LoginPage struct {
	Layout
	Login    FormView
	Register FormView
}

type DashboardPage struct {
	Layout
	Greeting string
	Subtitle string
	Cards    []shell.StatCard
}

type ResourcePage struct {
	Layout
	View     string
	Heading  string
	AddLabel string
	Table    table.Table
}

type FormPage struct {
	Layout
	Form FormView
}

type ConfirmPage struct {
	Layout
	Message string
	Action  string
	Cancel  string
}
