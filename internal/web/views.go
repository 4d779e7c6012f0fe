package web

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
	"github.com/vasiliy-maslov/user-admin/internal/ui"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Names come from the remote service; markup in them is dropped, not shown.
var displayPolicy = bluemonday.StrictPolicy()

// Views renders the console pages.
type Views struct {
	list *pongo2.Template
	edit *pongo2.Template
}

func NewViews() (*Views, error) {
	files, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open templates: %w", err)
	}

	set := pongo2.NewSet("user-admin", pongo2.NewFSLoader(files))

	list, err := set.FromFile("list.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load list template: %w", err)
	}
	edit, err := set.FromFile("edit.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load edit template: %w", err)
	}

	return &Views{list: list, edit: edit}, nil
}

type noticeView struct {
	Level   string
	Message string
}

type rowView struct {
	Key   string
	Name  string
	Age   int
	Email string
}

type fieldView struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Required bool
	Min      string
}

type listPage struct {
	Notices []noticeView
	Rows    []rowView
}

type editPage struct {
	Notices []noticeView
	Fields  []fieldView
}

func (v *Views) renderList(w io.Writer, notices []ui.Notice, rows []ui.Row) error {
	page := listPage{Notices: noticeViews(notices), Rows: make([]rowView, 0, len(rows))}
	for _, row := range rows {
		page.Rows = append(page.Rows, rowView{
			Key:   row.Key,
			Name:  displayPolicy.Sanitize(row.Name),
			Age:   row.Age,
			Email: row.Email,
		})
	}
	return v.list.ExecuteWriter(pongo2.Context{"page": page}, w)
}

func (v *Views) renderEdit(w io.Writer, notices []ui.Notice, draft user.User) error {
	page := editPage{Notices: noticeViews(notices)}
	for _, f := range user.Fields() {
		page.Fields = append(page.Fields, fieldViewFor(f, draft))
	}
	return v.edit.ExecuteWriter(pongo2.Context{"page": page}, w)
}

func fieldViewFor(f user.Field, draft user.User) fieldView {
	view := fieldView{Name: string(f), Label: f.Label(), Type: "text", Required: true}

	switch f {
	case user.FieldName:
		view.Value = draft.Name
	case user.FieldAge:
		view.Type = "number"
		view.Min = "0"
		view.Value = blankIfZero(int64(draft.Age))
	case user.FieldEmail:
		view.Type = "email"
		view.Value = draft.Email
	case user.FieldPassword:
		view.Type = "password"
		view.Value = draft.Password
	case user.FieldPhone:
		view.Type = "tel"
		view.Required = false
		view.Value = blankIfZero(draft.Phone)
	}

	return view
}

func blankIfZero(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

func noticeViews(notices []ui.Notice) []noticeView {
	views := make([]noticeView, 0, len(notices))
	for _, n := range notices {
		views = append(views, noticeView{Level: n.Level.String(), Message: n.Message})
	}
	return views
}
