package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskvault/internal/controller"
	"taskvault/internal/db"
	"taskvault/internal/ui/styles"
	"taskvault/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewLogin View = iota
	ViewTasks
)

// App switches between the login form and the task list. It is a thin
// shell: every action goes through the controller and renders whatever
// message comes back.
type App struct {
	ctrl        *controller.Controller
	store       *db.DB
	currentView View
	login       *views.LoginView
	tasks       *views.TaskListView
	width       int
	height      int
}

// NewApp creates the shell over an already-wired controller. The store is
// only used for the last-login convenience setting.
func NewApp(ctrl *controller.Controller, store *db.DB) *App {
	lastEmail, _ := store.GetSetting("last_email")
	return &App{
		ctrl:        ctrl,
		store:       store,
		currentView: ViewLogin,
		login:       views.NewLoginView(ctrl, lastEmail),
	}
}

func (a *App) Init() tea.Cmd {
	return a.login.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case views.LoggedIn:
		if msg.Session.DarkMode {
			styles.Current = styles.Dark
		} else {
			styles.Current = styles.Light
		}
		a.store.SetSetting("last_email", msg.Session.Email)

		a.currentView = ViewTasks
		a.tasks = views.NewTaskListView(a.ctrl, msg.Session)
		return a, tea.Batch(
			a.tasks.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)

	case views.LoggedOut:
		a.currentView = ViewLogin
		a.login = views.NewLoginView(a.ctrl, "")
		a.tasks = nil
		return a, tea.Batch(
			a.login.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewLogin:
		_, cmd = a.login.Update(msg)
	case ViewTasks:
		_, cmd = a.tasks.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewTasks:
		return a.tasks.View()
	default:
		return a.login.View()
	}
}
