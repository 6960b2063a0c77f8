package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskvault/internal/controller"
	"taskvault/internal/ui/styles"
)

// LoggedIn is emitted when the user has a session.
type LoggedIn struct {
	Session *controller.Session
}

// LoginView is the login / register form shown before any task data.
type LoginView struct {
	ctrl   *controller.Controller
	styles *styles.Styles

	registering bool
	name        textinput.Model
	email       textinput.Model
	password    textinput.Model
	remember    bool
	focusIdx    int
	message     string
	messageOK   bool
	width       int
	height      int
}

// NewLoginView creates the form. lastEmail pre-fills the email field for
// accounts that chose to be remembered.
func NewLoginView(ctrl *controller.Controller, lastEmail string) *LoginView {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 60

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 120
	email.SetValue(lastEmail)
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return &LoginView{
		ctrl:     ctrl,
		styles:   styles.NewStyles(),
		name:     name,
		email:    email,
		password: password,
		remember: lastEmail != "",
	}
}

func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *LoginView) inputs() []*textinput.Model {
	if v.registering {
		return []*textinput.Model{&v.name, &v.email, &v.password}
	}
	return []*textinput.Model{&v.email, &v.password}
}

func (v *LoginView) focusCurrent() {
	for i, in := range v.inputs() {
		if i == v.focusIdx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (v *LoginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return v, tea.Quit

		case "tab", "down":
			v.focusIdx = (v.focusIdx + 1) % len(v.inputs())
			v.focusCurrent()
			return v, nil

		case "shift+tab", "up":
			v.focusIdx = (v.focusIdx + len(v.inputs()) - 1) % len(v.inputs())
			v.focusCurrent()
			return v, nil

		case "ctrl+r":
			v.registering = !v.registering
			v.focusIdx = 0
			v.message = ""
			v.focusCurrent()
			return v, nil

		case "ctrl+t":
			v.remember = !v.remember
			return v, nil

		case "enter":
			return v, v.submit()
		}
	}

	var cmds []tea.Cmd
	for _, in := range v.inputs() {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}
	return v, tea.Batch(cmds...)
}

func (v *LoginView) submit() tea.Cmd {
	email := strings.TrimSpace(v.email.Value())
	password := v.password.Value()

	if v.registering {
		ok, msg := v.ctrl.RegisterUser(strings.TrimSpace(v.name.Value()), email, password)
		v.message, v.messageOK = msg, ok
		if ok {
			v.registering = false
			v.focusIdx = 0
			v.password.SetValue("")
			v.focusCurrent()
		}
		return nil
	}

	ok, msg, session := v.ctrl.Login(email, password, v.remember)
	v.message, v.messageOK = msg, ok
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return LoggedIn{Session: session}
	}
}

func (v *LoginView) View() string {
	var b strings.Builder

	if v.registering {
		b.WriteString(v.styles.Title.Render("taskvault — register"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Label.Render("Name") + "\n")
		b.WriteString(v.name.View() + "\n")
	} else {
		b.WriteString(v.styles.Title.Render("taskvault — login"))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Label.Render("Email") + "\n")
	b.WriteString(v.email.View() + "\n")
	b.WriteString(v.styles.Label.Render("Password") + "\n")
	b.WriteString(v.password.View() + "\n")

	if !v.registering {
		check := "[ ]"
		if v.remember {
			check = "[x]"
		}
		b.WriteString(v.styles.Label.Render(check+" remember me (ctrl+t)") + "\n")
	}

	if v.message != "" {
		b.WriteString("\n")
		if v.messageOK {
			b.WriteString(v.styles.Success.Render(v.message))
		} else {
			b.WriteString(v.styles.Error.Render(v.message))
		}
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("enter submit · tab next field · ctrl+r toggle register · ctrl+c quit"))

	form := v.styles.Form.Render(b.String())
	if v.width == 0 {
		return form
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, form)
}
