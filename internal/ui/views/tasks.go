package views

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskvault/internal/controller"
	"taskvault/internal/models"
	"taskvault/internal/ui/styles"
)

// LoggedOut is emitted when the user closes their session.
type LoggedOut struct{}

type taskItem struct {
	task models.Task
}

func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string { return i.task.Description }
func (i taskItem) FilterValue() string { return i.task.Title }

type taskDelegate struct {
	styles *styles.Styles
	width  int
}

func (d taskDelegate) Height() int                               { return 2 }
func (d taskDelegate) Spacing() int                              { return 1 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}

	selected := index == m.Index()
	width := max(d.width-4, 20)

	line := fmt.Sprintf("%s  [%s/%s]", it.task.Title, it.task.Status, it.task.Priority)
	detail := fmt.Sprintf("due %s · %s", it.task.DueAt.Format("2006-01-02"),
		models.FormatDuration(it.task.CreatedAt, it.task.DueAt))

	var titleStyle, descStyle lipgloss.Style
	if selected {
		titleStyle = d.styles.ListSelected.Width(width)
		descStyle = d.styles.ListSelected.Foreground(styles.Current.ForegroundDim).Width(width)
	} else {
		titleStyle = d.styles.ListItem.Width(width)
		descStyle = d.styles.ListItem.Foreground(styles.Current.ForegroundDim).Width(width)
	}
	if it.task.Status == models.StatusCompleted && !selected {
		titleStyle = titleStyle.Foreground(styles.Current.ForegroundDim).Strikethrough(true)
	}

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(line), descStyle.Render(detail))
}

// TaskListView shows and edits the tasks of the logged-in user.
type TaskListView struct {
	ctrl    *controller.Controller
	session *controller.Session
	styles  *styles.Styles

	list     list.Model
	delegate *taskDelegate

	creating  bool
	newTitle  textinput.Model
	newDesc   textinput.Model
	newDue    textinput.Model
	newPrio   models.Priority
	focusIdx  int
	message   string
	messageOK bool
	width     int
	height    int
}

// NewTaskListView builds the task list for an authenticated session.
func NewTaskListView(ctrl *controller.Controller, session *controller.Session) *TaskListView {
	s := styles.NewStyles()

	newTitle := textinput.New()
	newTitle.Placeholder = "Task title"
	newTitle.CharLimit = 120

	newDesc := textinput.New()
	newDesc.Placeholder = "Description"
	newDesc.CharLimit = 200

	newDue := textinput.New()
	newDue.Placeholder = "Due in days (e.g. 7)"
	newDue.CharLimit = 4

	delegate := &taskDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Tasks — " + session.Name
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	return &TaskListView{
		ctrl:     ctrl,
		session:  session,
		styles:   s,
		list:     l,
		delegate: delegate,
		newTitle: newTitle,
		newDesc:  newDesc,
		newDue:   newDue,
		newPrio:  models.PriorityNormal,
	}
}

func (v *TaskListView) Init() tea.Cmd {
	return v.loadTasks
}

type tasksLoadedMsg struct {
	tasks []models.Task
}

func (v *TaskListView) loadTasks() tea.Msg {
	ok, _, tasks := v.ctrl.GetTasks(v.session.Token)
	if !ok {
		return LoggedOut{}
	}
	return tasksLoadedMsg{tasks: tasks}
}

func (v *TaskListView) selectedID() (int64, bool) {
	it, ok := v.list.SelectedItem().(taskItem)
	if !ok {
		return 0, false
	}
	return it.task.ID, true
}

func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.delegate.width = msg.Width
		v.list.SetSize(msg.Width, msg.Height-3)
		return v, nil

	case tasksLoadedMsg:
		items := make([]list.Item, 0, len(msg.tasks))
		for _, t := range msg.tasks {
			items = append(items, taskItem{task: t})
		}
		return v, v.list.SetItems(items)

	case tea.KeyMsg:
		if v.creating {
			return v.updateCreating(msg)
		}
		return v.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *TaskListView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let the list handle keys while its filter input is open.
	if v.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return v, tea.Quit

	case "n":
		v.creating = true
		v.focusIdx = 0
		v.message = ""
		v.newTitle.SetValue("")
		v.newDesc.SetValue("")
		v.newDue.SetValue("")
		v.newPrio = models.PriorityNormal
		v.focusForm()
		return v, textinput.Blink

	case "c", "enter":
		if id, ok := v.selectedID(); ok {
			okDone, m := v.ctrl.CompleteTask(v.session.Token, id)
			v.message, v.messageOK = m, okDone
			return v, v.loadTasks
		}

	case "d":
		if id, ok := v.selectedID(); ok {
			okDel, m := v.ctrl.DeleteTask(v.session.Token, id)
			v.message, v.messageOK = m, okDel
			return v, v.loadTasks
		}

	case "x":
		okClean, m := v.ctrl.CleanupCompletedTasks()
		v.message, v.messageOK = m, okClean
		return v, v.loadTasks

	case "L":
		v.ctrl.Logout(v.session.Token)
		return v, func() tea.Msg { return LoggedOut{} }
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *TaskListView) formInputs() []*textinput.Model {
	return []*textinput.Model{&v.newTitle, &v.newDesc, &v.newDue}
}

func (v *TaskListView) focusForm() {
	for i, in := range v.formInputs() {
		if i == v.focusIdx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (v *TaskListView) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.creating = false
		return v, nil

	case "tab", "down":
		v.focusIdx = (v.focusIdx + 1) % len(v.formInputs())
		v.focusForm()
		return v, nil

	case "shift+tab", "up":
		v.focusIdx = (v.focusIdx + len(v.formInputs()) - 1) % len(v.formInputs())
		v.focusForm()
		return v, nil

	case "ctrl+p":
		switch v.newPrio {
		case models.PriorityImportant:
			v.newPrio = models.PriorityNormal
		case models.PriorityNormal:
			v.newPrio = models.PriorityPostponable
		default:
			v.newPrio = models.PriorityImportant
		}
		return v, nil

	case "enter":
		days, err := strconv.Atoi(strings.TrimSpace(v.newDue.Value()))
		if err != nil || days < 0 {
			v.message, v.messageOK = "due days must be a non-negative number", false
			return v, nil
		}
		now := time.Now()
		ok, m, _ := v.ctrl.CreateTask(v.session.Token, controller.TaskInput{
			Title:       v.newTitle.Value(),
			Description: v.newDesc.Value(),
			StartAt:     now,
			DueAt:       now.AddDate(0, 0, days),
			Priority:    v.newPrio,
		})
		v.message, v.messageOK = m, ok
		if !ok {
			return v, nil
		}
		v.creating = false
		return v, v.loadTasks
	}

	var cmds []tea.Cmd
	for _, in := range v.formInputs() {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}
	return v, tea.Batch(cmds...)
}

func (v *TaskListView) View() string {
	if v.creating {
		var b strings.Builder
		b.WriteString(v.styles.Title.Render("New task"))
		b.WriteString("\n\n")
		b.WriteString(v.newTitle.View() + "\n")
		b.WriteString(v.newDesc.View() + "\n")
		b.WriteString(v.newDue.View() + "\n")
		b.WriteString(v.styles.Label.Render("priority: "+string(v.newPrio)+" (ctrl+p)") + "\n")
		if v.message != "" {
			b.WriteString("\n" + v.styles.Error.Render(v.message) + "\n")
		}
		b.WriteString(v.styles.Help.Render("enter save · esc cancel · tab next field"))

		form := v.styles.Form.Render(b.String())
		if v.width == 0 {
			return form
		}
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, form)
	}

	var status string
	if v.message != "" {
		if v.messageOK {
			status = v.styles.Success.Render(v.message)
		} else {
			status = v.styles.Error.Render(v.message)
		}
	}
	help := v.styles.Help.Render("n new · c complete · d delete · x cleanup · / filter · L logout · q quit")
	return v.list.View() + "\n" + status + help
}
