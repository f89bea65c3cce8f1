package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"fitdash/internal/fitness"
	"fitdash/internal/layout"
)

const (
	infoToastTTL = 3 * time.Second
	waterStepMl  = 250
)

// Toast is a one-line notice under the dashboard. Warnings stay until dismissed.
type Toast struct {
	Text    string
	Warning bool
	id      int
}

// AppModel is the root model: a dashboard that can switch into layout edit mode.
type AppModel struct {
	Mode       AppMode
	Layout     *layout.Manager
	Dashboard  *DashboardView
	KeyHandler *KeyHandler
	Confirm    *ConfirmModal
	Compose    *ComposeModal
	Toast      *Toast
	Logger     *zap.Logger

	// Fitness backs the widget bodies and the view-mode logging keys.
	// Nil turns those keys into no-ops.
	Fitness *FitnessContent

	// Changes signals external writes to the stored layout. Nil disables reloads.
	Changes <-chan struct{}

	ctx      context.Context
	toastSeq int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Dashboard.Init(), a.waitForChange())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.Confirm != nil {
			_, cmd := a.Confirm.Update(msg)
			return a, cmd
		}
		if a.Compose != nil {
			_, cmd := a.Compose.Update(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, keyCmd
			}
		}
		return a, nil
	case EnterEditMsg:
		if a.Layout.EnterEditMode() {
			a.sync()
		}
		return a, nil
	case ToggleSelectedMsg:
		if id := a.Dashboard.SelectedID(); id != "" && a.Layout.Toggle(id) {
			a.sync()
		}
		return a, nil
	case MoveSelectedMsg:
		id := a.Dashboard.SelectedID()
		if id != "" && a.Layout.Move(id, msg.Dir) {
			a.sync()
			a.Dashboard.Select(id)
		}
		return a, nil
	case CursorMsg:
		switch {
		case msg.Delta > 0:
			a.Dashboard.CursorDown()
		case msg.Delta < 0:
			a.Dashboard.CursorUp()
		}
		return a, nil
	case SwitchAreaMsg:
		a.Dashboard.SwitchArea()
		return a, nil
	case SaveLayoutMsg:
		if !a.Layout.Editing() {
			return a, nil
		}
		err := a.Layout.Save(a.ctx)
		a.sync()
		if err != nil {
			return a, a.showToast(fmt.Sprintf("Layout not saved: %v", err), true)
		}
		return a, a.showToast("Layout saved", false)
	case CancelEditMsg:
		if a.Layout.Cancel() {
			a.sync()
		}
		return a, nil
	case ShowRestoreDefaultsMsg:
		a.Confirm = NewRestoreDefaultsConfirmModal()
		return a, a.Confirm.Init()
	case RestoreDefaultsMsg:
		a.Confirm = nil
		err := a.Layout.RestoreDefaults(a.ctx)
		a.sync()
		if err != nil {
			return a, a.showToast(fmt.Sprintf("Defaults restored but not saved: %v", err), true)
		}
		return a, a.showToast("Default layout restored", false)
	case DismissModalMsg:
		a.Confirm = nil
		a.Compose = nil
		return a, nil
	case LogWaterMsg:
		if a.Fitness == nil || a.Fitness.Store == nil {
			return a, nil
		}
		now := a.Fitness.Now()
		if err := a.Fitness.Store.LogWater(now, msg.Ml); err != nil {
			return a, a.showToast(fmt.Sprintf("Water not logged: %v", err), true)
		}
		total, goal := a.Fitness.Store.HydrationOn(now)
		return a, a.showToast(fmt.Sprintf("Logged %d ml (%d / %d ml today)", msg.Ml, total, goal), false)
	case CycleWorkoutFilterMsg:
		if a.Fitness == nil {
			return a, nil
		}
		label := "all"
		if f := a.Fitness.CycleFilter(); f != "" {
			label = string(f)
		}
		return a, a.showToast("Recent workouts: "+label, false)
	case ShowComposeMsg:
		if a.Fitness == nil || a.Fitness.Store == nil {
			return a, nil
		}
		a.Compose = NewComposeModal()
		return a, a.Compose.Init()
	case AddPostMsg:
		a.Compose = nil
		if a.Fitness == nil || a.Fitness.Store == nil {
			return a, nil
		}
		if err := a.Fitness.Store.AddPost(fitness.Post{Body: msg.Body, At: a.Fitness.Now()}); err != nil {
			return a, a.showToast(fmt.Sprintf("Post not added: %v", err), true)
		}
		return a, a.showToast("Posted to the feed", false)
	case DismissToastMsg:
		a.Toast = nil
		return a, nil
	case toastExpiredMsg:
		if a.Toast != nil && a.Toast.id == msg.id {
			a.Toast = nil
		}
		return a, nil
	case LayoutChangedMsg:
		if a.Layout.Reload(a.ctx) {
			a.Logger.Debug("layout reloaded after external change", zap.String("session", a.Layout.Session()))
			a.sync()
		}
		return a, a.waitForChange()
	}

	v, cmd := a.Dashboard.Update(msg)
	if d, ok := v.(*DashboardView); ok {
		a.Dashboard = d
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n")
	switch {
	case a.Confirm != nil:
		b.WriteString(a.Confirm.View())
	case a.Compose != nil:
		b.WriteString(a.Compose.View())
	default:
		b.WriteString(a.Dashboard.View())
	}
	if a.Toast != nil {
		style := Styles.Toast
		if a.Toast.Warning {
			style = Styles.ToastErr
		}
		b.WriteString("\n" + style.Render(a.Toast.Text))
	}
	if a.KeyHandler != nil {
		if a.KeyHandler.LeaderWaiting {
			b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Mode))
		} else if help := RenderModeHelp(a.KeyHandler.Registry, a.Mode); help != "" {
			b.WriteString("\n" + help)
		}
	}
	return b.String()
}

func (a *AppModel) header() string {
	title := Styles.Title.Render("fitdash")
	if a.Mode == ModeEdit {
		return title + "  " + Styles.Section.Render("Customizing layout")
	}
	return title + "  " + Styles.Muted.Render("SPC: menu")
}

// sync copies the manager's state into the mode and the dashboard.
func (a *AppModel) sync() {
	a.Mode = ModeView
	if a.Layout.Editing() {
		a.Mode = ModeEdit
	}
	a.Dashboard.SetLayout(a.Layout.Widgets(), a.Layout.Editing())
}

func (a *AppModel) showToast(text string, warning bool) tea.Cmd {
	a.toastSeq++
	a.Toast = &Toast{Text: text, Warning: warning, id: a.toastSeq}
	if warning {
		a.Logger.Warn("warning shown", zap.String("detail", text))
		return nil
	}
	id := a.toastSeq
	return tea.Tick(infoToastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (a *AppModel) waitForChange() tea.Cmd {
	ch := a.Changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return LayoutChangedMsg{}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// NewAppModel creates the root application model around mgr. content renders
// widget bodies; logger may be nil.
func NewAppModel(ctx context.Context, mgr *layout.Manager, content ContentFunc, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	view := []AppMode{ModeView}
	edit := []AppMode{ModeEdit}

	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("q", tea.Quit, "quit", view)
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("x", emit(DismissToastMsg{}), "")
	reg.BindWithDescForMode("e", emit(EnterEditMsg{}), "customize", view)
	reg.BindWithDescForMode("SPC l e", emit(EnterEditMsg{}), "Edit layout", view)
	reg.BindWithDesc("SPC l r", emit(ShowRestoreDefaultsMsg{}), "Restore defaults")
	reg.BindWithDesc("SPC r", emit(ShowRestoreDefaultsMsg{}), "Restore defaults")
	reg.BindWithDescForMode("w", emit(LogWaterMsg{Ml: waterStepMl}), "water", view)
	reg.BindWithDescForMode("f", emit(CycleWorkoutFilterMsg{}), "filter", view)
	reg.BindWithDescForMode("p", emit(ShowComposeMsg{}), "post", view)

	reg.BindWithDescForMode("j", emit(CursorMsg{Delta: 1}), "down", edit)
	reg.BindWithDescForMode("down", emit(CursorMsg{Delta: 1}), "", edit)
	reg.BindWithDescForMode("k", emit(CursorMsg{Delta: -1}), "up", edit)
	reg.BindWithDescForMode("up", emit(CursorMsg{Delta: -1}), "", edit)
	reg.BindWithDescForMode("K", emit(MoveSelectedMsg{Dir: layout.Up}), "move up", edit)
	reg.BindWithDescForMode("J", emit(MoveSelectedMsg{Dir: layout.Down}), "move down", edit)
	reg.BindWithDescForMode("v", emit(ToggleSelectedMsg{}), "show/hide", edit)
	reg.BindWithDescForMode("tab", emit(SwitchAreaMsg{}), "column", edit)
	reg.BindWithDescForMode("s", emit(SaveLayoutMsg{}), "save", edit)
	reg.BindWithDescForMode("esc", emit(CancelEditMsg{}), "cancel", edit)
	reg.BindWithDescForMode("SPC l s", emit(SaveLayoutMsg{}), "Save layout", edit)

	m := &AppModel{
		Mode:       ModeView,
		Layout:     mgr,
		Dashboard:  NewDashboardView(content),
		KeyHandler: NewKeyHandler(reg),
		Logger:     logger,
		ctx:        ctx,
	}
	m.sync()
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
