package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angie11-11/PhotoApp/internal/app/format"
	"github.com/angie11-11/PhotoApp/internal/domain"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
)

const (
	focusName = iota
	focusPath
)

type photoItem struct {
	photo   domain.Photo
	summary string
}

func (p photoItem) Title() string       { return p.photo.Name }
func (p photoItem) Description() string { return p.summary }
func (p photoItem) FilterValue() string { return p.photo.Name }

// changeTracker is shared by every copy of the model; the album subscription
// marks it and Update consumes it.
type changeTracker struct {
	dirty bool
}

func (c *changeTracker) mark() { c.dirty = true }

func (c *changeTracker) consume() bool {
	d := c.dirty
	c.dirty = false
	return d
}

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger
	fmt   format.Formatter

	changes  *changeTracker
	sortedBy domain.SortCriterion

	mode      mode
	list      list.Model
	nameInput textinput.Model
	pathInput textinput.Model
	focus     int

	current    domain.Photo
	hasCurrent bool
	preview    string
	previewErr string
	previewed  bool
	meta       domain.PhotoMetadata

	toast    string
	toastErr bool

	width, height int
}

func Run(deps Deps) error {
	if deps.Album == nil {
		return errors.New("tui: album is required")
	}
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Photos"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	name := textinput.New()
	name.Placeholder = "Sunset at the pier"
	name.CharLimit = 128

	path := textinput.New()
	path.Placeholder = "/path/to/image.jpg"

	m := model{
		theme:     DefaultTheme(),
		deps:      deps,
		log:       log,
		fmt:       format.New(deps.Config.Display.DateFormat),
		changes:   &changeTracker{},
		sortedBy:  deps.Config.Sort.Default,
		mode:      modeBrowse,
		list:      l,
		nameInput: name,
		pathInput: path,
	}

	deps.Album.Subscribe(m.changes.mark)

	m.list.SetItems(m.items())
	if p, ok := deps.Album.First(); ok {
		m.current = p
		m.hasCurrent = true
	}
	return m
}

func (m model) Init() tea.Cmd { return m.loadCurrent() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(max(msg.Width/3, 24), max(msg.Height-10, 5))
		return m, nil

	case previewLoadedMsg:
		if !m.hasCurrent || msg.path != m.current.Path {
			return m, nil
		}
		m.preview = msg.preview
		m.previewErr = ""
		m.previewed = true
		if msg.err != nil {
			m.previewErr = userMessage(msg.err)
		}
		return m, nil

	case metadataLoadedMsg:
		if !m.hasCurrent || msg.path != m.current.Path || msg.err != nil {
			return m, nil
		}
		m.meta = msg.meta
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeAdd {
			return m.updateAdd(msg)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "a":
		m.mode = modeAdd
		m.toast = ""
		return m, m.focusInput(focusName)

	case "d":
		it, ok := m.list.SelectedItem().(photoItem)
		if !ok {
			m.setToast("Please select a photo to delete.", true)
			return m, nil
		}
		if err := m.deps.Album.DeletePhoto(it.photo); err != nil {
			m.fail(err)
			return m, nil
		}
		next, cmd := m.syncAlbum()
		next.setToast("Photo deleted successfully.", false)
		return next, cmd

	case "n", "right":
		return m.navigate(true)

	case "p", "left":
		return m.navigate(false)

	case "1", "2", "3":
		c := domain.SortCriteria()[int(msg.String()[0]-'1')]
		if err := m.deps.Album.SortBy(c); err != nil {
			m.fail(err)
			return m, nil
		}
		m.sortedBy = c
		next, cmd := m.syncAlbum()
		next.setToast("Sorted by "+string(c)+".", false)
		return next, cmd

	case "enter":
		it, ok := m.list.SelectedItem().(photoItem)
		if !ok {
			return m, nil
		}
		if err := m.deps.Album.SeekTo(it.photo); err != nil {
			m.fail(err)
			return m, nil
		}
		m.toast = ""
		return m, m.show(it.photo)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeAdd()
		return m, nil

	case "tab", "shift+tab", "up", "down":
		return m, m.focusInput(1 - m.focus)

	case "enter":
		_, err := m.deps.Album.AddPhoto(context.Background(), m.nameInput.Value(), m.pathInput.Value())
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.closeAdd()
		next, cmd := m.syncAlbum()
		next.setToast("Photo added successfully.", false)
		return next, cmd
	}

	var cmd tea.Cmd
	if m.focus == focusName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.pathInput, cmd = m.pathInput.Update(msg)
	}
	return m, cmd
}

func (m *model) focusInput(i int) tea.Cmd {
	m.focus = i
	if i == focusName {
		m.pathInput.Blur()
		return m.nameInput.Focus()
	}
	m.nameInput.Blur()
	return m.pathInput.Focus()
}

func (m *model) closeAdd() {
	m.mode = modeBrowse
	m.focus = focusName
	m.nameInput.Reset()
	m.pathInput.Reset()
	m.nameInput.Blur()
	m.pathInput.Blur()
}

func (m model) navigate(forward bool) (tea.Model, tea.Cmd) {
	var (
		p   domain.Photo
		err error
	)
	if forward {
		p, err = m.deps.Album.Next()
	} else {
		p, err = m.deps.Album.Previous()
	}
	if err != nil {
		m.fail(err)
		return m, nil
	}

	m.toast = ""
	m.selectPhoto(p)
	return m, m.show(p)
}

// syncAlbum rebuilds the list after the album changed and shows the first photo.
func (m model) syncAlbum() (model, tea.Cmd) {
	if !m.changes.consume() {
		return m, nil
	}

	cmds := []tea.Cmd{m.list.SetItems(m.items())}
	if p, ok := m.deps.Album.First(); ok {
		m.list.Select(0)
		cmds = append(cmds, m.show(p))
	} else {
		m.current = domain.Photo{}
		m.hasCurrent = false
		m.preview, m.previewErr = "", ""
		m.meta = domain.PhotoMetadata{}
	}
	return m, tea.Batch(cmds...)
}

func (m model) items() []list.Item {
	photos := m.deps.Album.Photos()
	items := make([]list.Item, 0, len(photos))
	for _, p := range photos {
		items = append(items, photoItem{photo: p, summary: m.fmt.Summary(p)})
	}
	return items
}

func (m *model) selectPhoto(p domain.Photo) {
	if m.list.FilterState() != list.Unfiltered {
		m.list.ResetFilter()
	}
	for i, it := range m.list.Items() {
		if pi, ok := it.(photoItem); ok && pi.photo.Equal(p) {
			m.list.Select(i)
			return
		}
	}
}

func (m *model) show(p domain.Photo) tea.Cmd {
	m.current = p
	m.hasCurrent = true
	m.preview, m.previewErr = "", ""
	m.previewed = false
	m.meta = domain.PhotoMetadata{}
	return m.loadCurrent()
}

func (m model) loadCurrent() tea.Cmd {
	if !m.hasCurrent {
		return nil
	}
	d := m.deps.Config.Display
	return tea.Batch(
		cmdLoadPreview(m.deps.Previewer, m.current.Path, d.PreviewWidth, d.PreviewHeight, m.log),
		cmdLoadMetadata(m.deps.Metadata, m.current.Path, m.log),
	)
}

func (m *model) setToast(s string, isErr bool) {
	m.toast = s
	m.toastErr = isErr
}

// fail reports err in the status bar. Navigation boundaries are informational.
func (m *model) fail(err error) {
	boundary := domain.IsBoundary(err)
	if !boundary {
		m.log.Warn("tui.action.failed", "err", err)
	}
	m.setToast(userMessage(err), !boundary)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	sub := fmt.Sprintf("%d photos", m.deps.Album.Count())
	if m.sortedBy != "" {
		sub += " • sorted by " + string(m.sortedBy)
	}
	header := m.theme.Title.Render("Photo Album") + "\n" + m.theme.Subtitle.Render(sub) + "\n"

	var right string
	if m.mode == modeAdd {
		right = m.theme.Card.Render(m.addView())
	} else {
		right = m.theme.Card.Render(m.photoView())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Card.Render(m.list.View()), " ", right)

	status := ""
	if m.toast != "" {
		if m.toastErr {
			status = m.theme.Error.Render(m.toast)
		} else {
			status = m.theme.Info.Render(m.toast)
		}
	}

	help := m.theme.Help.Render(renderHelp(m.mode == modeAdd))
	if line := renderDebugLine(m.deps.Debug, m.deps.LogPath); line != "" {
		help += "\n" + m.theme.Subtitle.Render(line)
	}
	return wrap.Render(header + "\n" + body + "\n" + status + "\n" + help)
}

func (m model) photoView() string {
	if !m.hasCurrent {
		return "No photo selected.\n\n" + m.theme.Help.Render("Press a to add one.")
	}

	out := m.theme.Title.Render(m.current.Name) + "\n\n" +
		renderPhotoDetails(m.current, m.meta, m.fmt, 60) + "\n"

	switch {
	case m.previewErr != "":
		out += m.theme.Error.Render(m.previewErr)
	case m.preview != "":
		out += m.preview
	case !m.previewed && m.deps.Previewer != nil:
		out += m.theme.Help.Render("Loading preview…")
	}
	return out
}

func (m model) addView() string {
	return m.theme.Title.Render("Add photo") + "\n\n" +
		m.theme.Label.Render("Name") + "\n" + m.nameInput.View() + "\n\n" +
		m.theme.Label.Render("File path") + "\n" + m.pathInput.View()
}
