// Package term previews scenes in the terminal. The mounted scene is drawn
// with the software rasteriser on every tick and printed as colored half
// blocks, with the overlay and legend underneath.
package term

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/host"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/raster"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/render"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

const (
	orbitStep = math.Pi / 24
	zoomStep  = 1.1
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0e0f0"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8888a0"))
	statusStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#6bcfff"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

type reloadMsg struct{ err error }

// Model is the bubbletea model of a preview. It drives the host from the
// program's goroutine only.
type Model struct {
	host *host.Host
	opt  raster.Options

	// exactly one of sequence and traits is set
	sequence *render.Input
	traits   *host.TraitInput
	hover    int

	reloads     <-chan error
	restructure func() seq.Structure

	spinner  spinner.Model
	frame    string
	status   string
	quitting bool
}

// NewSequence previews a sequence view.
func NewSequence(h *host.Host, in render.Input, opt raster.Options) Model {
	m := newModel(h, opt)
	m.sequence = &in
	m.mount()
	return m
}

// NewTraits previews a trait view. Tab cycles the hovered trait through the
// selection.
func NewTraits(h *host.Host, in host.TraitInput, opt raster.Options) Model {
	m := newModel(h, opt)
	m.traits = &in
	m.mount()
	return m
}

func newModel(h *host.Host, opt raster.Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle
	return Model{host: h, opt: opt, hover: -1, spinner: sp}
}

// Watch remounts a sequence view whenever reloads reports new classifier
// tables, with the structure restructure now picks.
func (m Model) Watch(reloads <-chan error, restructure func() seq.Structure) Model {
	m.reloads, m.restructure = reloads, restructure
	return m
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick(), m.waitForReload()}
	if m.loading() {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles keys, ticks and reloads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.draw()
		return m, m.tick()

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reloadMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("kept previous tables: %v", msg.err)
		} else {
			m.status = "reloaded tables"
			if m.sequence != nil && m.restructure != nil {
				m.sequence.Structure = m.restructure()
				m.mount()
			}
		}
		return m, m.waitForReload()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.host.Close()
		return m, tea.Quit
	case "left", "h":
		m.host.Rig.Orbit(-orbitStep, 0)
	case "right", "l":
		m.host.Rig.Orbit(orbitStep, 0)
	case "up", "k":
		m.host.Rig.Orbit(0, -orbitStep)
	case "down", "j":
		m.host.Rig.Orbit(0, orbitStep)
	case "+", "=":
		m.host.Rig.Zoom(1 / zoomStep)
	case "-", "_":
		m.host.Rig.Zoom(zoomStep)
	case "r":
		m.host.Rig.Reset()
	case "tab":
		m.cycle(1)
	case "shift+tab":
		m.cycle(-1)
	case " ", "space":
		if m.sequence != nil {
			m.sequence.Loading = !m.sequence.Loading
			m.mount()
			if m.sequence.Loading {
				cmd = m.spinner.Tick
			}
		}
	default:
		return m, nil
	}
	m.draw()
	return m, cmd
}

// cycle moves the hover through the selected traits and then off them, so
// the view falls back to the last selected trait.
func (m *Model) cycle(step int) {
	if m.traits == nil || len(m.traits.Selected) == 0 {
		return
	}
	n := len(m.traits.Selected) + 1
	m.hover = ((m.hover+1+step)%n+n)%n - 1

	m.traits.Hovered = ""
	if m.hover >= 0 {
		m.traits.Hovered = m.traits.Selected[m.hover]
	}
	m.mount()
}

func (m *Model) mount() {
	if m.sequence != nil {
		m.host.ShowSequence(*m.sequence)
	} else if m.traits != nil {
		m.host.ShowTraits(*m.traits)
	}
	m.draw()
}

func (m *Model) draw() {
	img, err := raster.Snapshot(m.host, m.opt)
	if err != nil {
		m.frame = ""
		return
	}
	m.frame = cells(img)
}

func (m Model) loading() bool {
	return m.sequence != nil && m.sequence.Loading
}

func (m Model) tick() tea.Cmd {
	fps := m.opt.FPS
	if fps <= 0 {
		fps = raster.DefaultOptions.FPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-m.reloads
		if !ok {
			return nil
		}
		return reloadMsg{err: err}
	}
}

// View draws the frame with the overlay under it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	o := m.host.Overlay()
	var b strings.Builder
	b.WriteString(m.frame)
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(o.Title))
	if o.Caption != "" {
		b.WriteString("  ")
		b.WriteString(captionStyle.Render(o.Caption))
	}
	b.WriteByte('\n')

	if legend := legend(o); legend != "" {
		b.WriteString(legend)
		b.WriteByte('\n')
	}
	if m.loading() {
		b.WriteString(m.spinner.View())
		b.WriteString(statusStyle.Render(" Generating sequence..."))
		b.WriteByte('\n')
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteByte('\n')
	}

	help := "←↑↓→ orbit • +/- zoom • r reset • q quit"
	if m.traits != nil {
		help = "tab next trait • " + help
	} else {
		help = "space loading • " + help
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func legend(o host.Overlay) string {
	if o.Legend.Caption != "" {
		return captionStyle.Render(o.Legend.Caption)
	}
	var swatches []string
	for _, e := range o.Legend.Entries {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("●")
		swatches = append(swatches, swatch+" "+e.Label)
	}
	return strings.Join(swatches, "  ")
}
