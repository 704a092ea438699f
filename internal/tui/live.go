// Package tui is the interactive state-space explorer. Arrow keys and
// tab adjust SA, CT and pressure; the density profile and the five
// outputs update on every keystroke.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/okeanid/seapoly/internal/config"
	"github.com/okeanid/seapoly/internal/eos"
	"github.com/okeanid/seapoly/internal/funnel"
)

const (
	chartWidth  = 60
	chartHeight = 12
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	chartStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 2)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	okStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type param struct {
	name string
	step float64
	min  float64
	max  float64
}

var params = []param{
	{"SA", 0.5, 0, 42.2},
	{"CT", 0.5, -3, 40},
	{"p", 250, 0, 8000},
}

// Model holds the explored state point and the active variant.
type Model struct {
	sa, ct, p float64
	pmax      float64
	steps     int
	variants  []string
	variant   int
	selected  int
}

func NewModel(cfg *config.Config) Model {
	names := eos.Names()
	steps := cfg.Steps
	if steps < 1 {
		steps = config.DefaultSteps
	}
	pmax := cfg.PMax
	if pmax <= 0 {
		pmax = config.DefaultPMax
	}
	active := 0
	for i, name := range names {
		if name == cfg.Variant {
			active = i
		}
	}
	return Model{
		sa:       cfg.SA,
		ct:       cfg.CT,
		p:        cfg.P,
		pmax:     pmax,
		steps:    steps,
		variants: names,
		variant:  active,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(params)
		case "up", "k":
			m.adjust(1)
		case "down", "j":
			m.adjust(-1)
		case "left", "h":
			m.variant = (m.variant + len(m.variants) - 1) % len(m.variants)
		case "right", "l":
			m.variant = (m.variant + 1) % len(m.variants)
		}
	}
	return m, nil
}

func (m *Model) adjust(dir float64) {
	p := params[m.selected]
	var v *float64
	switch m.selected {
	case 0:
		v = &m.sa
	case 1:
		v = &m.ct
	default:
		v = &m.p
	}
	*v += dir * p.step
	if *v < p.min {
		*v = p.min
	}
	if *v > p.max {
		*v = p.max
	}
}

func (m Model) View() string {
	e, err := eos.Lookup(m.variants[m.variant])
	if err != nil {
		return err.Error()
	}
	r := e.Eval(m.sa, m.ct, m.p)
	labels := e.Labels()

	var s strings.Builder
	s.WriteString(headerStyle.Render("SEAPOLY EXPLORER") + "\n")
	s.WriteString(fmt.Sprintf("variant: %s\n\n", e.Name()))

	values := []float64{m.sa, m.ct, m.p}
	for i, p := range params {
		line := fmt.Sprintf("%-3s %10.3f", p.name, values[i])
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	s.WriteString("\n")

	outputs := []float64{r.Value, r.Alpha, r.Beta, r.Ref, r.Anomaly}
	for i, label := range labels {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%.8g", outputs[i])) + "\n")
	}
	s.WriteString("\n")

	if funnel.In(m.sa, m.ct, m.p) {
		s.WriteString(okStyle.Render("inside fitted region") + "\n")
	} else {
		s.WriteString(warnStyle.Render("OUTSIDE fitted region") + "\n")
	}
	s.WriteString(helpStyle.Render("tab:param ↑↓:adjust ←→:variant q:quit"))

	statsView := statsStyle.Render(s.String())
	chartView := chartStyle.Render(m.profileChart(e))
	return lipgloss.JoinHorizontal(lipgloss.Top, chartView, statsView)
}

// profileChart plots the variant's value down the water column at the
// current SA and CT.
func (m Model) profileChart(e *eos.Evaluator) string {
	n := m.steps + 1
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		p := m.pmax * float64(i) / float64(m.steps)
		data[i] = e.Eval(m.sa, m.ct, p).Value
	}
	return asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(fmt.Sprintf("%s, 0..%.0f dbar", e.Labels()[0], m.pmax)),
	)
}

// Run starts the explorer and blocks until the user quits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
