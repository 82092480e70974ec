package board

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/soundpad/cmd/soundcache"
	"github.com/gigurra/soundpad/cmd/soundcache/beepaudio"
	"github.com/samber/lo"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	padStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Foreground(lipgloss.Color("15"))
	missingStyle = padStyle.Foreground(lipgloss.Color("240")).BorderForeground(lipgloss.Color("240"))
	recentStyle  = padStyle.Foreground(lipgloss.Color("46")).BorderForeground(lipgloss.Color("46"))
	loopingStyle = padStyle.Foreground(lipgloss.Color("214")).BorderForeground(lipgloss.Color("214"))
)

const padsPerRow = 5

// padKeys maps keyboard keys to pad indices, in pad order.
var padKeys = strings.Split("1234567890qwertyuiop", "")

type stateMsg soundcache.State
type rescanMsg struct{}
type loadedMsg struct{}

type model struct {
	cache  *soundcache.Cache
	pads   int
	dir    string
	state  soundcache.State
	loaded []bool // per pad, 1-based at index pad-1
	width  int
	height int
}

func initialModel(cache *soundcache.Cache, pads int, dir string) model {
	return model{
		cache:  cache,
		pads:   pads,
		dir:    dir,
		state:  cache.State(),
		loaded: make([]bool, pads),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(loadAllCmd(m.cache, m.pads), tea.EnterAltScreen)
}

// loadAllCmd loads every pad off the UI loop; loads do blocking file
// I/O and decoding.
func loadAllCmd(cache *soundcache.Cache, pads int) tea.Cmd {
	return func() tea.Msg {
		cache.LoadAll(pads)
		return loadedMsg{}
	}
}

// playCmd plays one pad off the UI loop, since an unloaded pad is
// loaded on demand.
func playCmd(cache *soundcache.Cache, pad int) tea.Cmd {
	return func() tea.Msg {
		cache.Play(pad)
		return loadedMsg{}
	}
}

func (m model) refreshLoaded() model {
	for pad := 1; pad <= m.pads; pad++ {
		m.loaded[pad-1] = m.cache.Loaded(pad)
	}
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateMsg:
		m.state = soundcache.State(msg)
		return m, nil

	case loadedMsg:
		return m.refreshLoaded(), nil

	case rescanMsg:
		return m, loadAllCmd(m.cache, m.pads)

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.cache.TogglePause()
			return m, nil
		case "s":
			m.cache.StopAll()
			return m, nil
		case "l":
			m.cache.ToggleLoop()
			return m, nil
		case "+", "=":
			m.cache.SetVolume(clampVolume(m.state.Volume + 0.1))
			return m, nil
		case "-", "_":
			m.cache.SetVolume(clampVolume(m.state.Volume - 0.1))
			return m, nil
		default:
			if pad := keyToPad(key); pad > 0 && pad <= m.pads {
				return m, playCmd(m.cache, pad)
			}
			return m, nil
		}
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("soundpad") + helpStyle.Render("  "+m.dir) + "\n\n")

	rows := lo.Chunk(lo.RangeFrom(1, m.pads), padsPerRow)
	for _, row := range rows {
		boxes := lo.Map(row, func(pad int, _ int) string {
			return m.renderPad(pad)
		})
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...) + "\n")
	}

	b.WriteString("\n" + statusStyle.Render(m.statusLine()) + "\n")
	if !beepaudio.AudioAvailable {
		b.WriteString(warnStyle.Render("audio not available in this build") + "\n")
	}
	b.WriteString(helpStyle.Render("keys: play pad  SPACE: pause  l: loop  s: stop  +/-: volume  ESC: quit"))

	return b.String()
}

func (m model) renderPad(pad int) string {
	label := fmt.Sprintf("%s %2d", padKey(pad), pad)
	switch {
	case !m.loaded[pad-1]:
		return missingStyle.Render(label)
	case pad == m.state.LoopingPad:
		return loopingStyle.Render(label + " ∞")
	case pad == m.state.MostRecent:
		return recentStyle.Render(label + " ♪")
	default:
		return padStyle.Render(label)
	}
}

func (m model) statusLine() string {
	parts := []string{fmt.Sprintf("volume %3.0f%%", m.state.Volume*100)}
	if m.state.Paused {
		parts = append(parts, "paused")
	}
	if m.state.Looping {
		parts = append(parts, fmt.Sprintf("looping pad %d", m.state.LoopingPad))
	}
	return strings.Join(parts, "  |  ")
}

// keyToPad returns the 1-based pad for a key, or 0 if the key is not
// a pad key.
func keyToPad(key string) int {
	return lo.IndexOf(padKeys, key) + 1
}

func padKey(pad int) string {
	return padKeys[pad-1]
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
