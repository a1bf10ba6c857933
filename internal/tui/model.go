package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zxsa0716/ecoproject/internal/engine"
	"github.com/zxsa0716/ecoproject/internal/ui"
)

type boardTab int

const (
	tabMissions boardTab = iota
	tabBadges
	tabNotices
	tabCount
)

func (t boardTab) title() string {
	switch t {
	case tabMissions:
		return "Missions"
	case tabBadges:
		return "Badges"
	case tabNotices:
		return "Notices"
	default:
		return ""
	}
}

type boardModel struct {
	eng *engine.Engine
	bar progress.Model

	tab    boardTab
	width  int
	height int

	missions []engine.Mission
	badges   []engine.Badge
	notices  []engine.Notification
}

func newBoardModel(eng *engine.Engine) *boardModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 24

	m := &boardModel{eng: eng, bar: bar}
	m.refresh()
	return m
}

func (m *boardModel) refresh() {
	m.missions = m.eng.Missions()
	m.badges = m.eng.Badges()
	m.notices = m.eng.Notifications()
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
		case "1":
			m.tab = tabMissions
		case "2":
			m.tab = tabBadges
		case "3":
			m.tab = tabNotices
		case "a":
			if m.tab == tabNotices {
				m.eng.MarkAllRead()
				m.refresh()
			}
		case "r":
			m.refresh()
		}
	}
	return m, nil
}

func (m *boardModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconLeaf, "LitterQuest") + "\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n\n",
		ui.LabelValue("Rank", m.eng.Rank()),
		ui.LabelValue("Level", m.eng.Level()),
		ui.LabelValue("Points", m.eng.Points()),
		ui.LabelValue("Env score", m.renderScore()),
	))

	var tabs []string
	for t := boardTab(0); t < tabCount; t++ {
		title := t.title()
		if t == tabNotices {
			if unread := m.eng.UnreadCount(); unread > 0 {
				title = fmt.Sprintf("%s (%d)", title, unread)
			}
		}
		if t == m.tab {
			tabs = append(tabs, ui.PanelTitle.Render("["+title+"]"))
		} else {
			tabs = append(tabs, ui.Muted.Render(" "+title+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	switch m.tab {
	case tabMissions:
		b.WriteString(m.viewMissions())
	case tabBadges:
		b.WriteString(m.viewBadges())
	case tabNotices:
		b.WriteString(m.viewNotices())
	}

	b.WriteString("\n" + ui.Muted.Render("tab/1-3 switch · a mark all read · r refresh · q quit"))
	return ui.Panel.Render(b.String())
}

// renderScore clamps only for the gauge color; the underlying value is
// shown as-is.
func (m *boardModel) renderScore() string {
	score := m.eng.EnvironmentScore()
	style := ui.Good
	switch {
	case score < 40:
		style = ui.Bad
	case score < 70:
		style = ui.Warn
	}
	return style.Render(fmt.Sprintf("%d", score))
}

func (m *boardModel) viewMissions() string {
	var b strings.Builder
	for _, ms := range m.missions {
		ratio := ratioFor(ms.Progress, ms.Total)
		status := ui.Muted.Render(fmt.Sprintf("%d/%d", ms.Progress, ms.Total))
		if ms.Completed {
			status = ui.Good.Render("done")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", m.bar.ViewAs(ratio), status))
		b.WriteString(fmt.Sprintf("  %s %s\n", ms.Title,
			ui.Muted.Render(fmt.Sprintf("(%s, +%d pts)", ms.Kind, ms.RewardPoints))))
	}
	return b.String()
}

func (m *boardModel) viewBadges() string {
	var b strings.Builder
	for _, bd := range m.badges {
		if bd.Unlocked {
			b.WriteString(fmt.Sprintf("%s %s %s\n", ui.IconTrophy, ui.Gold.Render(bd.Name), ui.Good.Render("unlocked")))
			continue
		}
		ratio := ratioFor(bd.Progress, bd.Total)
		b.WriteString(fmt.Sprintf("%s %s\n", m.bar.ViewAs(ratio), ui.Muted.Render(fmt.Sprintf("%d/%d", bd.Progress, bd.Total))))
		b.WriteString("  " + bd.Name + "\n")
	}
	return b.String()
}

func (m *boardModel) viewNotices() string {
	if len(m.notices) == 0 {
		return ui.Muted.Render("Nothing yet.")
	}
	shown := len(m.notices)
	if rows := m.noticeRows(); shown > rows {
		shown = rows
	}
	var b strings.Builder
	for _, n := range m.notices[:shown] {
		prefix := "•"
		if n.Urgent {
			prefix = ui.Warn.Render("!")
		}
		msg := n.Message
		if n.Read {
			msg = ui.Muted.Render(msg)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", prefix, msg, ui.Muted.Render(n.CreatedAt.Local().Format("Jan 2 15:04"))))
	}
	if rest := len(m.notices) - shown; rest > 0 {
		b.WriteString(ui.Muted.Render(fmt.Sprintf("… and %d more", rest)) + "\n")
	}
	return b.String()
}

func (m *boardModel) noticeRows() int {
	if m.height <= 0 {
		return 10
	}
	rows := m.height - 10
	if rows < 3 {
		rows = 3
	}
	return rows
}

func ratioFor(progress, total int) float64 {
	if total <= 0 {
		return 0
	}
	r := float64(progress) / float64(total)
	if r > 1 {
		r = 1
	}
	return r
}
