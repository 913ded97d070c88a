package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/profile"
	"github.com/vovakirdan/skill-runner/internal/runner"
	"github.com/vovakirdan/skill-runner/internal/storage"
)

// MenuChoice is what the lobby was left with.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// menuItem is one lobby line. Shop lines carry the item they sell.
type menuItem struct {
	title  string
	choice MenuChoice
	item   profile.Item
	price  int
}

// MenuModel is the lobby: play, buy skills, view scores.
type MenuModel struct {
	items     []menuItem
	cursor    int
	width     int
	height    int
	data      *runner.GameData
	prices    config.PriceConfig
	profile   string
	store     *storage.Store
	keyMapper *KeyMapper
	message   string
	failed    bool
	choice    MenuChoice
}

// NewMenuModel creates a lobby for the given profile.
func NewMenuModel(data *runner.GameData, name string, prices config.PriceConfig, store *storage.Store, rt core.RuntimeConfig) MenuModel {
	items := []menuItem{{title: "Play", choice: MenuChoicePlay}}
	for _, offer := range profile.Catalog(prices) {
		items = append(items, menuItem{
			title: fmt.Sprintf("Buy %s (%s)", offer.Item, offer.Desc),
			item:  offer.Item,
			price: offer.Price,
		})
	}
	items = append(items,
		menuItem{title: "Scores", choice: MenuChoiceScores},
		menuItem{title: "Quit", choice: MenuChoiceQuit},
	)

	return MenuModel{
		items:     items,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
		data:      data,
		prices:    prices,
		profile:   name,
		store:     store,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.choice = MenuChoiceScores
		return m, tea.Quit

	case MenuActionSelect:
		it := m.items[m.cursor]
		if it.item != "" {
			m.buy(it.item)
			return m, nil
		}
		m.choice = it.choice
		return m, tea.Quit
	}

	return m, nil
}

// buy runs a purchase and persists the wallet when it succeeds.
func (m *MenuModel) buy(item profile.Item) {
	err := profile.Buy(m.data, item, m.prices)
	switch {
	case errors.Is(err, profile.ErrInsufficientFunds):
		m.message, m.failed = "Not enough money", true
		return
	case errors.Is(err, profile.ErrAlreadyOwned):
		m.message, m.failed = "Already active for the next run", true
		return
	case err != nil:
		m.message, m.failed = err.Error(), true
		return
	}

	m.message, m.failed = fmt.Sprintf("Bought %s", item), false
	if m.store != nil {
		if err := m.store.SaveProfile(m.profile, m.data); err != nil {
			m.message, m.failed = fmt.Sprintf("Bought %s, but saving failed: %v", item, err), true
		}
	}
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuPriceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	menuOkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	menuErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	menuMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  S K I L L   R U N N E R  "), m.width))
	b.WriteString("\n\n")

	skills := m.data.PlayerSkills
	x2 := "off"
	if skills.ExtraScore {
		x2 = "on"
	}
	wallet := fmt.Sprintf("%s   money %d   best %d   shotgun x%d   x2 %s",
		m.profile, m.data.Money, m.data.HighScore, skills.ShotgunSkill, x2)
	b.WriteString(centerText(wallet, m.width))
	b.WriteString("\n\n")

	for i, it := range m.items {
		line := "  " + it.title
		if i == m.cursor {
			line = menuCursor.Render("> " + it.title)
		}
		if it.item != "" {
			line += menuPriceStyle.Render(fmt.Sprintf("  $%d", it.price))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		style := menuOkStyle
		if m.failed {
			style = menuErrStyle
		}
		b.WriteString(centerText(style.Render(m.message), m.width))
		b.WriteString("\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuMutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns how the menu was left.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width, ignoring escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu shows the lobby and returns the user's choice.
func RunMenu(data *runner.GameData, name string, prices config.PriceConfig, store *storage.Store, rt core.RuntimeConfig) (MenuChoice, error) {
	p := tea.NewProgram(NewMenuModel(data, name, prices, store, rt), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuChoiceQuit, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuChoiceQuit, nil
	}
	return m.Choice(), nil
}
