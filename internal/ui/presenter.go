package ui

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"

	"github.com/nicorai/nicorai/internal/config"
	"github.com/nicorai/nicorai/internal/dynview"
	"github.com/nicorai/nicorai/internal/keys"
	"github.com/nicorai/nicorai/internal/logger"
)

// Glamour renderers are slow to build; keep one per wrap width until the
// theme changes.
var (
	rendererMu    sync.Mutex
	rendererCache = map[int]*glamour.TermRenderer{}
)

func resetRendererCache() {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	rendererCache = map[int]*glamour.TermRenderer{}
}

func pageRenderer(width int) (*glamour.TermRenderer, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if r, ok := rendererCache[width]; ok {
		return r, nil
	}
	style := CurrentTheme().GlamourStyle
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[width] = r
	return r, nil
}

// renderPage renders a navigable view body. Falls back to the built-in
// markdown renderer when glamour fails.
func renderPage(body string, width int) string {
	r, err := pageRenderer(width)
	if err == nil {
		var out string
		if out, err = r.Render(body); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	logger.WithComponent("presenter").Warn("glamour render failed, using fallback", "error", err)
	return renderMarkdown(body, width)
}

// RenderDynamicView renders a dynamic view body at the given width. limit
// caps the number of rows, cards, bars or items (0 means no cap); a "+N more"
// line is added when entries are cut.
func RenderDynamicView(v *dynview.View, width, limit int) string {
	if v == nil {
		return ""
	}
	width = max(width, 10)

	switch v.Kind {
	case dynview.KindTable:
		return renderTableView(v.Data, width, limit)
	case dynview.KindCard:
		return renderCardView(v.Data.Cards, width, limit)
	case dynview.KindChart:
		return renderChartView(v.Data, width, limit)
	case dynview.KindCustom:
		return renderItemView(v.Data.Items, width, limit)
	default:
		return renderMarkdown(v.Data.Text, width)
	}
}

func capEntries(n, limit int) (shown int, more string) {
	if limit <= 0 || n <= limit {
		return n, ""
	}
	return limit, ChatHintStyle.Render(fmt.Sprintf("+%d more", n-limit))
}

func withMore(body, more string) string {
	if more == "" {
		return body
	}
	return body + "\n" + more
}

func renderTableView(d dynview.Data, width, limit int) string {
	shown, more := capEntries(len(d.Rows), limit)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Headers(d.Columns...).
		Rows(d.Rows[:shown]...).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
	return withMore(t.Render(), more)
}

func renderCardView(cards []dynview.Card, width, limit int) string {
	shown, more := capEntries(len(cards), limit)

	boxes := make([]string, 0, shown)
	for _, c := range cards[:shown] {
		body := CardTitleStyle.Render(c.Title)
		if c.Content != "" {
			body += "\n" + ChatMessageStyle.Render(wrapText(c.Content, max(width-4, 1)))
		}
		boxes = append(boxes, CardStyle.Width(width).Render(body))
	}
	return withMore(lipgloss.JoinVertical(lipgloss.Left, boxes...), more)
}

func renderChartView(d dynview.Data, width, limit int) string {
	shown, more := capEntries(len(d.Labels), limit)

	labelWidth := 0
	for _, l := range d.Labels[:shown] {
		labelWidth = max(labelWidth, runewidth.StringWidth(l))
	}
	labelWidth = min(labelWidth, width/3)

	var sb strings.Builder
	for di, ds := range d.Datasets {
		if di > 0 {
			sb.WriteString("\n\n")
		}
		if ds.Label != "" {
			sb.WriteString(CardTitleStyle.Render(ds.Label))
			sb.WriteString("\n")
		}

		peak := 0.0
		for _, v := range ds.Data {
			peak = max(peak, v)
		}
		valueWidth := 8
		barWidth := max(min(width-labelWidth-valueWidth-2, MaxChartBarWidth), 1)

		for i, label := range d.Labels[:shown] {
			value := 0.0
			if i < len(ds.Data) {
				value = ds.Data[i]
			}
			n := 0
			if peak > 0 && value > 0 {
				n = max(int(value/peak*float64(barWidth)+0.5), 1)
			}
			name := runewidth.FillRight(runewidth.Truncate(label, labelWidth, "…"), labelWidth)
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(ChartLabelStyle.Render(name))
			sb.WriteString(" ")
			sb.WriteString(ChartBarStyle.Render(strings.Repeat("█", n)))
			sb.WriteString(ChartLabelStyle.Render(fmt.Sprintf(" %g", value)))
		}
	}
	return withMore(sb.String(), more)
}

func renderItemView(items []dynview.Item, width, limit int) string {
	shown, more := capEntries(len(items), limit)

	var parts []string
	for _, it := range items[:shown] {
		var sb strings.Builder
		sb.WriteString(MarkdownListBulletStyle.Render("•"))
		sb.WriteString(" ")
		sb.WriteString(CardTitleStyle.Render(it.Title))
		if it.Details != "" {
			sb.WriteString("\n  ")
			sb.WriteString(indentContinuation(wrapText(it.Details, max(width-2, 1)), "  "))
		}
		for _, k := range slices.Sorted(maps.Keys(it.Metadata)) {
			sb.WriteString("\n  ")
			sb.WriteString(ChartLabelStyle.Render(k + ": " + it.Metadata[k]))
		}
		parts = append(parts, sb.String())
	}
	return withMore(strings.Join(parts, "\n"), more)
}

// Presenter is the content area that shows either a navigable view page or
// the dynamic view in the reserved slot.
type Presenter struct {
	viewport viewport.Model
	width    int
	height   int
	focused  bool

	viewID  string
	title   string
	page    string
	dynamic *dynview.View
}

// NewPresenter creates an empty presenter
func NewPresenter() *Presenter {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return &Presenter{viewport: vp}
}

// SetSize sets the panel dimensions
func (p *Presenter) SetSize(width, height int) {
	p.width = width
	p.height = height
	ctx := GetViewContext()
	p.viewport.SetWidth(ctx.InnerWidth(width))
	// Title and close hint take two lines
	p.viewport.SetHeight(max(ctx.InnerHeight(height)-2, 1))
	p.refresh()
}

// SetFocused sets the focus state
func (p *Presenter) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns the focus state
func (p *Presenter) IsFocused() bool {
	return p.focused
}

// ViewID returns the id of the view being shown
func (p *Presenter) ViewID() string {
	return p.viewID
}

// Title returns the heading of the view being shown
func (p *Presenter) Title() string {
	return p.title
}

// ShowPage shows a navigable view
func (p *Presenter) ShowPage(v config.NavView) {
	if p.viewID == v.ID && p.dynamic == nil && p.page == v.Body {
		return
	}
	p.viewID = v.ID
	p.title = v.Title
	p.page = v.Body
	p.dynamic = nil
	p.refresh()
	p.viewport.GotoTop()
}

// ShowDynamic shows a dynamic view in the reserved slot
func (p *Presenter) ShowDynamic(id string, v *dynview.View) {
	if v == nil {
		p.ShowMissing(id)
		return
	}
	if p.viewID == id && dynview.Equal(p.dynamic, v) {
		return
	}
	p.viewID = id
	p.title = v.DisplayTitle()
	p.page = ""
	p.dynamic = v
	p.refresh()
	p.viewport.GotoTop()
}

// ShowMissing shows a placeholder for a view id with no content
func (p *Presenter) ShowMissing(id string) {
	p.viewID = id
	p.title = id
	p.page = ""
	p.dynamic = nil
	p.refresh()
}

// Clear forgets the current view
func (p *Presenter) Clear() {
	p.viewID, p.title, p.page, p.dynamic = "", "", "", nil
	p.viewport.SetContent("")
}

func (p *Presenter) refresh() {
	width := p.viewport.Width()
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var content string
	switch {
	case p.dynamic != nil:
		content = RenderDynamicView(p.dynamic, width, 0)
	case p.page != "":
		content = renderPage(p.page, width)
	case p.viewID != "":
		content = ChatHintStyle.Render("Nothing to show for " + p.viewID + ".")
	}
	p.viewport.SetContent(content)
}

// Update scrolls the view
func (p *Presenter) Update(msg tea.Msg) (*Presenter, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		if !p.focused {
			return p, nil
		}
		switch key.String() {
		case keys.Up, keys.Down, keys.PgUp, keys.PgDown, "k", "j", "home", "end":
		default:
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the panel with a title and a close hint
func (p *Presenter) View() string {
	style := PanelStyle
	if p.focused {
		style = PanelFocusedStyle
	}
	innerWidth := GetViewContext().InnerWidth(p.width)

	title := ViewTitleStyle.Render(runewidth.Truncate(p.title, max(innerWidth-12, 1), "…"))
	hint := ViewCloseHintStyle.Render("esc close")
	gap := max(innerWidth-lipgloss.Width(title)-lipgloss.Width(hint), 1)
	heading := title + strings.Repeat(" ", gap) + hint

	body := lipgloss.JoinVertical(lipgloss.Left, heading, "", p.viewport.View())
	return style.Width(p.width).Height(p.height).Render(body)
}

// PlainText returns the view content without styling, for the clipboard
func (p *Presenter) PlainText() string {
	if p.dynamic != nil {
		return p.dynamic.PlainText()
	}
	return p.page
}
