// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typegen/internal/funbox"
	"github.com/verte-zerg/typegen/internal/generator"
	"github.com/verte-zerg/typegen/internal/model"
	statsPkg "github.com/verte-zerg/typegen/internal/stats"
	"github.com/verte-zerg/typegen/internal/store"
)

const (
	// Untyped words kept ahead of the cursor in extending tests.
	lookahead  = 20
	maxRetries = 3
)

type charStat struct {
	correct      int
	incorrect    int
	latencySumMs int64
	latencyCount int64
}

// Options configures the typing UI.
type Options struct {
	Config     model.Config
	Store      *store.Store
	Generator  *generator.Generator
	CustomText *model.CustomText
	WeakWindow int
	WeakTop    int
	// Replay starts the UI on a saved record instead of a fresh test.
	Replay *store.SavedRecord
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	base       model.Config
	store      *store.Store
	gen        *generator.Generator
	custom     *model.CustomText
	weakWindow int
	weakTop    int
	weakSet    map[rune]struct{}
	notice     string

	session *generator.Session
	cfg     model.Config
	words   []string
	ranges  []wordRange
	sep     string
	render  renderOptions
	handle  func(rune) rune
	crt     bool
	hasTab  bool
	timed   bool
	timer   timer.Model

	lastConfig model.Config
	lastRecord generator.Record
	hasRecord  bool

	width  int
	height int

	targetRunes []rune
	inputRunes  []rune

	started       bool
	startedAt     time.Time
	prevCorrectAt time.Time

	correctNonSpace   int
	incorrectNonSpace int
	charStats         map[rune]*charStat

	lastWPM float64
	lastAcc float64
	hasLast bool

	allWPM       float64
	allAcc       float64
	allCorrect   int
	allIncorrect int
	allDuration  int64
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	crtStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#33FF33")).Padding(0, 1)
)

// NewModel constructs a typing TUI model and starts the first test.
func NewModel(opts Options) *Model {
	m := &Model{
		base:       opts.Config,
		store:      opts.Store,
		gen:        opts.Generator,
		custom:     opts.CustomText,
		weakWindow: opts.WeakWindow,
		weakTop:    opts.WeakTop,
		weakSet:    map[rune]struct{}{},
	}
	m.loadFooterStats()
	m.refreshWeakSet()
	if opts.Replay != nil {
		m.lastConfig = opts.Replay.Config
		m.lastRecord = opts.Replay.Record
		m.hasRecord = true
		m.startTest(true)
		return m
	}
	m.startTest(false)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd
	case timer.TimeoutMsg:
		if m.timed && m.started && msg.ID == m.timer.ID() {
			m.finishSession()
			m.startTest(false)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			if m.hasTab {
				return m, m.handleRunes([]rune{'\t'})
			}
			m.startTest(false)
			return m, nil
		case tea.KeyCtrlR:
			m.startTest(m.hasRecord)
			return m, nil
		case tea.KeyBackspace, tea.KeyDelete:
			m.handleBackspace()
			return m, nil
		case tea.KeyEnter:
			return m, m.handleRunes([]rune{'\n'})
		case tea.KeySpace:
			return m, m.handleRunes([]rune{' '})
		case tea.KeyRunes:
			return m, m.handleRunes(msg.Runes)
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.targetRunes) == 0 {
		if m.notice == "" {
			return ""
		}
		return noticeStyle.Render(m.notice)
	}
	cursorIndex := -1
	if len(m.inputRunes) < len(m.targetRunes) {
		cursorIndex = len(m.inputRunes)
	}
	styledRunes := buildStyledRunes(m.targetRunes, m.inputRunes, m.ranges, cursorIndex, m.render)
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.crt {
		content = crtStyle.Render(content)
	}
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// startTest opens a new generator session, replaying the last record when
// repeat is set. Recoverable errors fall back to a safer config.
func (m *Model) startTest(repeat bool) {
	m.resetTyping()
	m.notice = ""
	ctx := context.Background()
	req := generator.Request{Config: m.base, WeakChars: m.weakSet, CustomText: m.custom}
	if repeat && m.hasRecord {
		req.Config = m.lastConfig
		req.Repeat = true
		req.Record = m.lastRecord
	}
	for attempt := 0; ; attempt++ {
		if req.Config.Mode == model.ModeQuote {
			req.Favorites = m.favorites(req.Config.Language)
		}
		session, err := m.gen.NewSession(ctx, req)
		var res generator.Result
		if err == nil {
			res, err = session.Generate(ctx)
		}
		if err == nil {
			m.apply(session, res)
			return
		}
		next, retry := generator.Fallback(req.Config, err)
		if !retry || req.Repeat || attempt >= maxRetries {
			m.notice = err.Error()
			m.session = nil
			return
		}
		m.notice = fmt.Sprintf("%v (falling back)", err)
		req.Config = next
		m.base = next
	}
}

func (m *Model) apply(session *generator.Session, res generator.Result) {
	set := session.Funboxes()
	m.session = session
	m.cfg = res.Config
	m.words = res.Words()
	m.hasTab = res.HasTab
	m.sep = " "
	if set.Has(funbox.NoSpace) {
		m.sep = ""
	}
	highlight := res.Config.HighlightMode
	if highlight == "" {
		highlight = model.HighlightLetter
	}
	m.render = renderOptions{highlight: highlight}
	if glyph, ok := funbox.Single[funbox.GetWordHTML](set); ok {
		m.render.glyph = glyph
	}
	if correct, ok := funbox.Single[funbox.IsCharCorrect](set); ok {
		m.render.correct = correct
	}
	m.handle = nil
	if handle, ok := funbox.Single[funbox.HandleChar](set); ok {
		m.handle = handle
	}
	m.crt = false
	for _, css := range funbox.All[funbox.ApplyGlobalCSS](set) {
		if css() == "crt" {
			m.crt = true
		}
	}
	m.timed = false
	if d := m.duration(); d > 0 {
		m.timed = true
		m.timer = timer.NewWithInterval(d, time.Second)
	}
	m.layout()
	m.extend()
}

func (m *Model) duration() time.Duration {
	switch {
	case m.cfg.Mode == model.ModeTime:
		return time.Duration(m.cfg.Time) * time.Second
	case m.cfg.Mode == model.ModeCustom && m.custom != nil && m.custom.LimitMode == model.LimitTime:
		return time.Duration(m.custom.LimitValue) * time.Second
	}
	return 0
}

func (m *Model) layout() {
	m.targetRunes, m.ranges = layoutWords(m.words, m.sep)
}

// extend pulls more words from the session while fewer than lookahead
// untyped words remain.
func (m *Model) extend() {
	if m.session == nil {
		return
	}
	ctx := context.Background()
	grew := false
	for m.session.HasMore() && len(m.words)-m.typedWords() < lookahead {
		e, err := m.session.NextWord(ctx)
		if err != nil {
			if !errors.Is(err, generator.ErrNoMoreWords) {
				m.notice = err.Error()
			}
			break
		}
		m.words = append(m.words, e.Word)
		grew = true
	}
	if grew {
		m.layout()
	}
}

func (m *Model) typedWords() int {
	n := 0
	for _, w := range m.ranges {
		if w.end > len(m.inputRunes) {
			break
		}
		n++
	}
	return n
}

func (m *Model) handleBackspace() {
	if len(m.inputRunes) == 0 {
		return
	}
	m.inputRunes = m.inputRunes[:len(m.inputRunes)-1]
}

func (m *Model) handleRunes(runes []rune) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range runes {
		if len(m.inputRunes) >= len(m.targetRunes) {
			return cmd
		}
		if m.handle != nil {
			r = m.handle(r)
		}
		if !m.started {
			m.started = true
			m.startedAt = time.Now()
			if m.timed {
				cmd = m.timer.Init()
			}
		}
		pos := len(m.inputRunes)
		expected := m.targetRunes[pos]
		m.inputRunes = append(m.inputRunes, r)
		m.updateStats(expected, r)
		m.extend()
		if len(m.inputRunes) == len(m.targetRunes) {
			m.finishSession()
			m.startTest(false)
			return cmd
		}
	}
	return cmd
}

func (m *Model) favorites(lang string) []int {
	if m.store == nil {
		return nil
	}
	ids, err := m.store.ListFavorites(context.Background(), lang)
	if err != nil {
		logErrf("failed to load favorite quotes: %v\n", err)
		return nil
	}
	return ids
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	sessions, err := m.store.ListSessions(ctx, m.base.Language, 0)
	if err != nil {
		logErrf("failed to load session stats: %v\n", err)
		return
	}
	if len(sessions) == 0 {
		return
	}
	last := sessions[len(sessions)-1]
	wpm, _, acc := statsPkg.SessionMetrics(last.Correct, last.Incorrect, last.DurationMs)
	m.lastWPM = wpm
	m.lastAcc = acc
	m.hasLast = true

	for _, s := range sessions {
		m.allCorrect += s.Correct
		m.allIncorrect += s.Incorrect
		m.allDuration += s.DurationMs
	}
	m.recomputeAllTime()
}

func (m *Model) recomputeAllTime() {
	wpm, _, acc := statsPkg.SessionMetrics(m.allCorrect, m.allIncorrect, m.allDuration)
	m.allWPM = wpm
	m.allAcc = acc
}

func (m *Model) renderFooter() string {
	if len(m.targetRunes) == 0 {
		return ""
	}
	var segments []string
	if m.notice != "" {
		segments = append(segments, noticeStyle.Render(m.notice))
	}
	switch {
	case m.timed:
		segments = append(segments, "Time "+m.timer.View())
	case m.session != nil && m.session.Target() > 0:
		segments = append(segments, fmt.Sprintf("Words %d/%d", m.typedWords(), m.session.Target()))
	default:
		progress := int(float64(len(m.inputRunes)) / float64(len(m.targetRunes)) * 100)
		segments = append(segments, fmt.Sprintf("Progress %d%%", progress))
	}
	if m.cfg.Funbox != "" && m.cfg.Funbox != "none" {
		segments = append(segments, "Funbox "+strings.ReplaceAll(m.cfg.Funbox, "#", " "))
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", m.lastWPM, m.lastAcc*100))
	}
	segments = append(segments, fmt.Sprintf("All-time %.1f WPM · %.1f%%", m.allWPM, m.allAcc*100))
	footer := strings.Join(segments, "  ")
	return footerStyle.Render(footer)
}

func (m *Model) updateStats(expected, typed rune) {
	if expected == ' ' {
		return
	}
	entry := m.charEntry(expected)
	if m.render.matches(typed, expected) {
		m.correctNonSpace++
		entry.correct++
		now := time.Now()
		if !m.prevCorrectAt.IsZero() {
			delta := now.Sub(m.prevCorrectAt)
			entry.latencySumMs += delta.Milliseconds()
			entry.latencyCount++
		}
		m.prevCorrectAt = now
		return
	}
	m.incorrectNonSpace++
	entry.incorrect++
}

func (m *Model) charEntry(expected rune) *charStat {
	if m.charStats == nil {
		m.charStats = map[rune]*charStat{}
	}
	entry, ok := m.charStats[expected]
	if !ok {
		entry = &charStat{}
		m.charStats[expected] = entry
	}
	return entry
}

func (m *Model) resetTyping() {
	m.inputRunes = nil
	m.targetRunes = nil
	m.ranges = nil
	m.words = nil
	m.started = false
	m.startedAt = time.Time{}
	m.prevCorrectAt = time.Time{}
	m.correctNonSpace = 0
	m.incorrectNonSpace = 0
	m.charStats = map[rune]*charStat{}
}

func (m *Model) finishSession() {
	if !m.started || m.session == nil {
		return
	}
	endedAt := time.Now()
	record := m.session.Record()
	m.lastConfig = m.cfg
	m.lastRecord = record
	m.hasRecord = true

	stats := model.SessionStats{
		StartedAt:         m.startedAt,
		EndedAt:           endedAt,
		Lang:              m.cfg.Language,
		Mode:              m.cfg.Mode,
		Funbox:            m.cfg.Funbox,
		Words:             m.typedWords(),
		Punctuation:       m.cfg.Punctuation,
		Numbers:           m.cfg.Numbers,
		CorrectNonSpace:   m.correctNonSpace,
		IncorrectNonSpace: m.incorrectNonSpace,
		DurationMs:        endedAt.Sub(m.startedAt).Milliseconds(),
	}

	if m.store != nil {
		ctx := context.Background()
		id, err := m.store.SaveRecord(ctx, m.cfg, record)
		if err != nil {
			logErrf("failed to save record: %v\n", err)
		}
		stats.RecordID = id

		charStats := make([]model.CharStats, 0, len(m.charStats))
		for ch, entry := range m.charStats {
			charStats = append(charStats, model.CharStats{
				Char:         string(ch),
				Correct:      entry.correct,
				Incorrect:    entry.incorrect,
				LatencySumMs: entry.latencySumMs,
				LatencyCount: entry.latencyCount,
			})
		}
		if _, err := m.store.InsertSession(ctx, stats, charStats); err != nil {
			logErrf("failed to save session: %v\n", err)
		}
	}
	wpm, _, acc := statsPkg.SessionMetrics(stats.CorrectNonSpace, stats.IncorrectNonSpace, stats.DurationMs)
	m.lastWPM = wpm
	m.lastAcc = acc
	m.hasLast = true
	m.allCorrect += stats.CorrectNonSpace
	m.allIncorrect += stats.IncorrectNonSpace
	m.allDuration += stats.DurationMs
	m.recomputeAllTime()
	m.refreshWeakSet()
}

// refreshWeakSet reloads the weak characters used by the weakspot funbox.
func (m *Model) refreshWeakSet() {
	if m.store == nil {
		return
	}
	set, err := funbox.Parse(m.base.Funbox)
	if err != nil || !set.Contains("weakspot") {
		return
	}
	aggs, err := m.store.GetWeakChars(context.Background(), m.weakWindow, m.base.Language)
	if err != nil {
		logErrf("failed to load weak chars: %v\n", err)
		return
	}
	m.weakSet = statsPkg.SelectWeakChars(aggs, m.weakTop)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
