// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bitmark-inc/avlstep/display"
	"github.com/bitmark-inc/avlstep/gate"
	"github.com/bitmark-inc/avlstep/observer"
	"github.com/bitmark-inc/avlstep/session"
)

const (
	maximumLogLines = 500
	logPaneHeight   = 8
)

// initialLoaded - the initial keys are in the tree
type initialLoaded struct {
	count int
	err   error
}

type styles struct {
	Border  lipgloss.Style
	Title   lipgloss.Style
	Caption lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

func newStyles() styles {
	return styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		Caption: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// the display state, changed only by Update
type model struct {
	session     *session.Session
	stepper     *gate.Stepper
	configured  gate.Mode
	initialKeys []int
	loading     bool

	input  textinput.Model
	events viewport.Model
	lines  []string

	tree      *observer.Snapshot
	caption   string
	pause     string
	highlight display.Highlight
	options   display.Options
	status    string
	failed    bool

	styles styles
	width  int
	height int
}

func newModel(s *session.Session, configured gate.Mode, initialKeys []int, options display.Options) model {
	ti := textinput.New()
	ti.Placeholder = "key, or a command: +5 -5 ?5 print clear"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	events := viewport.New(0, logPaneHeight)
	events.SetContent("")

	return model{
		session:     s,
		stepper:     s.Stepper(),
		configured:  configured,
		initialKeys: initialKeys,
		loading:     len(initialKeys) > 0,
		input:       ti,
		events:      events,
		lines:       []string{},
		options:     options,
		styles:      newStyles(),
		status:      "ready",
	}
}

// Init - load any initial keys without pausing
func (m model) Init() tea.Cmd {
	if !m.loading {
		return textinput.Blink
	}
	m.stepper.SetMode(gate.Off)
	return tea.Batch(textinput.Blink, loadKeys(m.session, m.initialKeys))
}

// insert keys one after another, input is ignored until the result
// arrives so nothing can interleave with them
func loadKeys(s *session.Session, keys []int) tea.Cmd {
	return func() tea.Msg {
		for i, key := range keys {
			err := s.Execute(session.Command{Operation: session.Insert, Key: key})
			if nil != err {
				return initialLoaded{count: i, err: err}
			}
		}
		return initialLoaded{count: len(keys)}
	}
}

// Update - handle keys and queued items
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "ctrl+n":
			// a configuration reload may pause the load
			m.submit(session.Command{Operation: session.Next})
			return m, nil
		}
		if m.loading {
			m.setStatus(fmt.Sprintf("loading %d initial keys", len(m.initialKeys)))
			return m, nil
		}
		switch msg.String() {
		case "ctrl+a":
			m.toggleAutoplay()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.events, cmd = m.events.Update(msg)
			return m, cmd
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if "" == text {
				m.submit(session.Command{Operation: session.Next})
				return m, nil
			}
			cmd, err := parseInput(text)
			if nil != err {
				m.setError(fmt.Sprintf("%q: %s", text, err))
				return m, nil
			}
			m.submit(cmd)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.events.Width = max(msg.Width-4, 10)
		m.input.Width = max(msg.Width-8, 10)

	case initialLoaded:
		m.loading = false
		m.stepper.SetMode(m.configured)
		if nil != msg.err {
			m.setError(fmt.Sprintf("initial keys: loaded: %d error: %s", msg.count, msg.err))
		} else {
			m.setStatus(fmt.Sprintf("initial keys: loaded: %d", msg.count))
		}

	case observer.Event:
		m.apply(msg)

	case session.Result:
		m.result(msg)

	case pacingChanged:
		m.configured = msg.mode
		m.setStatus(fmt.Sprintf("configuration reloaded: mode: %s  rate: %g", msg.mode, msg.rate))

	case pacingFailed:
		m.setError(fmt.Sprintf("configuration reload: %s", msg.err))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// a command, or a bare unsigned number to insert
func parseInput(text string) (session.Command, error) {
	cmd, err := session.ParseCommand(text)
	if nil == err {
		return cmd, nil
	}
	if c := text[0]; c >= '0' && c <= '9' {
		if key, e := strconv.Atoi(text); nil == e {
			return session.Command{Operation: session.Insert, Key: key}, nil
		}
	}
	return session.Command{}, err
}

func (m *model) submit(cmd session.Command) {
	if err := m.session.Submit(cmd); nil != err {
		m.setError(fmt.Sprintf("%s: %s", cmd, err))
		return
	}
	if session.Next != cmd.Operation {
		m.setStatus(cmd.String())
	}
}

func (m *model) toggleAutoplay() {
	mode := gate.Auto
	if gate.Auto == m.stepper.Mode() {
		mode = gate.Manual
	}
	m.stepper.SetMode(mode)
	m.configured = mode
	m.setStatus("mode: " + mode.String())
}

// one observer call
func (m *model) apply(e observer.Event) {
	switch e.Kind {
	case observer.KindStep:
		m.tree = e.Tree
		m.caption = e.Message
		m.pause = ""
		m.addLine("step: " + e.Message)
	case observer.KindHighlight:
		m.highlight = display.Highlight{
			Key:    e.Key,
			Tag:    e.Tag,
			Active: !e.Cleared,
		}
	case observer.KindCheckpoint:
		m.addLine("  " + e.Message)
	case observer.KindPause:
		m.pause = e.Message
		m.addLine("pause: " + e.Message)
	}
}

func (m *model) result(r session.Result) {
	m.pause = ""
	switch r.Command.Operation {
	case session.Contains:
		if r.Found {
			m.setStatus(fmt.Sprintf("%d is present", r.Command.Key))
		} else {
			m.setStatus(fmt.Sprintf("%d is absent", r.Command.Key))
		}
	case session.Insert, session.Delete:
		if !r.Changed {
			m.setStatus(fmt.Sprintf("%s: no change", r.Command))
		} else {
			m.setStatus(fmt.Sprintf("%s: done  rotations: left: %d right: %d", r.Command, r.Stats.LeftRotations, r.Stats.RightRotations))
		}
		m.tree = r.Tree
		m.highlight = display.Highlight{}
	default:
		m.tree = r.Tree
		m.highlight = display.Highlight{}
		m.caption = r.Command.String()
		m.setStatus(fmt.Sprintf("%s: keys: %v", r.Command, r.Tree.Keys()))
	}
}

func (m *model) addLine(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > maximumLogLines {
		m.lines = m.lines[len(m.lines)-maximumLogLines:]
	}
	m.events.SetContent(strings.Join(m.lines, "\n"))
	m.events.GotoBottom()
}

func (m *model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *model) setError(s string) {
	m.status = s
	m.failed = true
}

// View - tree pane, caption, log pane, input and help
func (m model) View() string {
	title := m.styles.Title.Render("AVL tree")

	tree := display.Render(m.tree, m.highlight, m.options)
	treeBox := m.styles.Border.
		Padding(0, 1).
		Render(tree)

	caption := m.styles.Caption.Render(m.caption)
	if "" != m.pause {
		caption = lipgloss.JoinVertical(lipgloss.Left, caption, m.styles.Status.Render("paused: "+m.pause))
	}

	status := m.styles.Status.Render(fmt.Sprintf("[%s] %s", m.stepper.Mode(), m.status))
	if m.failed {
		status = m.styles.Error.Render(m.status)
	}

	eventsBox := m.styles.Border.Render(m.events.View())
	help := m.styles.Help.Render("enter: run  tab: next  ctrl+a: autoplay  pgup/pgdown: scroll  esc: quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		treeBox,
		caption,
		eventsBox,
		m.input.View(),
		status,
		help,
	)
}
