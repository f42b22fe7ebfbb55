// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel asks for a guardian API key and authenticates it. The outcome
// is an [authDoneMsg], which [RootModel] records in the session.
type LoginModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	session *session

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService, sess *session) *LoginModel {
	input := textinput.New()
	input.Placeholder = "API key"
	input.CharLimit = 256
	input.Width = 48
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'

	return &LoginModel{
		ctx:     ctx,
		auth:    auth,
		session: sess,
		input:   input,
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	m.input.SetValue("")
	m.errMsg = ""
	m.submitting = false
	return m.input.Focus()
}

func (m *LoginModel) cmdAuthenticate(apiKey string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		state, err := auth.Authenticate(ctx, apiKey)
		return authDoneMsg{state: state, err: err}
	}
}

// Update implements [tea.Model].
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.input.Blur()
			return m, func() tea.Msg { return NavigateTo{Page: pageCatalog} }
		case "enter":
			if m.submitting {
				return m, nil
			}
			apiKey := strings.TrimSpace(m.input.Value())
			if apiKey == "" {
				m.errMsg = humanizeError(service.ErrEmptyAPIKey)
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdAuthenticate(apiKey)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	st := m.session.styles
	var b strings.Builder

	b.WriteString(st.title.Render("Guardian login"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.submitting:
		b.WriteString(st.status.Render("Checking key..."))
		b.WriteString("\n")
	case m.errMsg != "":
		b.WriteString(st.err.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(st.help.Render("enter: log in · esc: back"))

	return st.app.Render(b.String())
}
