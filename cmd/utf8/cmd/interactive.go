package cmd

import (
	goerrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/CNife/simple-utf8/codec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))
)

type inputMode int

const (
	modeText inputMode = iota
	modeHex
)

func (m inputMode) String() string {
	if m == modeHex {
		return "hex → scalars"
	}
	return "text → bytes"
}

// analysis is what the interactive view shows for one input value.
type analysis struct {
	err     error
	scalars string
	bytes   string
	fault   string
	caret   string
}

func analyze(mode inputMode, value, byteFormat string) analysis {
	var res analysis
	switch mode {
	case modeHex:
		src, err := parseHexBytes([]string{value})
		if err != nil {
			res.err = err
			return res
		}
		res.bytes = strings.Join(byteTokens(src, byteFormat), " ")
		scalars, err := codec.Decode(src)
		if err != nil {
			res.err = err
			var de *codec.DecodeError
			if goerrors.As(err, &de) {
				res.fault, res.caret = caretLine(byteTokens(de.Src, byteFormat), de.Index)
			}
			return res
		}
		res.scalars = strings.Join(scalarTokens(scalars), " ")

	default:
		scalars := []rune(value)
		res.scalars = strings.Join(scalarTokens(scalars), " ")
		data, err := codec.Encode(scalars)
		if err != nil {
			res.err = err
			return res
		}
		res.bytes = strings.Join(byteTokens(data, byteFormat), " ")
	}
	return res
}

type interactiveModel struct {
	input      textinput.Model
	byteFormat string
	mode       inputMode
}

func newInteractiveModel(byteFormat string) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	m := &interactiveModel{input: ti, byteFormat: byteFormat}
	m.setMode(modeText)
	return m
}

func (m *interactiveModel) setMode(mode inputMode) {
	m.mode = mode
	m.input.SetValue("")
	if mode == modeHex {
		m.input.Placeholder = "e5 ad a6 e4 b9 a0"
	} else {
		m.input.Placeholder = "type some text"
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setMode((m.mode + 1) % 2)
			return m, nil
		}

	case tea.WindowSizeMsg:
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF-8"))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render(m.mode.String()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	res := analyze(m.mode, m.input.Value(), m.byteFormat)
	b.WriteString(labelStyle.Render("Scalars: "))
	b.WriteString(resultStyle.Render(res.scalars))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Bytes:   "))
	b.WriteString(resultStyle.Render(res.bytes))
	b.WriteString("\n")

	if res.err != nil {
		b.WriteString("\n")
		if res.fault != "" {
			b.WriteString(res.fault)
			b.WriteString("\n")
			b.WriteString(caretStyle.Render(res.caret))
			b.WriteString("\n")
		}
		b.WriteString(errorStyle.Render(res.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab switch mode • esc quit"))
	return b.String()
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Explore encodings in a terminal UI",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("interactive mode needs a terminal")
			}
			p := tea.NewProgram(
				newInteractiveModel(a.cfg.Output.ByteFormat),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err := p.Run()
			return err
		},
	}
}
