package viewinterface

import (
	"NaviCode/config"
	"NaviCode/constants"
	"NaviCode/dto"
	"NaviCode/events"
	"NaviCode/types"
	"NaviCode/utils"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

type ResultUpdate struct {
	RequestID types.RequestID
	Text      string
	IsError   bool
}

type Shutdown struct{}

func NewMainModel(bus *events.EventBus, config config.ViewConfig, logger *zap.Logger) *MainModel {
	input := textinput.New()
	input.Focus()
	input.Prompt = config.Prompt + " "

	model := &MainModel{
		Bus:        bus,
		InputPort:  input,
		Keys:       NewDefaultMainKeyMap(),
		Config:     config,
		StatusText: "Open a file with: open <path>",
		logger:     logger,
	}
	model.Subscribe()
	return model
}

type MainModel struct {
	Bus        *events.EventBus
	InputPort  textinput.Model
	Keys       MainKeyMap
	Config     config.ViewConfig
	Program    *tea.Program
	Filename   string
	ScreenText string
	StatusText string
	StatusErr  bool
	PendingID  types.RequestID
	width      int
	logger     *zap.Logger
}

func (instance *MainModel) SetProgram(program *tea.Program) {
	instance.Program = program
}

func (instance *MainModel) Subscribe() {
	events.Subscribe(instance.Bus, instance.Bus.ToolResultEvent, constants.Model, func(event events.Event[dto.ToolResultData]) {
		if event.Data.RequestID == instance.PendingID && instance.Program != nil {
			instance.Program.Send(ResultUpdate{
				RequestID: event.Data.RequestID,
				Text:      event.Data.Text,
				IsError:   event.Data.IsError,
			})
		}
	})
	events.Subscribe(instance.Bus, instance.Bus.UpdateViewEvent, constants.Model, func(event events.Event[dto.UpdateViewData]) {
		if instance.Program != nil {
			instance.Program.Send(event.Data)
		}
	})
	events.Subscribe(instance.Bus, instance.Bus.RagnarokEvent, constants.Model, func(event events.Event[dto.RagnarokData]) {
		if instance.Program != nil {
			instance.Program.Send(Shutdown{})
		}
	})
}

func (instance *MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (instance *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		instance.width = msg.Width
		instance.InputPort.Width = msg.Width - 4
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, instance.Keys.Exit):
			return instance, tea.Quit
		case key.Matches(msg, instance.Keys.Submit):
			cmd = instance.Submit(instance.InputPort.Value())
			instance.InputPort.Reset()
			return instance, cmd
		case key.Matches(msg, instance.Keys.PageUp):
			instance.DispatchPage("page_up")
			return instance, nil
		case key.Matches(msg, instance.Keys.PageDown):
			instance.DispatchPage("page_down")
			return instance, nil
		}
	case ResultUpdate:
		if msg.IsError {
			instance.StatusText = msg.Text
			instance.StatusErr = true
		} else {
			instance.ScreenText = msg.Text
			instance.StatusText = instance.Filename
			instance.StatusErr = false
		}
	case dto.UpdateViewData:
		return instance, nil
	case Shutdown:
		return instance, tea.Quit
	}
	instance.InputPort, cmd = instance.InputPort.Update(msg)
	return instance, cmd
}

func (instance *MainModel) Submit(raw string) tea.Cmd {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "q" || trimmed == "quit" {
		return tea.Quit
	}
	if path, ok := strings.CutPrefix(trimmed, "open "); ok {
		instance.Filename = strings.TrimSpace(path)
		instance.Dispatch("go_to_line", map[string]any{
			"filename": instance.Filename,
			"line":     1,
		})
		return nil
	}

	command, message := utils.ParseCommand(trimmed, instance.Filename)
	if command == nil {
		if message != "" {
			instance.StatusText = message
			instance.StatusErr = false
		}
		return nil
	}
	instance.Dispatch(command.ToolName, command.Parameters)
	return nil
}

// DispatchPage backs the ctrl+u / ctrl+d shortcuts. They bypass the
// command line, so the open-file guard lives here.
func (instance *MainModel) DispatchPage(toolName string) {
	if instance.Filename == "" {
		instance.StatusText = "No file open. Use open <path>."
		instance.StatusErr = false
		return
	}
	instance.Dispatch(toolName, map[string]any{
		"filename": instance.Filename,
	})
}

func (instance *MainModel) Dispatch(toolName string, parameters map[string]any) {
	instance.PendingID = types.NewRequestID()
	events.Publish(instance.Bus, instance.Bus.ToolCallEvent, events.Event[dto.ToolCallData]{
		Data: dto.ToolCallData{
			RequestID:  instance.PendingID,
			ToolName:   toolName,
			Parameters: parameters,
		},
		TimeStamp: time.Now(),
		Source:    constants.Model,
	})
}

func (instance *MainModel) View() string {
	list := make([]string, 0, 3)
	if instance.ScreenText != "" {
		list = append(list, DefaultStyles.Screen.Render(instance.FitScreen()))
	}
	statusStyle := DefaultStyles.Status
	if instance.StatusErr {
		statusStyle = DefaultStyles.Error
	}
	if instance.StatusText != "" {
		list = append(list, statusStyle.Render(instance.FitLine(instance.StatusText)))
	}
	list = append(list, DefaultStyles.Input.Render(instance.InputPort.View()))
	return lipgloss.JoinVertical(lipgloss.Left, list...)
}

// FitScreen truncates over-wide content lines to the terminal width. The
// formatter keeps content verbatim; only the display clips it.
func (instance *MainModel) FitScreen() string {
	if instance.width <= 0 {
		return instance.ScreenText
	}
	lines := strings.Split(instance.ScreenText, "\n")
	for index, line := range lines {
		lines[index] = instance.FitLine(line)
	}
	return strings.Join(lines, "\n")
}

func (instance *MainModel) FitLine(line string) string {
	if instance.width <= 0 || runewidth.StringWidth(line) <= instance.width {
		return line
	}
	return runewidth.Truncate(line, instance.width, instance.Config.Ellipsis)
}
