package gotoline

import (
	"NaviCode/navigator"
	"NaviCode/tools"
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	Description = `Moves the cursor of a file to the given line and returns one screen of
  content starting there. The cursor is remembered per file, so later paging and
  search commands continue from it. A line number beyond the end of the file is
  clamped to the last line; anything below 1 is clamped to the first line. Pass
  screen_height to change how many lines every screen of this file shows from now
  on. The screen ends with an end-of-file banner when the window reaches the last
  line.`
	Name = "go_to_line"
)

func New(nav *navigator.Navigator) *Tool {
	return &Tool{navigator: nav}
}

type Tool struct {
	navigator *navigator.Navigator
}

func (*Tool) Name() string {
	return Name
}

func (*Tool) Description() string {
	return Description
}

func (instance *Tool) Handler() mcp.ToolHandlerFor[Input, any] {
	return func(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[Input]) (*mcp.CallToolResultFor[any], error) {
		input := params.Arguments
		if err := tools.CheckFile(input.Filename); err != nil {
			return nil, err
		}
		outcome, err := instance.navigator.GoToLine(input.Filename, input.Line, input.ScreenHeight)
		if err != nil {
			return nil, err
		}
		return tools.TextReturn(outcome.Text)
	}
}
