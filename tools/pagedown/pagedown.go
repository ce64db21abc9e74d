package pagedown

import (
	"NaviCode/navigator"
	"NaviCode/tools"
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	Description = `Moves the cursor one page down (one page size worth of lines towards the end
  of the file) and returns the screen starting at the new cursor. Stops at the
  last line; the final screen is padded and closed with an end-of-file banner.`
	Name = "page_down"
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
		outcome, err := instance.navigator.PageDown(input.Filename)
		if err != nil {
			return nil, err
		}
		return tools.TextReturn(outcome.Text)
	}
}
