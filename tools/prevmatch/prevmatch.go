package prevmatch

import (
	"NaviCode/navigator"
	"NaviCode/tools"
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	Description = `Moves the cursor to the previous match of the file's active search, cycling
  to the last match when stepping back from the first one. Requires a prior find
  on the same file; without one an informational message is returned instead of
  an error.`
	Name = "prev_match"
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
		outcome, err := instance.navigator.PrevMatch(input.Filename)
		if err != nil {
			return nil, err
		}
		return tools.TextReturn(outcome.Text)
	}
}
