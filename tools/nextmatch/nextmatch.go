package nextmatch

import (
	"NaviCode/navigator"
	"NaviCode/tools"
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	Description = `Moves the cursor to the next match of the file's active search, cycling back
  to the first match after the last one. Requires a prior find on the same file;
  without one an informational message is returned instead of an error.`
	Name = "next_match"
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
		outcome, err := instance.navigator.NextMatch(input.Filename)
		if err != nil {
			return nil, err
		}
		return tools.TextReturn(outcome.Text)
	}
}
