package find

import (
	navicodeerror "NaviCode/NaviCodeError"
	"NaviCode/navigator"
	"NaviCode/tools"
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	Description = `Searches a file for a pattern and moves the cursor to the first match at or
  after the current cursor line, wrapping to the first match in the file when
  every match lies before the cursor. The pattern is matched case-insensitively;
  by default it is taken literally, set is_regex to interpret it as a regular
  expression. At most 1000 matches are kept per search. The match list stays
  active for the file, so next_match and prev_match can cycle through it.
  Returns "Pattern not found" when nothing matches.`
	Name = "find"
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
		if input.Pattern == "" {
			return nil, navicodeerror.Wrap(nil, navicodeerror.InvalidArgument, "pattern is required")
		}
		outcome, err := instance.navigator.Find(input.Filename, input.Pattern, input.IsRegex)
		if err != nil {
			return nil, err
		}
		return tools.TextReturn(outcome.Text)
	}
}
