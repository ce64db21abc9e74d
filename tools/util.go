package tools

import (
	navicodeerror "NaviCode/NaviCodeError"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TextReturn(text string) (*mcp.CallToolResultFor[any], error) {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil
}

// CheckFile validates the filename argument before the core is invoked.
// A missing or unreadable file surfaces as InvalidArgument carrying the
// filename, per the boundary contract.
func CheckFile(filename string) error {
	if filename == "" {
		return navicodeerror.Wrap(nil, navicodeerror.InvalidArgument, "filename is required")
	}
	if _, err := os.Stat(filename); err != nil {
		return navicodeerror.Wrap(err, navicodeerror.InvalidArgument, fmt.Sprintf("file not found: %s", filename))
	}
	return nil
}
