package dto

import (
	"NaviCode/types"
)

type ToolCallData struct {
	RequestID  types.RequestID
	ToolName   string
	Parameters map[string]any
}

type ToolResultData struct {
	RequestID types.RequestID
	Text      string
	IsError   bool
}
