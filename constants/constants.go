package constants

import "fmt"

type Source int

const (
	McpModule = Source(iota + 1)
	SessionManager
	NavigatorCore
	Model
)

func (instance Source) String() string {
	switch instance {
	case McpModule:
		return "McpModule"
	case SessionManager:
		return "SessionManager"
	case NavigatorCore:
		return "NavigatorCore"
	case Model:
		return "Model"
	default:
		return fmt.Sprintf("Source(%d)", int(instance))
	}
}
