package utils

import (
	"fmt"
	"strconv"
	"strings"
)

type Command struct {
	ToolName   string
	Parameters map[string]any
}

// ParseCommand maps one line of view input onto a navigation tool call for
// the open file. A nil command comes back with an informational message when
// the input does not map to a tool.
func ParseCommand(raw string, filename string) (*Command, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ""
	}
	if filename == "" {
		return nil, "No file open. Use open <path>."
	}

	if strings.HasPrefix(trimmed, "/") {
		return findCommand(filename, strings.TrimPrefix(trimmed, "/"), false)
	}
	if strings.HasPrefix(trimmed, "r/") {
		return findCommand(filename, strings.TrimPrefix(trimmed, "r/"), true)
	}
	if strings.HasPrefix(trimmed, ":") {
		return gotoCommand(filename, strings.Fields(strings.TrimPrefix(trimmed, ":")))
	}

	fields := strings.Fields(trimmed)
	switch fields[0] {
	case "goto":
		return gotoCommand(filename, fields[1:])
	case "n":
		return &Command{ToolName: "next_match", Parameters: fileParameters(filename)}, ""
	case "N", "p":
		return &Command{ToolName: "prev_match", Parameters: fileParameters(filename)}, ""
	case "u":
		return &Command{ToolName: "page_up", Parameters: fileParameters(filename)}, ""
	case "d":
		return &Command{ToolName: "page_down", Parameters: fileParameters(filename)}, ""
	default:
		return nil, fmt.Sprintf("Unknown command: %s", trimmed)
	}
}

func findCommand(filename string, pattern string, isRegex bool) (*Command, string) {
	if pattern == "" {
		return nil, "Empty search pattern."
	}
	parameters := fileParameters(filename)
	parameters["pattern"] = pattern
	parameters["is_regex"] = isRegex
	return &Command{ToolName: "find", Parameters: parameters}, ""
}

func gotoCommand(filename string, fields []string) (*Command, string) {
	if len(fields) == 0 {
		return nil, "Usage: goto <line> [height]"
	}
	line, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Sprintf("Invalid line number: %s", fields[0])
	}
	parameters := fileParameters(filename)
	parameters["line"] = line
	if len(fields) > 1 {
		height, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Sprintf("Invalid screen height: %s", fields[1])
		}
		parameters["screen_height"] = height
	}
	return &Command{ToolName: "go_to_line", Parameters: parameters}, ""
}

func fileParameters(filename string) map[string]any {
	return map[string]any{"filename": filename}
}
