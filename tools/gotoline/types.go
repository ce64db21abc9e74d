package gotoline

type Input struct {
	Filename     string `json:"filename" jsonschema:"description:Path to the file to navigate"`
	Line         int    `json:"line" jsonschema:"description:The 1-based line number to move the cursor to. Values outside the file are clamped"`
	ScreenHeight int    `json:"screen_height,omitempty" jsonschema:"description:Optional number of lines per screen. Overrides the session page size when provided"`
}
