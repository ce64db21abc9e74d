package pagedown

type Input struct {
	Filename string `json:"filename" jsonschema:"description:Path to the file to page through"`
}
