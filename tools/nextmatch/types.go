package nextmatch

type Input struct {
	Filename string `json:"filename" jsonschema:"description:Path to the file whose active search to advance"`
}
