package find

type Input struct {
	Filename string `json:"filename" jsonschema:"description:Path to the file to search"`
	Pattern  string `json:"pattern" jsonschema:"description:Text to search for. Treated literally unless is_regex is true"`
	IsRegex  bool   `json:"is_regex,omitempty" jsonschema:"description:Interpret pattern as a case-insensitive regular expression"`
}
