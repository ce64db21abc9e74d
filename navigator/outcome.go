package navigator

type OutcomeKind int

const (
	// ScreenOutcome carries a rendered window of the file.
	ScreenOutcome = OutcomeKind(iota + 1)
	// InfoOutcome carries an informational message for a valid but
	// screen-less navigation state, such as a search with no matches.
	InfoOutcome
)

type Outcome struct {
	Kind OutcomeKind
	Text string
}
