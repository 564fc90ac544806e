package processor

// Reply paths recorded in the interaction log. "No slots", "too far" and
// "out of hours" are calendar-path replies too, never errors.
const (
	PathCalendar = "calendar"
	PathLLM      = "llm"
)
