package persona

// DefaultModel is the model selected at session start.
const DefaultModel = "llama-3.1-70b-versatile"

// models is the fixed list of known Groq model identifiers.
var models = []string{
	"llama-3.1-70b-versatile",
	"llama-3.1-8b-instant",
	"llama-3.2-90b-text-preview",
	"llama-3.2-11b-text-preview",
	"mixtral-8x7b-32768",
	"gemma2-9b-it",
}

// Models returns the known model identifiers in display order.
// The returned slice is a copy; callers may not mutate the set.
func Models() []string {
	out := make([]string, len(models))
	copy(out, models)
	return out
}
