package persona

// HistoryWindow is the maximum number of transcript entries included in a
// request: the last 10 user/assistant exchange pairs. Entries beyond the
// window are dropped from requests, not summarized, and remain visible in
// the UI's full transcript.
const HistoryWindow = 20

// AssembleRequest builds the ordered message list for one completion
// request: one synthesized system message carrying the personality's
// prompt, followed by the last HistoryWindow transcript entries in
// original order. The result has length min(len(transcript), 20) + 1.
// The transcript is not mutated.
func AssembleRequest(transcript []Message, p Personality) []Message {
	window := transcript
	if len(window) > HistoryWindow {
		window = window[len(window)-HistoryWindow:]
	}
	out := make([]Message, 0, len(window)+1)
	out = append(out, Message{Role: RoleSystem, Content: p.SystemPrompt})
	out = append(out, window...)
	return out
}
