package bubbletea

// SetRunning is a test helper that puts the model in a running state.
func SetRunning(m Model) Model {
	m.running = true
	return m
}

// StatusLine exports statusLine for testing.
func StatusLine(m Model) string {
	return m.statusLine()
}

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}
