package state

import "strings"

// FooterText returns the footer content for the current session.
func FooterText(session Session, loading bool, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if !loading && status != "" && session != QuitView {
		if helpText == "" {
			return status
		}
		return status + "\n" + helpText
	}
	return helpText
}
