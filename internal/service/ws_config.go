package service

import "fmt"

// WSConfig holds the WebSocket URL base advertised in API responses.
type WSConfig struct {
	BaseURL string
}

// CountdownURL returns the countdown feed URL for a session and user
// (e.g. wss://host/ws/countdown/sessionID/userID).
func (c *WSConfig) CountdownURL(sessionID, userID string) string {
	if c == nil || c.BaseURL == "" {
		return fmt.Sprintf("/ws/countdown/%s/%s", sessionID, userID)
	}
	base := c.BaseURL
	if base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return fmt.Sprintf("%s/ws/countdown/%s/%s", base, sessionID, userID)
}
