package models

// Session is the client-visible session descriptor returned on login and
// token checks. It is purely informational: authorization is the token.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Expires       string `json:"expires"`
}
