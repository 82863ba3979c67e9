package models

// Credentials identify the account on the remote note service.
// The password is used only for the fallback login path; the token path is
// always attempted first when a stored token exists.
type Credentials struct {
	// User is the account identity (typically an e-mail address).
	User string `json:"user"`

	// Pass is the account credential (e.g. an app password). Never logged.
	Pass string `json:"pass"`
}
