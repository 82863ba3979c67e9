package models

// State is the durable per-installation sync state carried across passes.
// It is loaded before and persisted after each pass; no component keeps a
// reference to it between passes.
//
// The record survives being partially absent: a fresh install starts with an
// empty token, an empty session blob and an empty checksum ledger.
type State struct {
	// Token is the bearer token minted by the last successful credential
	// login, or empty if no login has succeeded yet.
	Token string `json:"token,omitempty"`

	// Session is the opaque remote-session snapshot as produced by the
	// remote service. Its contents are never interpreted locally.
	Session string `json:"session,omitempty"`

	// Checksums maps entry key to the fingerprint of the text both sides
	// last agreed on. A missing key means no baseline is known yet.
	Checksums map[string]string `json:"checksums"`
}

// Clone returns a deep copy of the state. The checksum map of the copy is
// never nil.
func (s State) Clone() State {
	out := State{Token: s.Token, Session: s.Session}
	out.Checksums = make(map[string]string, len(s.Checksums))
	for k, v := range s.Checksums {
		out.Checksums[k] = v
	}
	return out
}
