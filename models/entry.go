package models

// Entry is one keyed text block, regardless of which side of the sync it
// lives on. The key is the full header line of the block (including the
// date-like prefix); the text is everything that follows it up to the next
// header, normalized to end in exactly one newline.
type Entry struct {
	// Key is the full header line identifying the entry. Keys are assumed
	// unique within one sync pass.
	Key string `json:"key"`

	// Text is the entry body. Separator lines are never part of it.
	Text string `json:"text"`
}
