package model

// Attachment references a stored object. Inline bytes never reach the database.
type Attachment struct {
	Name   string `json:"name"`
	MIME   string `json:"mime_type"`
	SizeB  int64  `json:"size_b"`
	SHA256 string `json:"sha256,omitempty"`
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}
