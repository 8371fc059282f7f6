package models

// Member represents a resident flat owner in the society.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// Name is the member's full name.
	Name string `json:"name"`

	// FlatNumber is the flat the member owns (e.g. "101", "B-204").
	FlatNumber string `json:"flatNumber"`

	// Mobile is the member's contact number. May be empty.
	Mobile string `json:"mobile"`

	// PhotoBase64 is an optional data-URI encoded profile photo.
	// Empty means no photo was uploaded.
	PhotoBase64 string `json:"photoBase64,omitempty"`

	// CreatedAt is the creation time in milliseconds since the Unix epoch.
	CreatedAt int64 `json:"createdAt"`
}
