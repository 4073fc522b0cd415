package domain

// Activity represents one extracurricular offering in the school catalog.
// Participants preserves signup order and never contains duplicates.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// IsFull reports whether the roster has reached capacity.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// IsSignedUp reports whether the email is already on the roster.
func (a Activity) IsSignedUp(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}
