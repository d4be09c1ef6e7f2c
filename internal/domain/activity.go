package domain

// Activity is a read-only snapshot of one extracurricular offering and
// its current roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// SpotsLeft reports remaining roster capacity.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Definition describes an activity at catalog construction time,
// including any pre-enrolled participants.
type Definition struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
