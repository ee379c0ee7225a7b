package auction

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusActive    Status = "ACTIVE"
	StatusSold      Status = "SOLD"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusSold, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether time-based transitions still apply. SOLD, EXPIRED
// and CANCELLED are terminal.
func (s Status) IsOpen() bool {
	return s == StatusDraft || s == StatusActive
}

func (s Status) IsTerminal() bool {
	return !s.IsOpen()
}

// AllowedGender restricts who may book a session. ANY places no restriction.
type AllowedGender string

const (
	GenderAny    AllowedGender = "ANY"
	GenderFemale AllowedGender = "FEMALE"
	GenderMale   AllowedGender = "MALE"
)

func (g AllowedGender) String() string {
	return string(g)
}

func (g AllowedGender) IsValid() bool {
	switch g {
	case GenderAny, GenderFemale, GenderMale:
		return true
	default:
		return false
	}
}

func (g AllowedGender) Permits(userGender string) bool {
	if g == GenderAny || g == "" {
		return true
	}
	return string(g) == userGender
}
