package shared

import "github.com/google/uuid"

// Principal is the submitting identity, resolved by the HTTP layer and
// passed in explicitly. The submission coordinator branches on Staff but
// never reads ambient auth state itself.
type Principal struct {
	Staff  bool
	UserID uuid.UUID
	Role   string
	Token  string // raw bearer token, forwarded upstream on staff bookings
}

func Guest() Principal {
	return Principal{}
}
