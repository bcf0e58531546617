package identifier

import "github.com/google/uuid"

// Generator mints v4 UUIDs for new member accounts.
type Generator struct{}

func (Generator) NewID() string {
	return uuid.NewString()
}
