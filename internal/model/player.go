package model

import "time"

// PlayerID uniquely identifies a player across the system.
// It is the opaque identifier assigned by the external chat platform.
type PlayerID string

// Player represents a registered event participant
type Player struct {
	ID           PlayerID
	StaticID     string // in-game identifier supplied at registration
	Nickname     string
	RegisteredAt time.Time // UTC
	Disqualified bool
}
