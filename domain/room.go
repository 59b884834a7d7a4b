package domain

// DefaultRoom always exists and cannot be deleted.
const DefaultRoom = "default"

// Room is a named channel. Names are unique across the directory.
type Room struct {
	ID   uint
	Name string
}
