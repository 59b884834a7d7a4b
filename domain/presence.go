package domain

// Scope selects which live connections a presence computation covers.
// The zero value is the global scope.
type Scope struct {
	Room string
}

// Global covers every live connection.
var Global = Scope{}

// RoomScope covers the connections currently joined to one room.
func RoomScope(name string) Scope {
	return Scope{Room: name}
}

// IsGlobal reports whether the scope covers all connections.
func (s Scope) IsGlobal() bool {
	return s.Room == ""
}
