package chathub

// Roster is the presence registry: the live mapping from room name to the
// set of connection IDs currently in it. It is owned by the hub goroutine
// and must only be touched from there, so it carries no lock. Presence is
// transient by design; a process restart drops it.
type Roster struct {
	rooms map[string]map[string]struct{}
}

// NewRoster returns an empty registry.
func NewRoster() *Roster {
	return &Roster{rooms: make(map[string]map[string]struct{})}
}

// Join adds a connection to a room, creating the room implicitly.
// Idempotent per (connection, room). Joining does not remove the
// connection from rooms it joined earlier; clients may be in several
// rooms at once.
func (r *Roster) Join(clientID, room string) {
	members, ok := r.rooms[room]
	if !ok {
		members = make(map[string]struct{})
		r.rooms[room] = members
	}
	members[clientID] = struct{}{}
}

// Leave removes a connection from a room. No-op when it was not a member.
// An emptied room is deleted; rooms only exist through their members.
func (r *Roster) Leave(clientID, room string) {
	members, ok := r.rooms[room]
	if !ok {
		return
	}
	delete(members, clientID)
	if len(members) == 0 {
		delete(r.rooms, room)
	}
}

// Members returns the IDs of the connections currently in a room.
// An unknown room yields an empty slice.
func (r *Roster) Members(room string) []string {
	members := r.rooms[room]
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	return ids
}

// DropAll removes a connection from every room it is in. Called when a
// connection goes away so closed sockets never linger in member sets.
func (r *Roster) DropAll(clientID string) {
	for room, members := range r.rooms {
		delete(members, clientID)
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
}
