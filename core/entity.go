package core

import "strconv"

// Entity is a unique identifier for a scene node
// Zero is reserved as "no entity" and is never assigned
type Entity uint64

// None is the zero entity, used for "no parent" and "no camera"
const None Entity = 0

// Valid reports whether the id can refer to an entity
func (e Entity) Valid() bool {
	return e != None
}

func (e Entity) String() string {
	return "#" + strconv.FormatUint(uint64(e), 10)
}
