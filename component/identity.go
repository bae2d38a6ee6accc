package component

// SlotComponent is the logical slot of a city, battery or silo
// Cities and ruins share the slot id of the position they occupy
type SlotComponent struct {
	ID      int
	Battery int // Owning battery for silos, -1 otherwise
}
