package entities

// Status marks whether an entity is still in use. Deactivated entities are
// hidden from listings but stay resolvable by id for historical queries.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsActive() bool {
	return s == StatusActive
}
