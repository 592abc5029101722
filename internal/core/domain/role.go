package domain

// Role is a labelled group a user may reference. Roles are read-only from the
// user service's point of view.
type Role struct {
	ID      int64
	Libelle string
}
