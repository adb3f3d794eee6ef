package domain

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
	RoleSystem Role = "system"
)

// Actor is the authenticated principal behind a request. Background sweeps
// act as RoleSystem with an empty ID.
type Actor struct {
	ID   string
	Role Role
	Name string
}

func SystemActor() Actor {
	return Actor{Role: RoleSystem}
}
