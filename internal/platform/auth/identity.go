package auth

import "context"

// Role is the closed set of caller roles. Role checks compare enum values, not
// free-form strings.
type Role string

const (
	RoleCityAdmin     Role = "city_admin"
	RoleHospitalAdmin Role = "hospital_admin"
	RolePublic        Role = "public"
)

// ParseRole maps a claim string onto the closed role set. Unknown values
// degrade to RolePublic rather than erroring.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCityAdmin, RoleHospitalAdmin:
		return Role(s)
	default:
		return RolePublic
	}
}

// Identity is the resolved caller identity threaded through request contexts.
// HospitalID is non-zero only for hospital administrators with a bound
// hospital; a hospital admin without one is treated as misconfigured and sees
// an empty scope everywhere.
type Identity struct {
	UserID        string
	Role          Role
	HospitalID    int64
	Authenticated bool
}

// Anonymous is the identity assigned to requests without a valid token.
var Anonymous = Identity{Role: RolePublic}

func (id Identity) IsCityAdmin() bool {
	return id.Authenticated && id.Role == RoleCityAdmin
}

func (id Identity) IsHospitalAdmin() bool {
	return id.Authenticated && id.Role == RoleHospitalAdmin
}

// OwnedHospital returns the caller's bound hospital. ok is false for anyone
// who is not a hospital admin, and for hospital admins with no bound hospital.
func (id Identity) OwnedHospital() (int64, bool) {
	if !id.IsHospitalAdmin() || id.HospitalID == 0 {
		return 0, false
	}
	return id.HospitalID, true
}

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext returns the identity stored in ctx, or Anonymous if none is set.
func FromContext(ctx context.Context) Identity {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Anonymous
	}
	return id
}
