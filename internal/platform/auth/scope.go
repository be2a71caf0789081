package auth

import (
	"context"
	"fmt"
)

// BindOwnedHospital enforces ownership on create operations. Hospital admins
// always write under their own hospital regardless of the payload; city
// admins must name a hospital explicitly. A hospital admin with no bound
// hospital is rejected.
func BindOwnedHospital(ctx context.Context, hospitalID *int64) error {
	ident := FromContext(ctx)
	if ident.IsHospitalAdmin() {
		hid, ok := ident.OwnedHospital()
		if !ok {
			return ErrForbidden
		}
		*hospitalID = hid
		return nil
	}
	if *hospitalID == 0 {
		return fmt.Errorf("hospital_id is required")
	}
	return nil
}

// ListScope resolves the hospital filter for list queries. Hospital admins
// see only their own hospital's rows (zero means unscoped); an admin with no
// bound hospital sees nothing.
func ListScope(ctx context.Context) (hospitalID int64, empty bool) {
	ident := FromContext(ctx)
	if !ident.IsHospitalAdmin() {
		return 0, false
	}
	hid, ok := ident.OwnedHospital()
	if !ok {
		return 0, true
	}
	return hid, false
}

// StrictListScope is ListScope for entities whose rows are never public.
// Unauthenticated callers get the empty result set instead of the unscoped
// one; no rows leak through an open list endpoint.
func StrictListScope(ctx context.Context) (hospitalID int64, empty bool) {
	if !FromContext(ctx).Authenticated {
		return 0, true
	}
	return ListScope(ctx)
}
