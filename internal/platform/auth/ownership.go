package auth

import "errors"

// ErrForbidden is returned by services when the caller's identity does not
// permit the requested mutation.
var ErrForbidden = errors.New("forbidden")

// HospitalOwned is implemented by every entity whose writes are scoped to a
// single owning hospital. A Hospital row owns itself. Entities reachable only
// through a join table (Staff) resolve ownership in their service instead.
type HospitalOwned interface {
	OwningHospitalID() int64
}

// CanMutate reports whether ident may update or delete obj. City admins may
// mutate anything; hospital admins only rows owned by their bound hospital.
func CanMutate(ident Identity, obj HospitalOwned) bool {
	if ident.IsCityAdmin() {
		return true
	}
	hid, ok := ident.OwnedHospital()
	return ok && obj.OwningHospitalID() == hid
}
