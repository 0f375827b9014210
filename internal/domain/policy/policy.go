// Package policy implements the access rules gating every box and telemetry
// read. Decisions are pure functions of (principal, box, operation): no I/O,
// no clock, no hidden state.
//
// Once a box is claimed it leaves the provider/admin management surface
// entirely and is visible only to its owner. This models physical custody
// transfer: the provider has no business seeing telemetry for hardware that
// is no longer under its control.
package policy

import "neosafe/internal/domain/entity"

// Operation is the kind of access being requested against a box.
type Operation string

const (
	// OperationView covers reads: box metadata, telemetry, camera pointer.
	OperationView Operation = "view"
	// OperationModify covers state changes: delete, property-code generation.
	OperationModify Operation = "modify"
)

// Decide evaluates whether the principal may perform the operation on the box.
func Decide(p entity.Principal, box *entity.SafeBox, op Operation) bool {
	switch op {
	case OperationView:
		return CanView(p, box)
	case OperationModify:
		return CanModify(p, box)
	default:
		return false
	}
}

// CanView reports whether the principal may see the box and its telemetry.
func CanView(p entity.Principal, box *entity.SafeBox) bool {
	switch p.Role {
	case entity.RoleAdmin:
		// Admins manage the unclaimed inventory only; claimed boxes are
		// private to their owners.
		return !box.IsClaimed
	case entity.RoleProvider:
		return box.ProvidedBy(p.ID) && !box.IsClaimed
	case entity.RoleUser:
		return box.OwnedBy(p.ID)
	default:
		return false
	}
}

// CanModify reports whether the principal may delete the box or manage its
// transfer codes. Claimed boxes are immutable outside the claim/transfer paths.
func CanModify(p entity.Principal, box *entity.SafeBox) bool {
	switch p.Role {
	case entity.RoleAdmin:
		return !box.IsClaimed
	case entity.RoleProvider:
		return box.ProvidedBy(p.ID) && !box.IsClaimed
	case entity.RoleUser:
		// Owners read their boxes but never manage them.
		return false
	default:
		return false
	}
}

// CanUnlock reports whether the principal may send the remote unlock signal.
// Only the current owner of a claimed box may unlock it.
func CanUnlock(p entity.Principal, box *entity.SafeBox) bool {
	return p.Role == entity.RoleUser && box.OwnedBy(p.ID)
}
