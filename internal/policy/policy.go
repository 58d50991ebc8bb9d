// Package policy holds the pure authorization decision logic shared by the
// server route guard and the admin client. It has no I/O and no
// dependencies beyond the domain types, so both enforcement points
// evaluate exactly the same rules.
package policy

import "github.com/JVDTS/NurseryWebsite-sub001/internal/domain"

// Reason classifies why a request was denied. Reasons are for internal
// audit only; clients receive a generic 401/403.
type Reason string

const (
	ReasonUnauthenticated  Reason = "unauthenticated"
	ReasonInsufficientRole Reason = "insufficient_role"
	ReasonWrongNursery     Reason = "wrong_nursery"
	ReasonScopeIntegrity   Reason = "scope_integrity"
)

// Decision is the outcome of evaluating a request against the policy.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r Reason) Decision { return Decision{Reason: r} }

// Decide evaluates a request. principal is nil for unauthenticated
// requests; requiredRole may be empty when a route has no role floor;
// targetNurseryID is non-nil when the route addresses a specific nursery.
//
// The checks run in a fixed order so denial attribution is deterministic:
// authentication, then role sufficiency, then nursery scope. A staff user
// hitting a super_admin route is denied for its role, not its nursery.
func Decide(principal *domain.Principal, requiredRole domain.Role, targetNurseryID *int) Decision {
	if principal == nil {
		return deny(ReasonUnauthenticated)
	}

	// super_admin satisfies every role floor and every nursery target.
	if principal.Role == domain.RoleSuperAdmin {
		return allow()
	}

	if requiredRole != "" && !principal.Role.AtLeast(requiredRole) {
		return deny(ReasonInsufficientRole)
	}

	if targetNurseryID != nil && principal.Role == domain.RoleNurseryAdmin {
		// A nursery_admin without an assigned nursery is a data-integrity
		// defect; it must never widen into global access.
		if principal.NurseryID == nil {
			return deny(ReasonScopeIntegrity)
		}
		if *targetNurseryID != *principal.NurseryID {
			return deny(ReasonWrongNursery)
		}
	}

	if targetNurseryID != nil && principal.Role == domain.RoleStaff {
		if principal.NurseryID == nil {
			return deny(ReasonScopeIntegrity)
		}
		if *targetNurseryID != *principal.NurseryID {
			return deny(ReasonWrongNursery)
		}
	}

	return allow()
}
