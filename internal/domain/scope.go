package domain

// ScopeKind discriminates the resolved nursery access boundary.
type ScopeKind string

const (
	ScopeAll    ScopeKind = "all"
	ScopeSingle ScopeKind = "single"
	ScopeNone   ScopeKind = "none"
)

// NurseryScope is the resolved boundary of which nursery's data a principal
// may touch. Data access is always parameterized by a resolved scope, never
// by a raw client-supplied nursery id.
type NurseryScope struct {
	Kind      ScopeKind `json:"kind"`
	NurseryID int       `json:"nursery_id,omitempty"`
}

func AllNurseries() NurseryScope        { return NurseryScope{Kind: ScopeAll} }
func SingleNursery(id int) NurseryScope { return NurseryScope{Kind: ScopeSingle, NurseryID: id} }
func NoScope() NurseryScope             { return NurseryScope{Kind: ScopeNone} }

// Contains reports whether the scope covers the given nursery id.
func (s NurseryScope) Contains(nurseryID int) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeSingle:
		return s.NurseryID == nurseryID
	default:
		return false
	}
}

// DefaultScope derives the scope a session starts with: everything for a
// super admin, the assigned nursery for nursery admins and staff, nothing
// otherwise. A nursery_admin or staff record missing its nursery id is a
// data-integrity defect and resolves to no access rather than to all.
func DefaultScope(p Principal) NurseryScope {
	switch p.Role {
	case RoleSuperAdmin:
		return AllNurseries()
	case RoleNurseryAdmin, RoleStaff:
		if p.NurseryID == nil {
			return NoScope()
		}
		return SingleNursery(*p.NurseryID)
	default:
		return NoScope()
	}
}
