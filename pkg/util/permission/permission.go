// Package permission defines primitives to check a Subject,
// like a player or the console, for a permission.
//
// This is a simple package allowing limited complexity of permission checking.
package permission

// Func is the permission function to obtain the TriState for a permission.
type Func func(permission string) TriState

// Subject is a permission holder like a player.
type Subject interface {
	HasPermission(permission string) bool // Equal to PermissionValue(...).Bool()
	PermissionValue(permission string) TriState
}

// TriState can be in three states (True, False, Undefined), used for a setting.
type TriState uint8

const (
	Undefined TriState = iota // A permission is undefined.
	True                      // A permission is allowed.
	False                     // A permission is explicitly denied.
)

// Bool returns the bool value of a TriState where
// Undefined is converted to false.
func (t TriState) Bool() bool {
	return t == True
}

// Grant returns a Func allowing the given permissions
// and leaving all others Undefined.
func Grant(permissions ...string) Func {
	set := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		set[p] = struct{}{}
	}
	return func(permission string) TriState {
		if _, ok := set[permission]; ok {
			return True
		}
		return Undefined
	}
}

// Subject returns a Subject backed by f.
func (f Func) Subject() Subject { return funcSubject(f) }

type funcSubject Func

func (s funcSubject) HasPermission(permission string) bool {
	return s.PermissionValue(permission).Bool()
}

func (s funcSubject) PermissionValue(permission string) TriState {
	if s == nil {
		return Undefined
	}
	return s(permission)
}
