// Package auth decides who may do what. Identity arrives via trusted proxy
// headers; permissions form a closed set mapped from five predefined roles.
// Every state-changing API call is authorized here before the engine runs.
package auth

import (
	"net/http"
	"strings"
)

// Permission is one entry of the closed permission set.
type Permission string

const (
	PermProcessCreate  Permission = "process.create"
	PermProcessRead    Permission = "process.read"
	PermProcessUpdate  Permission = "process.update"
	PermProcessDelete  Permission = "process.delete"
	PermProcessPublish Permission = "process.publish"

	PermExecutionTrigger Permission = "execution.trigger"
	PermExecutionView    Permission = "execution.view"
	PermExecutionCancel  Permission = "execution.cancel"
	PermExecutionRetry   Permission = "execution.retry"

	PermApprovalDecide   Permission = "approval.decide"
	PermApprovalDelegate Permission = "approval.delegate"

	PermAdminViewAll      Permission = "admin.view_all"
	PermAdminManageLimits Permission = "admin.manage_limits"
)

// Role is one of the predefined role names.
type Role string

const (
	RoleDesigner Role = "designer"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
	RoleApprover Role = "approver"
	RoleAdmin    Role = "admin"
)

// Scopes a decision can carry. An empty scope means unrestricted.
const (
	ScopeOwn      = "own"
	ScopeApprover = "approver"
)

// rolePermissions is the fixed role → permission mapping. Scope restrictions
// (viewer sees only its own executions, approver decides only where listed)
// are applied in Authorize, not here.
var rolePermissions = map[Role][]Permission{
	RoleDesigner: {
		PermProcessCreate, PermProcessRead, PermProcessUpdate,
		PermProcessDelete, PermProcessPublish, PermExecutionView,
	},
	RoleOperator: {
		PermProcessRead, PermExecutionTrigger, PermExecutionView,
		PermExecutionCancel, PermExecutionRetry,
	},
	RoleViewer: {
		PermProcessRead, PermExecutionView,
	},
	RoleApprover: {
		PermProcessRead, PermExecutionView,
		PermApprovalDecide, PermApprovalDelegate,
	},
	RoleAdmin: {
		PermProcessCreate, PermProcessRead, PermProcessUpdate,
		PermProcessDelete, PermProcessPublish,
		PermExecutionTrigger, PermExecutionView, PermExecutionCancel, PermExecutionRetry,
		PermApprovalDecide, PermApprovalDelegate,
		PermAdminViewAll, PermAdminManageLimits,
	},
}

// ParseRole maps a string to a known Role.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.TrimSpace(strings.ToLower(s))); r {
	case RoleDesigner, RoleOperator, RoleViewer, RoleApprover, RoleAdmin:
		return r, true
	}
	return "", false
}

// Identity is the authenticated caller.
type Identity struct {
	User  string
	Teams []string
	Roles []Role
}

// Anonymous reports whether no user could be established.
func (id Identity) Anonymous() bool { return id.User == "" }

// HasRole reports whether the identity carries the role.
func (id Identity) HasRole(role Role) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IdentityFromHeaders extracts the caller identity from proxy headers.
// User priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email
// (oauth2-proxy) > X-Remote-User (kube-rbac-proxy). Roles and teams come
// from X-Trinity-Roles / X-Trinity-Teams (comma-separated); callers with no
// recognizable role default to viewer.
func IdentityFromHeaders(h http.Header) Identity {
	var id Identity
	for _, key := range []string{"X-Forwarded-User", "X-Forwarded-Email", "X-Remote-User"} {
		if v := h.Get(key); v != "" {
			id.User = v
			break
		}
	}
	for _, raw := range strings.Split(h.Get("X-Trinity-Roles"), ",") {
		if role, ok := ParseRole(raw); ok {
			id.Roles = append(id.Roles, role)
		}
	}
	if len(id.Roles) == 0 && id.User != "" {
		id.Roles = []Role{RoleViewer}
	}
	for _, raw := range strings.Split(h.Get("X-Trinity-Teams"), ",") {
		if team := strings.TrimSpace(raw); team != "" {
			id.Teams = append(id.Teams, team)
		}
	}
	return id
}

// Decision is the result of an authorization check.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
	// Scope qualifies an allow: "own" or "approver" restricted grants.
	Scope string `json:"scope,omitempty"`
}

func allow(scope string) Decision {
	return Decision{Allowed: true, Reason: "granted", Scope: scope}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Resource describes the target of an authorization check. Zero values mean
// the check has no resource context (list endpoints, creation).
type Resource struct {
	Type      string
	ID        string
	OwnerUser string
	OwnerTeam string
	// Approvers restricts approval.decide to listed identities.
	Approvers []string
}

// Service evaluates authorization decisions. Stateless; the role matrix is
// compiled in.
type Service struct{}

// NewService creates the authorization service.
func NewService() *Service { return &Service{} }

// Authorize decides whether the identity may apply perm to res.
func (s *Service) Authorize(id Identity, perm Permission, res Resource) Decision {
	if id.Anonymous() {
		return deny("no authenticated user")
	}
	if id.HasRole(RoleAdmin) {
		return allow("")
	}

	granted := false
	for _, role := range id.Roles {
		for _, p := range rolePermissions[role] {
			if p == perm {
				granted = true
			}
		}
	}
	if !granted {
		return deny("role lacks permission " + string(perm))
	}

	switch perm {
	case PermApprovalDecide, PermApprovalDelegate:
		if len(res.Approvers) == 0 {
			return allow(ScopeApprover)
		}
		for _, a := range res.Approvers {
			if a == id.User {
				return allow(ScopeApprover)
			}
		}
		return deny("not an eligible approver")
	case PermExecutionView:
		// Viewers see only their own executions unless another role widens
		// the grant.
		if s.scopeRestricted(id, perm) {
			if res.OwnerUser == "" || s.owns(id, res) {
				return allow(ScopeOwn)
			}
			return deny("execution belongs to another owner")
		}
	}
	return allow("")
}

// scopeRestricted reports whether every granting role restricts perm to the
// caller's own resources.
func (s *Service) scopeRestricted(id Identity, perm Permission) bool {
	restricted := true
	for _, role := range id.Roles {
		for _, p := range rolePermissions[role] {
			if p != perm {
				continue
			}
			if role != RoleViewer && role != RoleApprover {
				restricted = false
			}
		}
	}
	return restricted
}

func (s *Service) owns(id Identity, res Resource) bool {
	if res.OwnerUser == id.User {
		return true
	}
	for _, team := range id.Teams {
		if team != "" && team == res.OwnerTeam {
			return true
		}
	}
	return false
}

// Permissions returns the closed permission set, for introspection.
func Permissions() []Permission {
	return []Permission{
		PermProcessCreate, PermProcessRead, PermProcessUpdate,
		PermProcessDelete, PermProcessPublish,
		PermExecutionTrigger, PermExecutionView, PermExecutionCancel, PermExecutionRetry,
		PermApprovalDecide, PermApprovalDelegate,
		PermAdminViewAll, PermAdminManageLimits,
	}
}
