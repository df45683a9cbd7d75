package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromHeaders(t *testing.T) {
	tests := []struct {
		name      string
		headers   map[string]string
		wantUser  string
		wantRoles []Role
		wantTeams []string
	}{
		{
			name:      "forwarded user wins",
			headers:   map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "a@example.com"},
			wantUser:  "alice",
			wantRoles: []Role{RoleViewer},
		},
		{
			name:      "email fallback",
			headers:   map[string]string{"X-Forwarded-Email": "a@example.com"},
			wantUser:  "a@example.com",
			wantRoles: []Role{RoleViewer},
		},
		{
			name:      "remote user fallback",
			headers:   map[string]string{"X-Remote-User": "bob"},
			wantUser:  "bob",
			wantRoles: []Role{RoleViewer},
		},
		{
			name:     "anonymous without headers",
			headers:  map[string]string{},
			wantUser: "",
		},
		{
			name: "roles and teams parsed",
			headers: map[string]string{
				"X-Forwarded-User": "carol",
				"X-Trinity-Roles":  "operator, approver",
				"X-Trinity-Teams":  "sre, platform",
			},
			wantUser:  "carol",
			wantRoles: []Role{RoleOperator, RoleApprover},
			wantTeams: []string{"sre", "platform"},
		},
		{
			name: "unknown roles ignored, viewer default",
			headers: map[string]string{
				"X-Forwarded-User": "dave",
				"X-Trinity-Roles":  "superuser",
			},
			wantUser:  "dave",
			wantRoles: []Role{RoleViewer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			id := IdentityFromHeaders(h)
			assert.Equal(t, tt.wantUser, id.User)
			assert.Equal(t, tt.wantRoles, id.Roles)
			assert.Equal(t, tt.wantTeams, id.Teams)
		})
	}
}

func TestAuthorize(t *testing.T) {
	svc := NewService()

	ident := func(user string, roles ...Role) Identity {
		return Identity{User: user, Roles: roles}
	}

	t.Run("anonymous denied", func(t *testing.T) {
		dec := svc.Authorize(Identity{}, PermProcessRead, Resource{})
		assert.False(t, dec.Allowed)
	})

	t.Run("admin allowed everything", func(t *testing.T) {
		admin := ident("root", RoleAdmin)
		for _, perm := range Permissions() {
			dec := svc.Authorize(admin, perm, Resource{OwnerUser: "someone-else"})
			assert.True(t, dec.Allowed, "admin should hold %s", perm)
			assert.Empty(t, dec.Scope)
		}
	})

	t.Run("designer manages processes but cannot trigger", func(t *testing.T) {
		designer := ident("dana", RoleDesigner)
		assert.True(t, svc.Authorize(designer, PermProcessPublish, Resource{}).Allowed)
		assert.False(t, svc.Authorize(designer, PermExecutionTrigger, Resource{}).Allowed)
	})

	t.Run("operator triggers and cancels", func(t *testing.T) {
		op := ident("omar", RoleOperator)
		assert.True(t, svc.Authorize(op, PermExecutionTrigger, Resource{}).Allowed)
		assert.True(t, svc.Authorize(op, PermExecutionCancel, Resource{}).Allowed)
		assert.False(t, svc.Authorize(op, PermProcessPublish, Resource{}).Allowed)
	})

	t.Run("viewer sees only own executions", func(t *testing.T) {
		viewer := ident("vera", RoleViewer)
		own := svc.Authorize(viewer, PermExecutionView, Resource{OwnerUser: "vera"})
		require.True(t, own.Allowed)
		assert.Equal(t, ScopeOwn, own.Scope)

		other := svc.Authorize(viewer, PermExecutionView, Resource{OwnerUser: "omar"})
		assert.False(t, other.Allowed)
	})

	t.Run("viewer sees team executions", func(t *testing.T) {
		viewer := Identity{User: "vera", Teams: []string{"sre"}, Roles: []Role{RoleViewer}}
		dec := svc.Authorize(viewer, PermExecutionView, Resource{OwnerUser: "omar", OwnerTeam: "sre"})
		require.True(t, dec.Allowed)
		assert.Equal(t, ScopeOwn, dec.Scope)
	})

	t.Run("operator view is not scope restricted", func(t *testing.T) {
		op := ident("omar", RoleOperator)
		dec := svc.Authorize(op, PermExecutionView, Resource{OwnerUser: "vera"})
		require.True(t, dec.Allowed)
		assert.Empty(t, dec.Scope)
	})

	t.Run("approver restricted to listed approvers", func(t *testing.T) {
		approver := ident("bob", RoleApprover)
		yes := svc.Authorize(approver, PermApprovalDecide, Resource{Approvers: []string{"bob", "carol"}})
		require.True(t, yes.Allowed)
		assert.Equal(t, ScopeApprover, yes.Scope)

		no := svc.Authorize(approver, PermApprovalDecide, Resource{Approvers: []string{"carol"}})
		assert.False(t, no.Allowed)
	})

	t.Run("viewer cannot decide approvals", func(t *testing.T) {
		viewer := ident("vera", RoleViewer)
		dec := svc.Authorize(viewer, PermApprovalDecide, Resource{Approvers: []string{"vera"}})
		assert.False(t, dec.Allowed)
		assert.Contains(t, dec.Reason, "approval.decide")
	})

	t.Run("multiple roles union permissions", func(t *testing.T) {
		both := ident("pat", RoleDesigner, RoleOperator)
		assert.True(t, svc.Authorize(both, PermProcessPublish, Resource{}).Allowed)
		assert.True(t, svc.Authorize(both, PermExecutionTrigger, Resource{}).Allowed)
	})
}
