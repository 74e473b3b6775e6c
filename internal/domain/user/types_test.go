//go:build unit

package user_test

import (
	"testing"

	"fleet-console/internal/domain/user"

	"github.com/stretchr/testify/require"
)

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		name string
		role user.Role
		min  user.Role
		want bool
	}{
		{name: "admin covers operator", role: user.RoleAdmin, min: user.RoleOperator, want: true},
		{name: "operator covers itself", role: user.RoleOperator, min: user.RoleOperator, want: true},
		{name: "viewer does not cover operator", role: user.RoleViewer, min: user.RoleOperator, want: false},
		{name: "operator does not cover admin", role: user.RoleOperator, min: user.RoleAdmin, want: false},
		{name: "unknown role covers nothing", role: user.Role("intern"), min: user.RoleViewer, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.role.AtLeast(tc.min))
		})
	}
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("admin")
	require.NoError(t, err)
	require.Equal(t, user.RoleAdmin, role)

	_, err = user.NewRole("superuser")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewEmailNormalizes(t *testing.T) {
	email, err := user.NewEmail("  Desk@Fleet-Console.IT ")
	require.NoError(t, err)
	require.Equal(t, "desk@fleet-console.it", email.Value())
}

func TestNewEmailRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "desk", "desk@", "@fleet.it", "desk@fleet"} {
		_, err := user.NewEmail(raw)
		require.ErrorIs(t, err, user.ErrInvalidEmail, raw)
	}
}
