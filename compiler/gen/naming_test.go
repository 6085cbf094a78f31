package gen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User", "User"},
		{"user profile", "user_profile"},
		{"Order-Item", "Order_Item"},
		{"  spaced  out  ", "spaced_out"},
		{"__already__collapsed__", "already_collapsed"},
		{"9lives", "_9lives"},
		{"42", "_42"},
		{"", "_"},
		{"!!!", "_"},
		{"café", "caf"},
		{"a$b%c", "a_b_c"},
		{"_User_", "User"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Sanitize(tt.in), "Sanitize(%q)", tt.in)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{"User", "user profile", "9lives", "", "!!!", "__x__", "a$b%c", "_42"}
	for _, in := range inputs {
		once := Sanitize(in)
		require.Equal(t, once, Sanitize(once), "Sanitize(%q) not idempotent", in)
	}
}

func TestSanitize_ValidIdentifier(t *testing.T) {
	ident := regexp.MustCompile(`^_?[A-Za-z_][A-Za-z0-9_]*$`)
	inputs := []string{"User", "9lives", "", "!!!", "   ", "-", "a b c", "éé", "x1", "_"}
	for _, in := range inputs {
		got := Sanitize(in)
		require.Regexp(t, ident, got, "Sanitize(%q) = %q", in, got)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User", "user.ts"},
		{"UserProfile", "user_profile.ts"},
		{"order item", "order_item.ts"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FileName(tt.in))
	}
}

func TestAccessor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Post", "post"},
		{"UserProfile", "userProfile"},
		{"OrderItem", "orderItem"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, accessor(tt.in))
	}
}
