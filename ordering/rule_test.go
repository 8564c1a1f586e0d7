package ordering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type roleKey struct{}

func TestRuleApplicable(t *testing.T) {
	ctx := context.Background()
	adminCtx := context.WithValue(ctx, roleKey{}, "admin")
	isAdmin := func(ctx context.Context) bool {
		role, _ := ctx.Value(roleKey{}).(string)
		return role == "admin"
	}

	tests := []struct {
		name   string
		rule   Rule
		ctx    context.Context
		action string
		want   bool
	}{
		{"no restrictions", Rule{}, ctx, "index", true},
		{"only match", Rule{Only: []string{"index", "export"}}, ctx, "index", true},
		{"only miss", Rule{Only: []string{"index"}}, ctx, "show", false},
		{"except miss", Rule{Except: []string{"export"}}, ctx, "index", true},
		{"except match", Rule{Except: []string{"export"}}, ctx, "export", false},
		{"only wins over except", Rule{Only: []string{"index"}, Except: []string{"index"}}, ctx, "index", true},
		{"if guard passes", Rule{If: isAdmin}, adminCtx, "index", true},
		{"if guard fails", Rule{If: isAdmin}, ctx, "index", false},
		{"unless guard passes", Rule{Unless: isAdmin}, ctx, "index", true},
		{"unless guard fails", Rule{Unless: isAdmin}, adminCtx, "index", false},
		{"guard fails before only", Rule{If: isAdmin, Only: []string{"index"}}, ctx, "index", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.rule.Applicable(tt.ctx, tt.action))
		})
	}
}
