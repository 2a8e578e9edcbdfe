package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/domain"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	ids := func(plans []domain.Plan) []string {
		out := make([]string, len(plans))
		for i, p := range plans {
			out[i] = p.ID
		}
		return out
	}

	t.Run("free trial offered when unused", func(t *testing.T) {
		assert.Equal(t, []string{"free_trial", "monthly", "quarterly", "half_yearly", "annually"}, ids(c.Available(false)))
	})

	t.Run("free trial hidden once used", func(t *testing.T) {
		got := ids(c.Available(true))
		assert.NotContains(t, got, "free_trial")
		assert.Len(t, got, 4)
	})

	t.Run("lookup", func(t *testing.T) {
		p, ok := c.Lookup("quarterly")
		require.True(t, ok)
		assert.Equal(t, 90, p.DurationDays)
		assert.Equal(t, domain.SubscriptionQuarterly, p.SubscriptionType)
		assert.NotEmpty(t, p.Features)

		_, ok = c.Lookup("lifetime")
		assert.False(t, ok)
	})

	t.Run("trial is free", func(t *testing.T) {
		p, ok := c.Lookup(domain.FreeTrialPlanID)
		require.True(t, ok)
		assert.Equal(t, int64(0), p.Price)
		assert.Equal(t, domain.SubscriptionFreeTrial, p.SubscriptionType)
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"duplicate id", "plans:\n  - {id: a, duration_days: 1}\n  - {id: a, duration_days: 1}\n", "duplicate plan"},
		{"missing id", "plans:\n  - {duration_days: 1}\n", "without id"},
		{"zero duration", "plans:\n  - {id: a, duration_days: 0}\n", "duration_days"},
		{"negative price", "plans:\n  - {id: a, duration_days: 1, price: -5}\n", "negative price"},
		{"not yaml", "plans: [", "parse plans"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("valid", func(t *testing.T) {
		c, err := Parse([]byte("plans:\n  - {id: monthly, duration_days: 30, price: 10}\n"))
		require.NoError(t, err)
		assert.Len(t, c.Available(false), 1)
	})
}
