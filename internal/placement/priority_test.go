package placement

import (
	"testing"

	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestResolvePriority(t *testing.T) {
	t.Parallel()
	existing := testutil.Fields(t, "billing_a:0", "billing_b:1", "billing_c:2")

	testCases := []struct {
		name string
		pos  model.Position
		want int
	}{
		{"after b", model.After("b"), 2},
		{"before b", model.Before("b"), 0},
		{"last", model.Last(), 3},
		{"first", model.First(), 0},
		{"before unmatched", model.Before("zzz"), 0},
		{"after unmatched", model.After("zzz"), 0},
		{"first matching candidate in mapping order", model.After("c", "a"), 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolvePriority(tc.pos, model.TargetBilling, existing))
		})
	}
}

func TestResolvePriority_EmptyAndUnprioritised(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, ResolvePriority(model.Last(), model.TargetBilling, form.NewFields()))
	assert.Equal(t, 0, ResolvePriority(model.Last(), model.TargetBilling, nil))

	noPrio := testutil.Fields(t, "billing_a", "billing_b:40")
	assert.Equal(t, 41, ResolvePriority(model.Last(), model.TargetBilling, noPrio))
	assert.Equal(t, -1, ResolvePriority(model.Before("a"), model.TargetBilling, noPrio), "a matched entry without priority counts as 0")
}

func TestResolvePriority_TargetPrefix(t *testing.T) {
	t.Parallel()
	existing := testutil.Fields(t, "billing_company:30", "shipping_company:130", "company:7")

	assert.Equal(t, 131, ResolvePriority(model.After("company"), model.TargetShipping, existing))
	assert.Equal(t, 8, ResolvePriority(model.After("company"), "", existing))
}

func TestHighestPriority(t *testing.T) {
	t.Parallel()
	_, ok := HighestPriority(testutil.Fields(t, "a", "b"))
	assert.False(t, ok)

	p, ok := HighestPriority(testutil.Fields(t, "a:-5", "b:-2"))
	assert.True(t, ok)
	assert.Equal(t, -2, p)
}
