package testutil

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/checkoutfields/internal/form"
)

// Fields builds a host form mapping from "key" or "key:priority" specs, in
// order. Entries without a priority carry an empty config.
//
//	testutil.Fields("billing_first_name:10", "billing_company:30", "billing_note")
func Fields(t *testing.T, specs ...string) *form.Fields {
	t.Helper()

	out := form.NewFields()
	for _, spec := range specs {
		key, prio, hasPrio := strings.Cut(spec, ":")
		cfg := form.Config{}
		if hasPrio {
			p, err := strconv.Atoi(prio)
			if err != nil {
				t.Fatalf("invalid priority in field spec %q: %v", spec, err)
			}
			cfg[form.PriorityKey] = p
		}
		out.Set(key, cfg)
	}
	return out
}

// Keyed is anything exposing its keys in order, such as ordered.Map.
type Keyed interface {
	Keys() []string
}

// AssertKeys fails the test when m's keys differ from want, showing a diff.
func AssertKeys(t *testing.T, want []string, m Keyed) {
	t.Helper()
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}
