package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFieldsRecursively_MixedFormats(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"a_billing.hcl": `
			field "vat_id" {
				target = "billing"
				label  = "VAT ID"
				after  = "company"
			}
			field "reference" {
				target = "billing"
			}
		`,
		"b_order.yaml": `
fields:
  - name: delivery_note
    target: order
    type: textarea
`,
		"nested/c_account.json": `{"fields": [{"name": "newsletter", "target": "account"}]}`,
		"README.md":             "ignored",
	})

	r := New()
	require.NoError(t, r.LoadFieldsRecursively(context.Background(), root))

	all := r.All()
	assert.Equal(t, []string{"vat_id", "reference", "delivery_note", "newsletter"}, names(all))
	assert.Equal(t, model.After("company"), all[0].Position)
	assert.Equal(t, "textarea", all[2].Type)
	assert.Equal(t, filepath.Join(root, "nested", "c_account.json"), all[3].Source.FilePath)
}

func TestLoadFieldsRecursively_MultiplePaths(t *testing.T) {
	first := testutil.WriteFiles(t, map[string]string{"f.yml": "fields:\n  - name: one\n"})
	second := testutil.WriteFiles(t, map[string]string{"f.yml": "fields:\n  - name: two\n"})

	r := New()
	require.NoError(t, r.LoadFieldsRecursively(context.Background(), second, "", first))
	assert.Equal(t, []string{"two", "one"}, names(r.All()))
}

func TestLoadFieldsRecursively_NoFiles(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"notes.txt": "nothing"})
	r := New()
	require.NoError(t, r.LoadFieldsRecursively(context.Background(), root))
	assert.Zero(t, r.Len())
}

func TestLoadFieldsRecursively_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		files    map[string]string
		errorMsg string
	}{
		{
			name:     "hcl syntax",
			files:    map[string]string{"bad.hcl": `field "x" {`},
			errorMsg: "failed to parse HCL file",
		},
		{
			name:     "hcl schema",
			files:    map[string]string{"bad.hcl": `field "x" { unknown = 1 }`},
			errorMsg: "failed to process field definitions",
		},
		{
			name:     "yaml",
			files:    map[string]string{"bad.yaml": "fields: ["},
			errorMsg: "failed to decode YAML field document",
		},
		{
			name:     "json",
			files:    map[string]string{"bad.json": "{"},
			errorMsg: "failed to decode JSON field document",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.WriteFiles(t, tc.files)
			r := New()
			err := r.LoadFieldsRecursively(context.Background(), root)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorMsg)
			assert.Contains(t, err.Error(), root)
		})
	}
}

func TestLoadFieldsRecursively_MissingPath(t *testing.T) {
	r := New()
	err := r.LoadFieldsRecursively(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to walk definitions path")
}
