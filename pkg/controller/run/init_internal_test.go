package run

import (
	"testing"

	"github.com/spf13/afero"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		existing string
		exp      string
	}{
		{
			name: "create",
			exp:  templateConfig,
		},
		{
			name:     "keep an existing file",
			existing: "root: src\n",
			exp:      "root: src\n",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if d.existing != "" {
				if err := afero.WriteFile(fs, ".phpsanity.yaml", []byte(d.existing), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			ctrl := New(fs, nil, &ParamRun{})
			if err := ctrl.Init(".phpsanity.yaml"); err != nil {
				t.Fatal(err)
			}
			b, err := afero.ReadFile(fs, ".phpsanity.yaml")
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, string(b))
			}
		})
	}
}
