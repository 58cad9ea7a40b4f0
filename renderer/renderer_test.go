package renderer

import (
	"encoding/json"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/google/go-cmp/cmp"
)

var update = flag.Bool("update", false, "rewrite the golden files in testdata with the rendered output")

// goldens maps every template to the golden file of its rendering of
// testdata/projection.json.
var goldens = map[string]string{
	"projection.md":         "projection_assembly.md",
	"projection_title.md":   "projection_title.md",
	"projection_summary.md": "projection_summary.md",
	"projection_ledger.md":  "projection_ledger.md",
}

func TestUpdateIsOff(t *testing.T) {
	if *update {
		t.Fatal("-update is on, golden files are rewritten instead of checked")
	}
}

// loadProjection reads the view used by every golden test.
func loadProjection(t *testing.T) *Projection {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "projection.json"))
	if err != nil {
		t.Fatal(err)
	}
	var p Projection
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("invalid testdata/projection.json: %v", err)
	}
	return &p
}

// checkGolden compares got with the golden file name, or rewrites it with -update.
func checkGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if *update {
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatal(err)
		}
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

func TestEveryTemplateHasGolden(t *testing.T) {
	files, err := fs.Glob(templates, "*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if _, ok := goldens[f]; !ok {
			t.Errorf("template %s has no golden file", f)
		}
	}
}

func TestPartials(t *testing.T) {
	p := loadProjection(t)
	for tpl, golden := range goldens {
		if !strings.HasPrefix(tpl, "projection_") {
			continue
		}
		t.Run(tpl, func(t *testing.T) {
			tmpl, err := template.ParseFS(templates, tpl)
			if err != nil {
				t.Fatal(err)
			}
			var b strings.Builder
			if err := tmpl.Execute(&b, p); err != nil {
				t.Fatal(err)
			}
			checkGolden(t, golden, b.String())
		})
	}
}

func TestRenderProjection(t *testing.T) {
	checkGolden(t, goldens["projection.md"], RenderProjection(loadProjection(t)))
}
