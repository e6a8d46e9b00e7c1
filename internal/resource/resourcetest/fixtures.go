// Package resourcetest builds in-memory dataset mirrors for tests.
package resourcetest

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/spf13/afero"

	"github.com/samdwyer/pokecollate/internal/resource"
)

// Mirror is an in-memory dataset tree.
type Mirror struct {
	FS afero.Fs
	t  testing.TB
}

// NewMirror creates an empty in-memory mirror.
func NewMirror(t testing.TB) *Mirror {
	t.Helper()
	return &Mirror{FS: afero.NewMemMapFs(), t: t}
}

// Put writes v as the document of the given kind and id.
func (m *Mirror) Put(kind resource.Kind, id int, v any) {
	m.t.Helper()
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		m.t.Fatalf("marshal %s/%d: %v", kind, id, err)
	}
	m.PutRaw(resource.Path(kind, id), content)
}

// PutRaw writes raw bytes at path.
func (m *Mirror) PutRaw(path string, content []byte) {
	m.t.Helper()
	if err := afero.WriteFile(m.FS, path, content, 0o644); err != nil {
		m.t.Fatalf("write %s: %v", path, err)
	}
}

// Store returns a fresh store over the mirror.
func (m *Mirror) Store() *resource.Store {
	return resource.NewStore(m.FS)
}

// Ref builds an upstream-style locator for a resource.
func Ref(kind resource.Kind, id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/%s/%d/", kind, id)
}
