package source

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestFileRef_Paths(t *testing.T) {
	tests := []struct {
		in       string
		wantPath string
		wantName string
	}{
		{"/tmp/data/a.txt", "/tmp/data/a.txt", "a.txt"},
		{"/tmp//data///a.txt", "/tmp/data/a.txt", "a.txt"},
		{"/tmp/data/", "/tmp/data", "data"},
		{"/tmp/./a.txt", "/tmp/./a.txt", "a.txt"},
		{"../a.txt", "../a.txt", "a.txt"},
		{"a.txt", "a.txt", "a.txt"},
		{"/", "/", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ref := NewFileRef(afero.NewMemMapFs(), tt.in)
			assert.Equal(t, tt.wantPath, ref.FullPath())
			assert.Equal(t, tt.wantName, ref.BaseName())
		})
	}
}

func TestFileRef_Fs(t *testing.T) {
	mem := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(mem, "/src/main.c", []byte("int main;"), 0644))

	src := FromPath(mem, "/src/main.c")
	ref, ok := src.Reference().(*FileRef)
	if assert.True(t, ok) {
		data, err := afero.ReadFile(ref.Fs(), src.Path())
		assert.NoError(t, err)
		assert.Equal(t, "int main;", string(data))
	}

	// Missing files are fine; nothing is checked.
	missing := FromPath(mem, "/nope/x.c")
	assert.Equal(t, "x.c", missing.Name())
}

func TestFileRef_DefaultsToOsFs(t *testing.T) {
	ref := NewFileRef(nil, "/tmp/a.txt")
	_, ok := ref.Fs().(*afero.OsFs)
	assert.True(t, ok)
}
