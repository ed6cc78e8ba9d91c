// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestDiscover(t *testing.T) {
	src := t.TempDir()
	for _, d := range []string{"case10", "case02", "case01", "notes", "caseX"} {
		require.NoError(t, os.Mkdir(filepath.Join(src, d), 0o755))
	}
	writeFile(t, src, "case03", []byte("a file, not a case"))

	got, err := Discover(src, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(src, "case01"),
		filepath.Join(src, "case02"),
		filepath.Join(src, "case10"),
		filepath.Join(src, "caseX"),
	}, got)

	got, err = Discover(src, "case0[0-9]")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDiscover_Errors(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), "")
	assert.Error(t, err)

	_, err = Discover(t.TempDir(), "case[")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "case01")
	writeFile(t, dir, "context.txt", []byte("  a university lecture\n"))
	writeFile(t, dir, "topic.txt", []byte("\xEF\xBB\xBFrenewable energy"))
	writeFile(t, dir, "high_weight.txt", []byte("2\n"))
	writeFile(t, dir, "template1.json", []byte("First template."))
	writeFile(t, dir, "template2.json", []byte("Second template."))
	writeFile(t, dir, "template4.json", []byte("Fourth template."))

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "case01", c.Name)
	assert.Equal(t, "a university lecture", c.Context)
	assert.Equal(t, "renewable energy", c.Topic)
	assert.Equal(t, 2, c.HighWeightIndex)
	assert.Equal(t, []string{"First template.", "Second template.", "", "Fourth template."}, c.Templates)
}

func TestLoad_UTF16(t *testing.T) {
	dir := t.TempDir()
	// "Hi" in UTF-16LE with a byte order mark.
	writeFile(t, dir, "topic.txt", []byte{0xFF, 0xFE, 'H', 0, 'i', 0})

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Hi", c.Topic)
}

func TestLoad_HighWeightIndex(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"zero", "0", 0},
		{"padded", " 3 \n", 3},
		{"garbage", "first", -1},
		{"empty", "", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "high_weight.txt", []byte(tt.content))

			c, err := Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.HighWeightIndex)
		})
	}
}

func TestLoad_EmptyDir(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", c.Context)
	assert.Equal(t, -1, c.HighWeightIndex)
	assert.Len(t, c.Templates, TemplateCount)
}

func TestLoad_Manifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "context.txt", []byte("ignored"))
	writeFile(t, dir, ManifestFile, []byte(`context: a museum guide
topic: ancient pottery
high_weight_index: 1
templates:
  - "First template. "
  - Second template.
`))

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "a museum guide", c.Context)
	assert.Equal(t, "ancient pottery", c.Topic)
	assert.Equal(t, 1, c.HighWeightIndex)
	assert.Equal(t, []string{"First template.", "Second template."}, c.Templates)
}

func TestLoad_ManifestWithoutIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestFile, []byte("topic: t\ntemplates: [a]\n"))

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, -1, c.HighWeightIndex)
}

func TestLoad_ManifestMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestFile, []byte("templates: {not: [a list"))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.txt", []byte("\xEF\xBB\xBF Cities grow.\n"))

	got, err := ReadText(filepath.Join(dir, "p.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Cities grow.", got)

	_, err = ReadText(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
