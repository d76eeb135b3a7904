package layoutfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
	"github.com/matzehuels/focusgrid/pkg/nav"
)

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		file      string
		rootID    string
		nodes     int
		firstDown string
	}{
		{"home.toml", "Home", 2, "celeste"},
		{"home.hcl", "Home", 2, "celeste"},
		{"nested.json", "root", 2, "1_alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			l, err := Load(filepath.Join("testdata", tt.file), Options{})
			require.NoError(t, err)
			require.Equal(t, tt.rootID, l.ID)

			tree, err := l.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.nodes, tree.Len())

			n, err := nav.NewNavigator(tree)
			require.NoError(t, err)
			_, err = n.Navigate(nav.Move(nav.Down))
			require.NoError(t, err)
			assert.Equal(t, tt.firstDown, n.FocusID())
		})
	}
}

func TestLoadInsertsGrowItems(t *testing.T) {
	l, err := Load("testdata/home.toml", Options{})
	require.NoError(t, err)
	tree, err := l.Build()
	require.NoError(t, err)

	games, err := tree.Lookup("Home@Games")
	require.NoError(t, err)

	var got []string
	for _, o := range tree.Occupants(games) {
		e, ok := nav.AsElement(o)
		require.True(t, ok)
		got = append(got, e.FocusID)
	}
	assert.ElementsMatch(t, l.Layouts[0].Grow.Items, got)

	// Seven items fill the first row, the eighth wraps.
	_, p, err := tree.FindFocus("balatro")
	require.NoError(t, err)
	assert.Equal(t, 0, p.X)
	assert.Equal(t, 1, p.Y)
}

func TestHCLVariables(t *testing.T) {
	src, err := os.ReadFile("testdata/home.hcl")
	require.NoError(t, err)

	t.Run("default", func(t *testing.T) {
		l, err := ParseHCL(src, "home.hcl", nil)
		require.NoError(t, err)
		assert.Equal(t, []int{4, 6}, l.Size)
		assert.Equal(t, []int{0, 3, 1, 5}, l.Layouts[0].Rect)
	})

	t.Run("override", func(t *testing.T) {
		l, err := ParseHCL(src, "home.hcl", map[string]string{"rows": "8"})
		require.NoError(t, err)
		assert.Equal(t, []int{4, 8}, l.Size)
		assert.Equal(t, []int{0, 3, 1, 7}, l.Layouts[0].Rect)

		tree, err := l.Build()
		require.NoError(t, err)
		x, y := tree.Size(tree.Root())
		assert.Equal(t, 4, x)
		assert.Equal(t, 8, y)
	})

	t.Run("undeclared", func(t *testing.T) {
		_, err := ParseHCL([]byte(`layout "x" { size = [var.cols, 1] }`), "x.hcl", nil)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidFormat), "got %v", err)
	})

	t.Run("two roots", func(t *testing.T) {
		_, err := ParseHCL([]byte("layout \"a\" {\n size = [1, 1]\n}\nlayout \"b\" {\n size = [1, 1]\n}\n"), "x.hcl", nil)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidFormat))
	})
}

func TestStrictDecoding(t *testing.T) {
	t.Run("toml unknown key", func(t *testing.T) {
		_, err := ReadTOML(strings.NewReader("id = \"x\"\nsize = [1, 1]\ncolour = \"red\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "colour")
	})

	t.Run("json unknown field", func(t *testing.T) {
		_, err := ReadJSON(strings.NewReader(`{"id": "x", "size": [1, 1], "colour": "red"}`))
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidFormat))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load("testdata/home.yaml", Options{})
		assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidFormat))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("testdata/missing.toml", Options{})
		assert.True(t, apperr.Is(err, apperr.ErrCodeFileNotFound))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
		code apperr.Code
	}{
		{"bad size", `{"id": "r", "size": [1]}`, apperr.ErrCodeInvalidLayout},
		{"zero size", `{"id": "r", "size": [0, 3]}`, apperr.ErrCodeInvalidLayout},
		{"root rect", `{"id": "r", "size": [2, 2], "rect": [0, 0, 0, 0]}`, apperr.ErrCodeInvalidLayout},
		{"empty root id", `{"id": "", "size": [2, 2]}`, apperr.ErrCodeInvalidIdentifier},
		{"inverted rect", `{"id": "r", "size": [2, 2], "elements": [{"id": "a", "rect": [1, 0, 0, 0]}]}`, apperr.ErrCodeInvalidLayout},
		{"short rect", `{"id": "r", "size": [2, 2], "elements": [{"id": "a", "rect": [0, 0]}]}`, apperr.ErrCodeInvalidLayout},
		{"empty focus id", `{"id": "r", "size": [2, 2], "elements": [{"id": " ", "rect": [0, 0, 0, 0]}]}`, apperr.ErrCodeInvalidLayout},
		{"overlap", `{"id": "r", "size": [2, 2], "elements": [{"id": "a", "rect": [0, 1, 0, 0]}, {"id": "b", "rect": [1, 1, 0, 1]}]}`, apperr.ErrCodeInvalidLayout},
		{"mixed", `{"id": "r", "size": [2, 2], "elements": [{"id": "a", "rect": [0, 0, 0, 0]}], "grow": {}}`, apperr.ErrCodeInvalidLayout},
		{"bad axis", `{"id": "r", "size": [2, 2], "grow": {"axis": "z"}}`, apperr.ErrCodeInvalidLayout},
		{"bad action", `{"id": "r", "size": [2, 2], "buttons": [{"name": "R1", "action": "teleport"}]}`, apperr.ErrCodeInvalidLayout},
		{"sublayout without rect", `{"id": "r", "size": [2, 2], "layouts": [{"id": "c", "size": [1, 1]}]}`, apperr.ErrCodeInvalidLayout},
		{"sublayout with slash", `{"id": "r", "size": [2, 2], "layouts": [{"id": "a/b", "rect": [0, 0, 0, 0], "size": [1, 1]}]}`, apperr.ErrCodeInvalidLayout},
		{"duplicate sublayout", `{"id": "r", "size": [2, 2], "layouts": [{"id": "c", "rect": [0, 0, 0, 0], "size": [1, 1]}, {"id": "c", "rect": [1, 1, 1, 1], "size": [1, 1]}]}`, apperr.ErrCodeInvalidLayout},
		{"focus out of bounds", `{"id": "r", "size": [2, 2], "focus": [3, 0]}`, apperr.ErrCodeInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ReadJSON(strings.NewReader(tt.json))
			require.NoError(t, err)
			_, err = l.Build()
			require.Error(t, err)
			assert.Equal(t, tt.code, apperr.GetCode(err), "error: %v", err)
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, file := range []string{"home.toml", "nested.json"} {
		t.Run(file, func(t *testing.T) {
			l, err := Load(filepath.Join("testdata", file), Options{})
			require.NoError(t, err)
			tree, err := l.Build()
			require.NoError(t, err)

			// Grow past the initial grid so the snapshot carries an expanded size.
			if games, err := tree.Lookup("Home@Games"); err == nil {
				for i := 0; i < 70; i++ {
					_, err := tree.Insert(games, "extra-"+string(rune('a'+i%26))+string(rune('a'+i/26)))
					require.NoError(t, err)
				}
			}
			want := FromTree(tree)

			for _, format := range []string{"json", "toml"} {
				var buf bytes.Buffer
				require.NoError(t, Write(want, format, &buf))

				var back *Layout
				if format == "json" {
					back, err = ReadJSON(&buf)
				} else {
					back, err = ReadTOML(&buf)
				}
				require.NoError(t, err)

				rebuilt, err := back.Build()
				require.NoError(t, err, "%s:\n%s", format, buf.String())
				if diff := cmp.Diff(want, FromTree(rebuilt)); diff != "" {
					t.Errorf("%s round trip mismatch (-want +got):\n%s", format, diff)
				}
			}
		})
	}
}

func TestExport(t *testing.T) {
	l, err := Load("testdata/nested.json", Options{})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "nested.toml")
	require.NoError(t, Export(l, path))

	back, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, l, back)

	err = Export(l, filepath.Join(dir, "nested.yaml"))
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidFormat))
	_, statErr := os.Stat(filepath.Join(dir, "nested.yaml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestParseVars(t *testing.T) {
	vars, err := ParseVars([]string{"rows=8", "theme = dark", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"rows": "8", "theme": " dark", "empty": ""}, vars)

	_, err = ParseVars([]string{"novalue"})
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidInput))
}

func TestFocusIDs(t *testing.T) {
	l, err := Load("testdata/nested.json", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"0_alpha", "0_beta", "1_alpha", "1_beta"}, l.FocusIDs())
}
