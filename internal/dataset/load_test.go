package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoad_CSV(t *testing.T) {
	p := writeFile(t, "swaps.csv", "1,3\n2, 5\n\n3,7\n4,9\n")
	ds, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "swaps.csv", ds.Name)
	assert.Equal(t, []Sample{{1, 3}, {2, 5}, {3, 7}, {4, 9}}, ds.Samples)
	assert.Equal(t, []float64{1, 2, 3, 4}, ds.XS())
	assert.Equal(t, []float64{3, 5, 7, 9}, ds.YS())
}

func TestRead_SkipsWhitespaceOnlyLines(t *testing.T) {
	ds, err := Read(strings.NewReader("1,2\n   \n\t\n3,4\n"), "ws.csv", ',')
	require.NoError(t, err)
	assert.Equal(t, []Sample{{1, 2}, {3, 4}}, ds.Samples)
}

func TestRead_StripsByteOrderMark(t *testing.T) {
	ds, err := Read(strings.NewReader("\ufeff1,2\r\n3,4\r\n"), "bom.csv", ',')
	require.NoError(t, err)
	assert.Equal(t, []Sample{{1, 2}, {3, 4}}, ds.Samples)
}

func TestLoad_TSVAndScientific(t *testing.T) {
	p := writeFile(t, "pairs.tsv", "1.5e3\t-2\n2500\t0.25\n")
	ds, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []Sample{{1500, -2}, {2500, 0.25}}, ds.Samples)
}

func TestLoad_Empty(t *testing.T) {
	p := writeFile(t, "empty.csv", "")
	ds, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf), "expected NotFoundError, got %T", err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	var ioe *IOError
	assert.True(t, errors.As(err, &ioe), "expected IOError, got %T: %v", err, err)
}

func TestLoad_ParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		line    int
		column  int
	}{
		{"non-numeric", "1,2\n3,abc\n", 2, 2},
		{"too many columns", "1,2\n3,4,5\n", 2, 0},
		{"single column", "7\n", 1, 0},
		{"not finite", "1,2\nNaN,4\n", 2, 1},
		{"empty field", "1,\n", 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeFile(t, "bad.csv", tc.content)
			_, err := Load(p)
			require.Error(t, err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected ParseError, got %T: %v", err, err)
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.column, pe.Column)
		})
	}
}

func TestRead_CustomDelimiter(t *testing.T) {
	ds, err := Read(strings.NewReader("1;2\n3;4\n"), "inline", ';')
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}

func TestWithout(t *testing.T) {
	ds := New("d", []Sample{{1, 1}, {2, 2}, {3, 3}})
	out := ds.Without([]bool{false, true, false})
	assert.Equal(t, []Sample{{1, 1}, {3, 3}}, out.Samples)
	assert.Equal(t, 3, ds.Len(), "source must stay untouched")
	assert.Equal(t, ds.Samples, ds.Without(nil).Samples)
}
