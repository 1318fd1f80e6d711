package leaf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/macladson/milhouse/pkg/value"
	"github.com/stretchr/testify/require"
)

func TestTypeNames(t *testing.T) {
	require.Equal(t, []string{"bool", "h256", "u16", "u256", "u32", "u64", "u8"}, TypeNames())
}

func TestReadWrites(t *testing.T) {
	dir := t.TempDir()
	write := func(t *testing.T, data string) string {
		p := filepath.Join(dir, t.Name()[len("TestReadWrites/"):]+".yml")
		require.NoError(t, os.WriteFile(p, []byte(data), 0644))
		return p
	}

	t.Run("good", func(t *testing.T) {
		w, err := readWrites(write(t, "0: 1\n3: true\n7: \"0x10\"\n18446744073709551615: 18446744073709551615\n"))
		require.NoError(t, err)
		require.Equal(t, map[uint64]string{
			0:                    "1",
			3:                    "true",
			7:                    "0x10",
			18446744073709551615: "18446744073709551615",
		}, w)
	})
	t.Run("empty", func(t *testing.T) {
		w, err := readWrites(write(t, ""))
		require.NoError(t, err)
		require.Empty(t, w)
	})
	t.Run("nested", func(t *testing.T) {
		_, err := readWrites(write(t, "0: [1, 2]\n"))
		require.Error(t, err)
	})
	t.Run("negative index", func(t *testing.T) {
		_, err := readWrites(write(t, "-1: 2\n"))
		require.Error(t, err)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := readWrites(filepath.Join(dir, "none.yml"))
		require.Error(t, err)
	})
}

func TestParseValues(t *testing.T) {
	vs, err := parseValues[value.Uint32]([]string{"1", "0xff", "4294967295"})
	require.NoError(t, err)
	require.Equal(t, []value.Uint32{1, 255, 4294967295}, vs)

	_, err = parseValues[value.Uint32]([]string{"1", "4294967296"})
	require.Error(t, err)
}
