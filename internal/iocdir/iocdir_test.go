package iocdir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeIOC(t *testing.T, root, name string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for fname, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fname), []byte(content), 0o644))
	}
}

func TestParseMetadata_FirstColonSplit(t *testing.T) {
	log := "IOC Device Group: vacuum\nIOC Asset: http://assets.local/7\nEpics base 7.0\nListening on: 10.1.2.3:5064\n"
	m := ParseMetadata(strings.NewReader(log))

	require.Equal(t, "vacuum", m["IOC Device Group"])
	require.Equal(t, "http://assets.local/7", m["IOC Asset"])
	// First colon only: the rest of the line (ports included) is the value.
	require.Equal(t, "10.1.2.3:5064", m["Listening on"])
	// Colonless lines are dropped.
	require.Len(t, m, 3)
}

func TestParseMetadata_TrimsKeysAndValues(t *testing.T) {
	m := ParseMetadata(strings.NewReader("  K  :  V  \n"))
	require.Equal(t, "V", m["K"])
}

func TestRead_FullSnapshot(t *testing.T) {
	root := t.TempDir()
	writeIOC(t, root, "mcr-ioc01", map[string]string{
		"start.log":  "IOC Device Group: vacuum\nbooting\n",
		"ioc.yaml":   "iocType: softioc\n",
		"st.cmd":     "dbLoadDatabase\n",
		"pvlist.txt": "PV:ONE\n\nPV:TWO\nPV:THREE\n",
	})

	s, err := Read(root, "mcr-ioc01")
	require.NoError(t, err)
	require.Equal(t, "mcr-ioc01", s.Name)
	require.Equal(t, "vacuum", s.DeviceGroup())
	require.Empty(t, s.Asset())
	require.Equal(t, "ioc.yaml", s.ConfigName)
	require.Equal(t, "iocType: softioc\n", s.ConfigYAML)
	require.Equal(t, "dbLoadDatabase\n", s.StCmd)
	require.Equal(t, 3, s.PVCount)
}

func TestRead_MissingFilesAreEmpty(t *testing.T) {
	root := t.TempDir()
	writeIOC(t, root, "bare", nil)

	s, err := Read(root, "bare")
	require.NoError(t, err)
	require.Empty(t, s.StartLog)
	require.Empty(t, s.Metadata)
	require.Equal(t, "other", s.DeviceGroup())
	require.Empty(t, s.ConfigYAML)
	require.Empty(t, s.StCmd)
	require.Zero(t, s.PVCount)
}

func TestRead_PVCountIgnoresBlankLines(t *testing.T) {
	root := t.TempDir()
	writeIOC(t, root, "ioc", map[string]string{
		"pvlist.txt": "A\n\nB\n",
	})

	s, err := Read(root, "ioc")
	require.NoError(t, err)
	require.Equal(t, 2, s.PVCount)
}

func TestRead_PicksLexicallyFirstYAML(t *testing.T) {
	root := t.TempDir()
	writeIOC(t, root, "ioc", map[string]string{
		"b.yaml": "second\n",
		"a.yaml": "first\n",
	})

	s, err := Read(root, "ioc")
	require.NoError(t, err)
	require.Equal(t, "a.yaml", s.ConfigName)
	require.Equal(t, "first\n", s.ConfigYAML)
}

func TestList_DirectoriesOnlySorted(t *testing.T) {
	root := t.TempDir()
	writeIOC(t, root, "zeta", nil)
	writeIOC(t, root, "alpha", nil)
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0o644))

	names, err := List(root)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestList_MissingRootFails(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
