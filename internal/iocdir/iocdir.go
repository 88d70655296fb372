// Package iocdir reads per-IOC snapshot directories.
//
// Each directory is named after its IOC and may contain a start.log, a single
// YAML configuration file, an st.cmd script and a pvlist.txt process-variable
// list. Every file is optional: a missing file yields an empty section in the
// generated page, any other read error is fatal.
package iocdir

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	startLogName = "start.log"
	stCmdName    = "st.cmd"
	pvListName   = "pvlist.txt"

	// Metadata keys surfaced from start.log.
	keyDeviceGroup = "IOC Device Group"
	keyAsset       = "IOC Asset"

	defaultDeviceGroup = "other"
)

// Snapshot is the content of one IOC directory, read once per run.
type Snapshot struct {
	Name       string
	Metadata   map[string]string
	StartLog   string
	ConfigName string // file name of the embedded YAML config, "" if none
	ConfigYAML string
	StCmd      string
	PVList     string
	PVCount    int
}

// DeviceGroup returns the "IOC Device Group" metadata value, defaulting to
// "other" when absent or empty.
func (s *Snapshot) DeviceGroup() string {
	if g := s.Metadata[keyDeviceGroup]; g != "" {
		return g
	}
	return defaultDeviceGroup
}

// Asset returns the "IOC Asset" documentation link, "" if absent.
func (s *Snapshot) Asset() string { return s.Metadata[keyAsset] }

// List returns the IOC directory names under root in lexical order.
// Plain files at the top level are ignored.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list ioc directories: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Read loads the snapshot for one IOC directory.
func Read(root, name string) (*Snapshot, error) {
	dir := filepath.Join(root, name)
	s := &Snapshot{Name: name, Metadata: map[string]string{}}

	startLog, err := readOptional(filepath.Join(dir, startLogName))
	if err != nil {
		return nil, err
	}
	s.StartLog = startLog
	s.Metadata = ParseMetadata(strings.NewReader(startLog))

	configName, configYAML, err := readConfigYAML(dir)
	if err != nil {
		return nil, err
	}
	s.ConfigName = configName
	s.ConfigYAML = configYAML

	if s.StCmd, err = readOptional(filepath.Join(dir, stCmdName)); err != nil {
		return nil, err
	}

	if s.PVList, err = readOptional(filepath.Join(dir, pvListName)); err != nil {
		return nil, err
	}
	s.PVCount = countNonBlankLines(s.PVList)

	return s, nil
}

// ParseMetadata extracts key/value metadata from start-log text: each line
// containing a colon is split at the first colon into a trimmed key and
// value; lines without a colon are ignored.
func ParseMetadata(r io.Reader) map[string]string {
	metadata := map[string]string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		metadata[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return metadata
}

// readConfigYAML embeds the lexically first *.yaml file in the directory.
// os.ReadDir sorts entries, so selection is deterministic even when an IOC
// directory unexpectedly carries more than one YAML file.
func readConfigYAML(dir string) (string, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", "", fmt.Errorf("read ioc directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", e.Name(), err)
		}
		return e.Name(), string(data), nil
	}
	return "", "", nil
}

// readOptional reads a file, mapping "does not exist" to empty content.
func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func countNonBlankLines(content string) int {
	count := 0
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
