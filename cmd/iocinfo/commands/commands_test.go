package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupFixture(t *testing.T) (iocinfoDir, controlDir, servicesDir, valuesPath string) {
	t.Helper()
	iocinfoDir = t.TempDir()
	controlDir = filepath.Join(t.TempDir(), "control")
	servicesDir = filepath.Join(t.TempDir(), "services")

	iocDir := filepath.Join(iocinfoDir, "mcr-ioc01")
	require.NoError(t, os.MkdirAll(iocDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(iocDir, "start.log"),
		[]byte("IOC Device Group: vacuum\nIOC Asset: http://assets.local/7\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(iocDir, "pvlist.txt"),
		[]byte("PV:A\nPV:B\n\nPV:C\n"), 0o644))

	valuesPath = filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(valuesPath, []byte(`
beamline: b1
epik8namespace: ns
epicsConfiguration:
  iocs:
    - name: mcr-ioc01
      desc: Vacuum controller
  services:
    archiver:
      enable_ingress: true
`), 0o644))
	return iocinfoDir, controlDir, servicesDir, valuesPath
}

func TestGenerateCmd_EndToEnd(t *testing.T) {
	iocinfoDir, controlDir, servicesDir, valuesPath := setupFixture(t)

	cmd := &GenerateCmd{IOCInfoDir: iocinfoDir, ControlDir: controlDir, ServicesDir: servicesDir}
	root := &CLI{ValuesFile: valuesPath}
	require.NoError(t, cmd.Run(&Global{}, root))

	page, err := os.ReadFile(filepath.Join(controlDir, "mcr-ioc01.md"))
	require.NoError(t, err)
	require.Contains(t, string(page), "- [Process Variables (3)](#pvlist)")
	require.Contains(t, string(page), "## Description\n\nVacuum controller")

	svc, err := os.ReadFile(filepath.Join(servicesDir, "archiver.md"))
	require.NoError(t, err)
	require.Contains(t, string(svc), "[http://b1-archiver.ns](http://b1-archiver.ns)")
}

func TestGenerateCmd_MissingIOCInfoDir(t *testing.T) {
	cmd := &GenerateCmd{IOCInfoDir: filepath.Join(t.TempDir(), "nope")}
	require.Error(t, cmd.Run(&Global{}, &CLI{}))
}

func TestGenerateCmd_WritesMetricsFile(t *testing.T) {
	iocinfoDir, controlDir, servicesDir, valuesPath := setupFixture(t)
	metricsFile := filepath.Join(t.TempDir(), "iocinfo.prom")

	cmd := &GenerateCmd{
		IOCInfoDir:  iocinfoDir,
		ControlDir:  controlDir,
		ServicesDir: servicesDir,
		MetricsFile: metricsFile,
	}
	require.NoError(t, cmd.Run(&Global{}, &CLI{ValuesFile: valuesPath}))

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, `iocinfo_pages_written_total{kind="ioc"} 1`)
	require.Contains(t, text, `iocinfo_pages_written_total{kind="service"} 1`)
	require.Contains(t, text, `iocinfo_run_outcomes_total{outcome="success"} 1`)
}

func TestLintCmd_PassesOnGeneratedOutput(t *testing.T) {
	iocinfoDir, controlDir, servicesDir, valuesPath := setupFixture(t)

	gen := &GenerateCmd{IOCInfoDir: iocinfoDir, ControlDir: controlDir, ServicesDir: servicesDir}
	require.NoError(t, gen.Run(&Global{}, &CLI{ValuesFile: valuesPath}))

	lintCmd := &LintCmd{ControlDir: controlDir, ServicesDir: servicesDir}
	require.NoError(t, lintCmd.Run(&Global{}, &CLI{}))
}

func TestLintCmd_FailsOnBrokenAnchor(t *testing.T) {
	controlDir := t.TempDir()
	broken := strings.Join([]string{
		"---",
		`title: "x"`,
		"---",
		"",
		"- [Missing](#nope)",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(controlDir, "x.md"), []byte(broken), 0o644))

	lintCmd := &LintCmd{ControlDir: controlDir, ServicesDir: filepath.Join(t.TempDir(), "services")}
	require.Error(t, lintCmd.Run(&Global{}, &CLI{}))
}
