package InputParameters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	ip := NewParameters()
	assert.Equal(t, 100, ip.Nx)
	assert.Equal(t, 0.0, ip.X0)
	assert.Equal(t, 1.0, ip.X1)
	assert.Equal(t, 0.2, ip.TFinal)
	assert.Equal(t, 0.8, ip.CFL)
	assert.Equal(t, 1.4, ip.Gamma)
	assert.Equal(t, 0.01, ip.OutputDT)
	assert.Equal(t, "data/outputs", ip.OutputDir)
	assert.Equal(t, "outflow", ip.BCType)
	assert.Equal(t, 1.0, ip.LeftRho)
	assert.Equal(t, 0.125, ip.RightRho)
	assert.Equal(t, 0.1, ip.RightP)
	assert.Equal(t, 0.5, ip.InterfacePosition)
}

func TestParseKeyValue(t *testing.T) {
	input := `
# Sod variant on a wider domain
nx = 400
x1=2.0          # inline comment after the value
bc_type = reflective
left_p = 2.5
interface_position = 1.0

unknown_key = 42   # ignored, not an error
not a key value line
`
	ip := NewParameters()
	err := ip.ParseKeyValue(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, 400, ip.Nx)
	assert.Equal(t, 2.0, ip.X1)
	assert.Equal(t, "reflective", ip.BCType)
	assert.Equal(t, 2.5, ip.LeftP)
	assert.Equal(t, 1.0, ip.InterfacePosition)
	// Unset keys keep their defaults
	assert.Equal(t, 0.0, ip.X0)
	assert.Equal(t, 0.8, ip.CFL)
}

func TestParseKeyValueMalformed(t *testing.T) {
	ip := NewParameters()
	err := ip.ParseKeyValue(strings.NewReader("cfl = not_a_number\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cfl")

	ip = NewParameters()
	err = ip.ParseKeyValue(strings.NewReader("nx = 12.5\n"))
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	input := `
Nx: 50
CFL: 0.5
BCType: reflective
LeftP: 10.0
`
	ip := NewParameters()
	assert.NoError(t, ip.Parse([]byte(input)))
	assert.Equal(t, 50, ip.Nx)
	assert.Equal(t, 0.5, ip.CFL)
	assert.Equal(t, "reflective", ip.BCType)
	assert.Equal(t, 10.0, ip.LeftP)
	assert.Equal(t, 1.4, ip.Gamma) // untouched default
}

func TestReadParameterFile(t *testing.T) {
	dir := t.TempDir()

	// Missing file: defaults, warning only
	ip, err := ReadParameterFile(filepath.Join(dir, "nope.txt"))
	assert.NoError(t, err)
	assert.Equal(t, NewParameters(), ip)

	// key=value file
	pathKV := filepath.Join(dir, "params.txt")
	assert.NoError(t, os.WriteFile(pathKV, []byte("nx = 32\ncfl = 0.6\n"), 0o644))
	ip, err = ReadParameterFile(pathKV)
	assert.NoError(t, err)
	assert.Equal(t, 32, ip.Nx)
	assert.Equal(t, 0.6, ip.CFL)

	// YAML file selected by extension
	pathYAML := filepath.Join(dir, "params.yaml")
	assert.NoError(t, os.WriteFile(pathYAML, []byte("Nx: 64\nGamma: 1.667\n"), 0o644))
	ip, err = ReadParameterFile(pathYAML)
	assert.NoError(t, err)
	assert.Equal(t, 64, ip.Nx)
	assert.Equal(t, 1.667, ip.Gamma)

	// Malformed numeric text in an openable file is fatal
	pathBad := filepath.Join(dir, "bad.txt")
	assert.NoError(t, os.WriteFile(pathBad, []byte("gamma = one.four\n"), 0o644))
	_, err = ReadParameterFile(pathBad)
	assert.Error(t, err)
}
