package InputParameters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
)

// Parameters holds every run parameter of the shock tube solver. Zero or
// missing keys keep the documented Sod problem defaults.
type Parameters struct {
	Nx                int     `yaml:"Nx"`
	X0                float64 `yaml:"X0"`
	X1                float64 `yaml:"X1"`
	TFinal            float64 `yaml:"TFinal"`
	CFL               float64 `yaml:"CFL"`
	Gamma             float64 `yaml:"Gamma"`
	OutputDT          float64 `yaml:"OutputDT"`
	OutputDir         string  `yaml:"OutputDir"`
	BCType            string  `yaml:"BCType"`
	LeftRho           float64 `yaml:"LeftRho"`
	LeftU             float64 `yaml:"LeftU"`
	LeftP             float64 `yaml:"LeftP"`
	RightRho          float64 `yaml:"RightRho"`
	RightU            float64 `yaml:"RightU"`
	RightP            float64 `yaml:"RightP"`
	InterfacePosition float64 `yaml:"InterfacePosition"`
}

// NewParameters returns the default parameter set: the classic Sod shock
// tube on [0,1] run to t=0.2
func NewParameters() *Parameters {
	return &Parameters{
		Nx:                100,
		X0:                0.0,
		X1:                1.0,
		TFinal:            0.2,
		CFL:               0.8,
		Gamma:             1.4,
		OutputDT:          0.01,
		OutputDir:         "data/outputs",
		BCType:            "outflow",
		LeftRho:           1.0,
		LeftU:             0.0,
		LeftP:             1.0,
		RightRho:          0.125,
		RightU:            0.0,
		RightP:            0.1,
		InterfacePosition: 0.5,
	}
}

// Parse overlays YAML content onto the parameter set
func (ip *Parameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ParseKeyValue overlays "key = value" text onto the parameter set.
// '#' starts a comment, whitespace is trimmed, keys are order independent
// and unknown keys are ignored. A matched key with an unparseable numeric
// value is an error.
func (ip *Parameters) ParseKeyValue(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if pos := strings.IndexByte(line, '#'); pos >= 0 {
			line = line[:pos]
		}
		key, val, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if err := ip.assign(key, val); err != nil {
			return fmt.Errorf("line %d: key %q: %w", lineNo, key, err)
		}
	}
	return scanner.Err()
}

func (ip *Parameters) assign(key, val string) (err error) {
	setF := func(dst *float64) error {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	switch key {
	case "nx":
		ip.Nx, err = strconv.Atoi(val)
	case "x0":
		err = setF(&ip.X0)
	case "x1":
		err = setF(&ip.X1)
	case "t_final":
		err = setF(&ip.TFinal)
	case "cfl":
		err = setF(&ip.CFL)
	case "gamma":
		err = setF(&ip.Gamma)
	case "output_dt":
		err = setF(&ip.OutputDT)
	case "output_dir":
		ip.OutputDir = val
	case "bc_type":
		ip.BCType = val
	case "left_rho":
		err = setF(&ip.LeftRho)
	case "left_u":
		err = setF(&ip.LeftU)
	case "left_p":
		err = setF(&ip.LeftP)
	case "right_rho":
		err = setF(&ip.RightRho)
	case "right_u":
		err = setF(&ip.RightU)
	case "right_p":
		err = setF(&ip.RightP)
	case "interface_position":
		err = setF(&ip.InterfacePosition)
	}
	// Unknown keys fall through untouched
	return
}

// ReadParameterFile loads a parameter file, choosing the YAML parser for
// .yaml/.yml extensions and the key=value parser otherwise. A file that
// cannot be opened is not fatal: a warning goes to stderr and the defaults
// are returned. Malformed content in a file that did open is an error.
func ReadParameterFile(path string) (ip *Parameters, err error) {
	ip = NewParameters()
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open parameter file %s, using defaults\n", path)
		return ip, nil
	}
	defer f.Close()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		var data []byte
		if data, err = io.ReadAll(f); err == nil {
			err = ip.Parse(data)
		}
	default:
		err = ip.ParseKeyValue(f)
	}
	if err != nil {
		return nil, fmt.Errorf("parameter file %s: %w", path, err)
	}
	return ip, nil
}

func (ip *Parameters) Print() {
	fmt.Printf("%8d\t\t= Nx\n", ip.Nx)
	fmt.Printf("%8.5f\t\t= X0\n", ip.X0)
	fmt.Printf("%8.5f\t\t= X1\n", ip.X1)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.TFinal)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("%8.5f\t\t= OutputDT\n", ip.OutputDT)
	fmt.Printf("[%s]\t\t= OutputDir\n", ip.OutputDir)
	fmt.Printf("[%s]\t\t= BCType\n", ip.BCType)
	fmt.Printf("(%g, %g, %g)\t= Left (rho, u, p)\n", ip.LeftRho, ip.LeftU, ip.LeftP)
	fmt.Printf("(%g, %g, %g)\t= Right (rho, u, p)\n", ip.RightRho, ip.RightU, ip.RightP)
	fmt.Printf("%8.5f\t\t= InterfacePosition\n", ip.InterfacePosition)
}
