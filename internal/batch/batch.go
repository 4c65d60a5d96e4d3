package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chip8rt/refextract/internal/config"
)

// Conversion is one input screenshot and the reference file it becomes.
type Conversion struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Manifest describes a batch conversion set. The default set covers the
// standard test-suite screenshots; a manifest file at
// config.ManifestPath overrides it so a suite can extend its golden set
// without rebuilding the tool.
type Manifest struct {
	Version       string       `yaml:"version"`
	PicturesDir   string       `yaml:"pictures_dir"`
	ReferencesDir string       `yaml:"references_dir"`
	Conversions   []Conversion `yaml:"conversions"`
}

// Default returns the built-in conversion set: the four standard
// test-suite screenshots under the conventional directories.
func Default() *Manifest {
	return &Manifest{
		Version:       "1.0",
		PicturesDir:   config.PicturesDir,
		ReferencesDir: config.ReferencesDir,
		Conversions: []Conversion{
			{Input: "chip-8-logo.png", Output: "1-chip8-logo.pbm"},
			{Input: "ibm-logo.png", Output: "2-ibm-logo.pbm"},
			{Input: "corax+.png", Output: "3-corax.pbm"},
			{Input: "flags.png", Output: "4-flags.pbm"},
		},
	}
}

// Load reads a manifest from a YAML file. Directories left empty fall
// back to the conventional locations.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("bad manifest %s: %w", path, err)
	}

	if m.PicturesDir == "" {
		m.PicturesDir = config.PicturesDir
	}
	if m.ReferencesDir == "" {
		m.ReferencesDir = config.ReferencesDir
	}
	if len(m.Conversions) == 0 {
		return nil, fmt.Errorf("manifest %s lists no conversions", path)
	}

	return &m, nil
}

// Write saves a manifest as YAML.
func Write(m *Manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Run converts every entry in order, creating the references directory
// first. The loop is strictly sequential: workloads are a handful of
// small images, so parallelism would buy nothing. The first failing
// entry aborts the batch.
func Run(m *Manifest, convert func(inputPath, outputPath string) error) error {
	if err := os.MkdirAll(m.ReferencesDir, 0755); err != nil {
		return err
	}

	for _, c := range m.Conversions {
		fmt.Printf("\n%s\n", strings.Repeat("=", 60))
		fmt.Printf("Converting %s -> %s\n", c.Input, c.Output)
		fmt.Println(strings.Repeat("=", 60))

		in := filepath.Join(m.PicturesDir, c.Input)
		out := filepath.Join(m.ReferencesDir, c.Output)
		if err := convert(in, out); err != nil {
			return fmt.Errorf("converting %s: %w", c.Input, err)
		}
	}

	return nil
}
