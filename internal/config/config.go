package config

// Fixed conversion policy. Downstream golden-file comparisons depend on
// these exact values; changing any of them silently alters every
// derived reference artifact.
const (
	// DefaultScale is the upscale factor of the test-suite screenshots:
	// each CHIP-8 pixel is a 12x12 block in the source image.
	DefaultScale = 12

	// BrightnessThreshold separates "on" from "off" cells. A cell is on
	// when the mean of its R, G, B channels strictly exceeds this value.
	BrightnessThreshold = 128

	// ExpectedCols and ExpectedRows describe the standard CHIP-8 display.
	ExpectedCols = 64
	ExpectedRows = 32

	// DefaultPDFDPI is the render resolution for PDF page sources.
	DefaultPDFDPI = 72
)

// Conventional locations used by batch mode.
const (
	PicturesDir   = "tests/chip8-test-suite/pictures"
	ReferencesDir = "tests/references"
	ManifestPath  = "tests/references.yaml"
)

// Config describes one conversion invocation.
type Config struct {
	InputPath  string
	OutputPath string
	Scale      int
	Threshold  int
}
