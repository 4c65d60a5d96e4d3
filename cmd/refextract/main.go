package main

import (
	"fmt"
	"log"
	"os"

	"github.com/chip8rt/refextract/internal/batch"
	"github.com/chip8rt/refextract/internal/bitmap"
	"github.com/chip8rt/refextract/internal/config"
	"github.com/chip8rt/refextract/internal/sampler"
	"github.com/chip8rt/refextract/internal/source"
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 1 && args[0] == "--all":
		if err := runAll(); err != nil {
			log.Fatalf("[-] Batch conversion failed: %v", err)
		}
	case len(args) == 2:
		cfg := &config.Config{
			InputPath:  args[0],
			OutputPath: args[1],
			Scale:      config.DefaultScale,
			Threshold:  config.BrightnessThreshold,
		}
		if err := convert(cfg); err != nil {
			log.Fatalf("[-] Conversion failed: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s <input-image> <output.pbm>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s --all\n", os.Args[0])
		os.Exit(1)
	}
}

func runAll() error {
	m := batch.Default()
	if _, err := os.Stat(config.ManifestPath); err == nil {
		loaded, err := batch.Load(config.ManifestPath)
		if err != nil {
			return err
		}
		m = loaded
		fmt.Printf("[*] Using manifest: %s\n", config.ManifestPath)
	}

	return batch.Run(m, func(inputPath, outputPath string) error {
		return convert(&config.Config{
			InputPath:  inputPath,
			OutputPath: outputPath,
			Scale:      config.DefaultScale,
			Threshold:  config.BrightnessThreshold,
		})
	})
}

func convert(cfg *config.Config) error {
	src, err := source.Open(cfg.InputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	img, err := src.Image()
	if err != nil {
		return err
	}

	s := &sampler.Sampler{Scale: cfg.Scale, Threshold: cfg.Threshold}
	grid, rep, err := s.Sample(img)
	if err != nil {
		return err
	}

	fmt.Printf("[*] Image size: %dx%d\n", rep.ImageWidth, rep.ImageHeight)
	fmt.Printf("[*] Display size: %dx%d\n", rep.Cols, rep.Rows)
	fmt.Printf("[*] Scale factor: %dx\n", rep.Scale)

	if rep.Truncated {
		fmt.Printf("[!] Warning: %dx%d is not evenly divisible by %d, trailing pixels ignored\n",
			rep.ImageWidth, rep.ImageHeight, rep.Scale)
	}
	if rep.Cols != config.ExpectedCols || rep.Rows != config.ExpectedRows {
		fmt.Printf("[!] Warning: expected %dx%d display, got %dx%d\n",
			config.ExpectedCols, config.ExpectedRows, rep.Cols, rep.Rows)
	}

	if err := bitmap.Write(grid, cfg.InputPath, cfg.OutputPath); err != nil {
		return err
	}
	fmt.Printf("[+] Wrote %s\n", cfg.OutputPath)

	fmt.Println("\nASCII preview:")
	fmt.Print(bitmap.Preview(grid))

	return nil
}
