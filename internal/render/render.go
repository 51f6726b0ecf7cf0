// Package render persists DOT descriptions and rasterizes them with an
// external Graphviz program, one invocation per function.
package render

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"mircfg/internal/cfg"
	"mircfg/internal/pack"
)

// Defaults reproducing the plain `mircfg <artifact>` behavior.
const (
	DefaultProgram = "dot"
	DefaultFormat  = "png"
	DefaultOutDir  = "mirs"
)

// Renderer turns function bodies into a graph-description file plus a
// rendered image, both named after the function's DefID.
type Renderer struct {
	Program string
	Format  string
	OutDir  string
}

// Result names the files produced for one function.
type Result struct {
	DotPath   string
	ImagePath string
}

// New returns a Renderer with the default program, format and output
// directory.
func New() *Renderer {
	return &Renderer{Program: DefaultProgram, Format: DefaultFormat, OutDir: DefaultOutDir}
}

// Render writes the DOT text for body and invokes the renderer on it. The
// DOT file is fully written and closed before the external program runs,
// and it is retained even when rendering fails.
func (r *Renderer) Render(body *pack.Body) (Result, error) {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := fmt.Sprintf("mir-%d-%d", body.DefID.CrateHash, body.DefID.DefIdx)
	res := Result{
		DotPath:   filepath.Join(r.OutDir, base+".dot.txt"),
		ImagePath: filepath.Join(r.OutDir, base+"."+r.Format),
	}

	if err := r.writeDot(res.DotPath, body); err != nil {
		return Result{}, err
	}
	if err := runCommand(r.Program, "-T"+r.Format, "-o"+res.ImagePath, res.DotPath); err != nil {
		return Result{}, fmt.Errorf("failed to render %s: %w", res.DotPath, err)
	}
	return res, nil
}

func (r *Renderer) writeDot(path string, body *pack.Body) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	werr := cfg.WriteGraph(f, body)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("failed to write %s: %w", path, werr)
	}
	return nil
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return fmt.Errorf("%s: %s", name, msg)
	}
	return nil
}
