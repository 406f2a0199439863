package icon

import (
	"fmt"
	"io"
	"os"

	"github.com/nce-learn/icons/internal/config"
	"github.com/nce-learn/icons/internal/paths"
)

// Generator writes icon PNGs according to its options.
type Generator struct {
	Opts  config.Options
	Fonts FontResolver

	// Out receives progress lines. Nil discards them.
	Out io.Writer

	// Fancy adds the check mark to the closing message. The binary sets
	// it when stdout is a terminal.
	Fancy bool
}

// New returns a generator for opts that resolves fonts from opts.FontPaths
// and prints progress to out.
func New(opts config.Options, out io.Writer) *Generator {
	return &Generator{
		Opts:  opts,
		Fonts: FontResolver{Paths: opts.FontPaths},
		Out:   out,
	}
}

// Generate renders one size×size icon and writes it to path, replacing any
// existing file.
func (g *Generator) Generate(size int, path string) error {
	if size <= 0 {
		return fmt.Errorf("icon size %d: must be positive", size)
	}
	bg, fg, err := g.Opts.Colors()
	if err != nil {
		return fmt.Errorf("icon %s: %w", path, err)
	}
	face := g.Fonts.Resolve(g.Opts.FontPixels(size))
	defer face.Close()

	img := Draw(size, face, g.Opts.Label, bg, fg)
	data, err := EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	g.printf("Created %s\n", path)
	return nil
}

// Run creates the output directory and generates every configured size in
// order. The first failure stops the run; files already written stay.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.Opts.OutputDir, paths.DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", g.Opts.OutputDir, err)
	}
	for _, size := range g.Opts.Sizes {
		if err := g.Generate(size, paths.IconPath(g.Opts.OutputDir, size)); err != nil {
			return err
		}
	}
	g.printSummary()
	return nil
}

func (g *Generator) printSummary() {
	mark := ""
	if g.Fancy {
		mark = "✅ "
	}
	g.printf("\n%sAll icons generated successfully!\n", mark)
	g.printf(`
Next steps:
1. The icons are basic placeholders
2. Consider creating professional icons with your brand design
3. For production, use tools like Figma or Adobe XD for better icons
`)
}

func (g *Generator) printf(format string, args ...any) {
	if g.Out == nil {
		return
	}
	fmt.Fprintf(g.Out, format, args...)
}
