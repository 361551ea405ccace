package label

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/navball"
)

// Font is a parsed TTF or OTF font. It holds two views of the same data:
// an sfnt font for outlines and a go-text font for shaping.
//
// Font is safe for concurrent use.
type Font struct {
	name   string
	sfnt   *sfnt.Font
	shaper *gtfont.Font
}

// ParseFont parses font data (TTF or OTF).
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("label: failed to parse font: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("label: failed to parse font for shaping: %w", err)
	}

	return &Font{
		name:   fontName(sf),
		sfnt:   sf,
		shaper: face.Font,
	}, nil
}

// LoadFont reads and parses a font file.
func LoadFont(path string) (*Font, error) {
	// #nosec G304 -- font path comes from the configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("label: failed to read font file: %w", err)
	}
	return ParseFont(data)
}

// fontDirs are searched, recursively, for fonts given by bare file name.
// A leading ~ stands for the user's home directory.
var fontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"~/.fonts",
	"~/.local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	`C:\Windows\Fonts`,
}

// resolveFont returns path itself when it exists or has a directory part.
// A bare file name that does not exist in the working directory is looked up
// under fontDirs; the first file with that name wins.
func resolveFont(path string) string {
	if _, err := os.Stat(path); err == nil || filepath.Base(path) != path {
		return path
	}
	for _, dir := range fontDirs {
		if rest, ok := strings.CutPrefix(dir, "~"); ok {
			home, err := os.UserHomeDir()
			if err != nil {
				continue
			}
			dir = filepath.Join(home, rest)
		}
		if found := findFile(dir, path); found != "" {
			navball.Logger().Debug("label font found", "name", path, "path", found)
			return found
		}
	}
	return path
}

// findFile walks root for a regular file named name. Unreadable or missing
// directories are skipped.
func findFile(root, name string) string {
	var found string
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == name {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	return found
}

// LoadFontOrDefault loads the font at path, looking bare file names up in the
// system font directories. When path is empty or the font cannot be loaded,
// it returns the embedded Go Regular font (Go Bold when bold is set) instead
// of failing.
func LoadFontOrDefault(path string, bold bool) *Font {
	if path != "" {
		f, err := LoadFont(resolveFont(path))
		if err == nil {
			return f
		}
		navball.Logger().Warn("label font unavailable, using default",
			"path", path, "bold", bold, "err", err)
	}
	return DefaultFont(bold)
}

// DefaultFont returns the embedded Go Regular or Go Bold font.
func DefaultFont(bold bool) *Font {
	data := goregular.TTF
	if bold {
		data = gobold.TTF
	}
	f, err := ParseFont(data)
	if err != nil {
		// The embedded fonts are known-good.
		panic(err)
	}
	return f
}

// Name returns the font family name.
func (f *Font) Name() string { return f.name }

// fontName extracts the family name, falling back to the full name.
func fontName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
