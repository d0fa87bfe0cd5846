package world

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/waypoint/pkg/errors"
)

// worldFile mirrors the TOML layout of a world description.
type worldFile struct {
	Name      string          `toml:"name"`
	Start     string          `toml:"start"`
	Locations []locationEntry `toml:"location"`
	Paths     []pathEntry     `toml:"path"`
}

type locationEntry struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Region      string   `toml:"region"`
	Items       []string `toml:"items"`
}

// pathEntry links From to To. Back defaults to the opposite of Direction.
type pathEntry struct {
	From      string `toml:"from"`
	Direction string `toml:"direction"`
	To        string `toml:"to"`
	Back      string `toml:"back"`
}

// Load reads a TOML world description from path.
func Load(path string, opts ...Option) (*World, error) {
	if err := errors.ValidateWorldFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "world file %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Decode(f, opts...)
}

// Decode reads a TOML world description from r. Unknown keys, duplicate
// locations, unknown directions and conflicting paths are reported as
// INVALID_WORLD errors naming the offending entry.
func Decode(r io.Reader, opts ...Option) (*World, error) {
	var file worldFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWorld, err, "parse world")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidWorld, "unknown keys: %s", strings.Join(keys, ", "))
	}

	w := New(file.Name, opts...)
	for i, le := range file.Locations {
		loc := Location{Name: le.Name, Description: le.Description, Region: le.Region, Items: le.Items}
		if err := w.AddLocation(loc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidWorld, err, "location #%d: %s", i+1, errors.UserMessage(err))
		}
	}
	for i, pe := range file.Paths {
		if err := w.addPath(pe); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidWorld, err, "path #%d (%s -> %s): %s", i+1, pe.From, pe.To, errors.UserMessage(err))
		}
	}
	if file.Start != "" {
		if err := w.SetStart(file.Start); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidWorld, err, "start: %s", errors.UserMessage(err))
		}
	}

	s := w.Stats()
	w.logger.Debug("loaded world", "name", w.name, "locations", s.Locations, "paths", s.Paths)
	return w, nil
}

func (w *World) addPath(pe pathEntry) error {
	dir, err := ParseDirection(pe.Direction)
	if err != nil {
		return err
	}
	back := dir.Opposite()
	if pe.Back != "" {
		if back, err = ParseDirection(pe.Back); err != nil {
			return err
		}
	} else if pe.From == pe.To {
		back = dir
	}
	return w.LinkVia(pe.From, dir, pe.To, back)
}
