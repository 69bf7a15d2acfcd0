package grid

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/memmaker/targeter/engine/util"
	"github.com/pkg/errors"
)

const (
	flagKnown byte = 1 << iota
	flagCloud
	flagSanctuary
)

type mapFile struct {
	Version  int32  `nbt:"version"`
	Width    int32  `nbt:"width"`
	Height   int32  `nbt:"height"`
	Features []byte `nbt:"features"`
	Flags    []byte `nbt:"flags"`
}

const mapFileVersion = 1

func (m *Map) toMapFile() mapFile {
	file := mapFile{
		Version:  mapFileVersion,
		Width:    m.width,
		Height:   m.height,
		Features: make([]byte, len(m.cells)),
		Flags:    make([]byte, len(m.cells)),
	}
	for i, cell := range m.cells {
		file.Features[i] = byte(cell.Feature)
		var flags byte
		if cell.Known {
			flags |= flagKnown
		}
		if cell.Cloud {
			flags |= flagCloud
		}
		if cell.Sanctuary {
			flags |= flagSanctuary
		}
		file.Flags[i] = flags
	}
	return file
}

func fromMapFile(file mapFile) (*Map, error) {
	if file.Version != mapFileVersion {
		return nil, errors.Errorf("unsupported map version %d", file.Version)
	}
	if file.Width <= 0 || file.Height <= 0 {
		return nil, errors.Errorf("invalid map size %dx%d", file.Width, file.Height)
	}
	cellCount := int(file.Width * file.Height)
	if len(file.Features) != cellCount || len(file.Flags) != cellCount {
		return nil, errors.Errorf("map data has %d features and %d flags, expected %d", len(file.Features), len(file.Flags), cellCount)
	}
	m := NewMap(file.Width, file.Height)
	for i := range m.cells {
		f := Feature(file.Features[i])
		if f >= Unseen {
			return nil, errors.Errorf("invalid feature %d at index %d", f, i)
		}
		m.cells[i].Feature = f
		m.cells[i].Known = file.Flags[i]&flagKnown != 0
		m.cells[i].Cloud = file.Flags[i]&flagCloud != 0
		m.cells[i].Sanctuary = file.Flags[i]&flagSanctuary != 0
	}
	return m, nil
}

// Write stores the terrain as gzip compressed NBT. Occupants are not saved.
func (m *Map) Write(w io.Writer) error {
	gzipWriter := gzip.NewWriter(w)
	if err := nbt.NewEncoder(gzipWriter).Encode(m.toMapFile(), "map"); err != nil {
		return errors.Wrap(err, "encoding map")
	}
	return errors.Wrap(gzipWriter.Close(), "compressing map")
}

func ReadMap(r io.Reader) (*Map, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening compressed map")
	}
	defer gzipReader.Close()
	var file mapFile
	if _, err = nbt.NewDecoder(gzipReader).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decoding map")
	}
	return fromMapFile(file)
}

func (m *Map) SaveToFile(filename string) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	if err = m.Write(outfile); err != nil {
		outfile.Close()
		return errors.Wrapf(err, "saving %s", filename)
	}
	if err = outfile.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", filename)
	}
	util.LogIOInfo(fmt.Sprintf("[Map] Saved %dx%d map to %s", m.width, m.height, filename))
	return nil
}

func LoadFromFile(filename string) (*Map, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()
	m, err := ReadMap(file)
	if err != nil {
		util.LogIOError(fmt.Sprintf("[Map] Failed to load %s: %v", filename, err))
		return nil, errors.Wrapf(err, "loading %s", filename)
	}
	util.LogIOInfo(fmt.Sprintf("[Map] Loaded %dx%d map from %s", m.width, m.height, filename))
	return m, nil
}
