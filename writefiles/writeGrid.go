package writefiles

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/notargets/tfimesh/geometry3D"
	"github.com/notargets/tfimesh/tfi"
)

type Format uint8

const (
	Tabular Format = iota
	VTK
)

var formatNames = map[string]Format{
	"tabular": Tabular,
	"dat":     Tabular,
	"vtk":     VTK,
}

func NewFormat(label string) (f Format, err error) {
	var ok bool
	if f, ok = formatNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown output format [%s], use tabular or vtk", label)
	}
	return
}

func (f Format) String() string {
	if f == VTK {
		return "vtk"
	}
	return "tabular"
}

// Extension is the file suffix written for the format
func (f Format) Extension() string {
	if f == VTK {
		return ".vtk"
	}
	return ".dat"
}

func withExtension(fileName string, f Format) string {
	if !strings.HasSuffix(fileName, f.Extension()) {
		fileName += f.Extension()
	}
	return fileName
}

func writeTabularHeader(w io.Writer, dims ...int) (err error) {
	var (
		names = []string{"xi", "eta", "zeta"}
	)
	if _, err = fmt.Fprintf(w, "dimension=%d\n", len(dims)); err != nil {
		return
	}
	for n, d := range dims {
		if _, err = fmt.Fprintf(w, "%s=%d\n", names[n], d); err != nil {
			return
		}
	}
	_, err = fmt.Fprintf(w, "%-20s %-20s %-20s\n", "x", "y", "z")
	return
}

func writeTabularPoint(w io.Writer, p geometry3D.Vector) (err error) {
	_, err = fmt.Fprintf(w, "%-20f %-20f %-20f\n", p.X, p.Y, p.Z)
	return
}

// WriteSurfaceTabular writes one x y z line per point, B index fastest
func WriteSurfaceTabular(w io.Writer, surface *tfi.Grid2D) (err error) {
	bw := bufio.NewWriter(w)
	if err = writeTabularHeader(bw, surface.NA, surface.NB); err != nil {
		return
	}
	for iA := 0; iA < surface.NA; iA++ {
		for iB := 0; iB < surface.NB; iB++ {
			if err = writeTabularPoint(bw, surface.At(iA, iB)); err != nil {
				return
			}
		}
	}
	return bw.Flush()
}

// WriteVolumeTabular writes one x y z line per point, zeta index fastest
func WriteVolumeTabular(w io.Writer, vol *tfi.Grid3D) (err error) {
	bw := bufio.NewWriter(w)
	if err = writeTabularHeader(bw, vol.NXi, vol.NEta, vol.NZeta); err != nil {
		return
	}
	for i := 0; i < vol.NXi; i++ {
		for j := 0; j < vol.NEta; j++ {
			for k := 0; k < vol.NZeta; k++ {
				if err = writeTabularPoint(bw, vol.At(i, j, k)); err != nil {
					return
				}
			}
		}
	}
	return bw.Flush()
}

func writeVTKHeader(w io.Writer, ni, nj, nk int, dataType string) (err error) {
	_, err = fmt.Fprintf(w, "# vtk DataFile Version 2.0\n"+
		"Structured mesh file.\n"+
		"BINARY\n"+
		"DATASET STRUCTURED_GRID\n"+
		"DIMENSIONS %d %d %d\n"+
		"POINTS %d %s\n", ni, nj, nk, ni*nj*nk, dataType)
	return
}

// WriteSurfaceVTK writes a legacy VTK structured grid of big endian doubles,
// A index fastest
func WriteSurfaceVTK(w io.Writer, surface *tfi.Grid2D) (err error) {
	bw := bufio.NewWriter(w)
	if err = writeVTKHeader(bw, surface.NA, surface.NB, 1, "double"); err != nil {
		return
	}
	for iB := 0; iB < surface.NB; iB++ {
		for _, p := range surface.Column(iB) {
			if err = binary.Write(bw, binary.BigEndian, p.Components()); err != nil {
				return
			}
		}
	}
	return bw.Flush()
}

// WriteVolumeVTK writes a legacy VTK structured grid of big endian floats,
// xi index fastest
func WriteVolumeVTK(w io.Writer, vol *tfi.Grid3D) (err error) {
	var (
		buf = make([]float32, 0, 3*len(vol.Points))
	)
	bw := bufio.NewWriter(w)
	if err = writeVTKHeader(bw, vol.NXi, vol.NEta, vol.NZeta, "float"); err != nil {
		return
	}
	for k := 0; k < vol.NZeta; k++ {
		for j := 0; j < vol.NEta; j++ {
			for i := 0; i < vol.NXi; i++ {
				p := vol.At(i, j, k)
				buf = append(buf, float32(p.X), float32(p.Y), float32(p.Z))
			}
		}
	}
	if err = binary.Write(bw, binary.BigEndian, buf); err != nil {
		return
	}
	return bw.Flush()
}

func createFile(fileName string, f Format) (file *os.File, name string, err error) {
	name = withExtension(fileName, f)
	log.Info().Str("file", name).Stringer("format", f).Msg("writing mesh file")
	if file, err = os.Create(name); err != nil {
		err = fmt.Errorf("unable to create mesh file: %w", err)
	}
	return
}

// WriteSurfaceFile writes surface to fileName, adding the format extension if
// missing. Output is tee'd into progress when it is not nil.
func WriteSurfaceFile(fileName string, surface *tfi.Grid2D, f Format, progress io.Writer) (name string, err error) {
	var (
		file *os.File
	)
	if file, name, err = createFile(fileName, f); err != nil {
		return
	}
	defer file.Close()
	w := teeWriter(file, progress)
	switch f {
	case VTK:
		err = WriteSurfaceVTK(w, surface)
	default:
		err = WriteSurfaceTabular(w, surface)
	}
	if err != nil {
		return
	}
	return name, file.Close()
}

// WriteVolumeFile writes vol to fileName, adding the format extension if
// missing. Output is tee'd into progress when it is not nil.
func WriteVolumeFile(fileName string, vol *tfi.Grid3D, f Format, progress io.Writer) (name string, err error) {
	var (
		file *os.File
	)
	if file, name, err = createFile(fileName, f); err != nil {
		return
	}
	defer file.Close()
	w := teeWriter(file, progress)
	switch f {
	case VTK:
		err = WriteVolumeVTK(w, vol)
	default:
		err = WriteVolumeTabular(w, vol)
	}
	if err != nil {
		return
	}
	return name, file.Close()
}

func teeWriter(w, progress io.Writer) io.Writer {
	if progress == nil {
		return w
	}
	return io.MultiWriter(w, progress)
}
