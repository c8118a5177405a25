package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/notargets/tfimesh/geometry3D"
)

/*
Boundary curve files list each of the twelve curves as a header line with the
curve label and its point count, followed by that many lines of x y z:

	# comment
	xi0_eta0: 3
	0 0 0
	0 0 0.5
	0 0 1
	eta0_zeta0 = 2
	...

Blank lines and anything after a # are ignored. Curves may appear in any order.
*/

type lineReader struct {
	reader *bufio.Reader
	lineNo int
}

// getLine returns the next line that has content once comments are removed
func (lr *lineReader) getLine() (line string, err error) {
	for {
		var raw string
		raw, err = lr.reader.ReadString('\n')
		if err != nil && !(err == io.EOF && len(raw) != 0) {
			return
		}
		err = nil
		lr.lineNo++
		if ind := strings.Index(raw, "#"); ind >= 0 {
			raw = raw[:ind]
		}
		if line = strings.TrimSpace(raw); len(line) != 0 {
			return
		}
	}
}

func splitHeader(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ':' || r == '=' || r == ' ' || r == '\t' || r == '\r'
	})
}

func (lr *lineReader) readHeader(line string) (label geometry3D.CurveLabel, count int, err error) {
	var (
		tokens = splitHeader(line)
		ok     bool
	)
	if len(tokens) < 2 {
		err = fmt.Errorf("line %d: badly formed curve header [%s], should be label: count", lr.lineNo, line)
		return
	}
	if label, ok = geometry3D.ParseCurveLabel(tokens[0]); !ok {
		err = fmt.Errorf("line %d: unknown curve label [%s]", lr.lineNo, tokens[0])
		return
	}
	if count, err = strconv.Atoi(tokens[len(tokens)-1]); err != nil || count < 0 {
		err = fmt.Errorf("line %d: unable to read point count for %s from [%s]",
			lr.lineNo, label, tokens[len(tokens)-1])
	}
	return
}

func (lr *lineReader) readPoint() (p geometry3D.Vector, err error) {
	var (
		line   string
		coords [3]float64
	)
	if line, err = lr.getLine(); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("line %d: early end of file: %w", lr.lineNo, io.ErrUnexpectedEOF)
		}
		return
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		err = fmt.Errorf("line %d: unable to read coordinates from [%s], need x y z", lr.lineNo, line)
		return
	}
	for d := range coords {
		if coords[d], err = strconv.ParseFloat(fields[d], 64); err != nil {
			err = fmt.Errorf("line %d: unable to read coordinates: %w", lr.lineNo, err)
			return
		}
	}
	p = geometry3D.NewVector(coords[0], coords[1], coords[2])
	return
}

// ReadGeometryCurves reads boundary curve samples from r. Curves missing from
// the input are absent from the result.
func ReadGeometryCurves(r io.Reader) (raw geometry3D.RawCurves, err error) {
	var (
		lr = &lineReader{reader: bufio.NewReader(r)}
	)
	raw = make(geometry3D.RawCurves)
	for {
		var (
			line  string
			label geometry3D.CurveLabel
			count int
		)
		if line, err = lr.getLine(); err != nil {
			if err == io.EOF {
				err = nil
				break
			}
			return nil, err
		}
		if label, count, err = lr.readHeader(line); err != nil {
			return nil, err
		}
		if _, present := raw[label]; present {
			return nil, fmt.Errorf("line %d: curve %s appears more than once", lr.lineNo, label)
		}
		// Points are appended as read, the header count only bounds the loop
		var pts []geometry3D.Vector
		for i := 0; i < count; i++ {
			var p geometry3D.Vector
			if p, err = lr.readPoint(); err != nil {
				return nil, fmt.Errorf("curve %s point %d: %w", label, i, err)
			}
			pts = append(pts, p)
		}
		raw[label] = pts
	}
	return
}

func ReadGeometryFile(filename string) (raw geometry3D.RawCurves, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open geometry file: %w", err)
	}
	defer file.Close()
	log.Info().Str("file", filename).Msg("reading boundary curves")
	if raw, err = ReadGeometryCurves(file); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debug().Int("curves", len(raw)).Msg("boundary curves read")
	return
}
