/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/tfimesh/InputParameters"
	"github.com/notargets/tfimesh/geometry3D"
	"github.com/notargets/tfimesh/readfiles"
	"github.com/notargets/tfimesh/tfi"
	"github.com/notargets/tfimesh/utils"
	"github.com/notargets/tfimesh/writefiles"
)

type Mesh3D struct {
	GeometryFile   string
	NumXiPoints    int
	NumEtaPoints   int
	NumZetaPoints  int
	OutputFile     string
	Format         string
	ParallelDegree int
	ShowProgress   bool
	Corners        []geometry3D.Vector // Used when GeometryFile is empty
}

// ThreeDCmd represents the 3D command
var ThreeDCmd = &cobra.Command{
	Use:   "3D",
	Short: "Volume grid of a hexahedral block",
	Long: `
Builds a volume grid by trilinear transfinite interpolation of the twelve
boundary curves of a block. Curves come from a boundary curve file (-F) or are
straight edges between the eight corners of a job file (-I).

tfimesh 3D -F geom.dat --nxi 100 --neta 50 --nzeta 50 -o mesh --format vtk`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			m3d *Mesh3D
		)
		if m3d, err = newMesh3D(cmd); err != nil {
			return
		}
		_, err = Run3D(m3d)
		return
	},
}

func init() {
	rootCmd.AddCommand(ThreeDCmd)
	addMeshFlags(ThreeDCmd)
	ThreeDCmd.Flags().StringP("geometryFile", "F", "", "boundary curve file")
	ThreeDCmd.Flags().Int("nzeta", 0, "number of points in the zeta direction")
}

func addMeshFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("inputFile", "I", "", "YAML job file with point counts, corners and output settings")
	cmd.Flags().StringP("outputFile", "o", "mesh", "output file, the format extension is added when missing")
	cmd.Flags().String("format", "tabular", "output format: tabular or vtk")
	cmd.Flags().Int("nxi", 0, "number of points in the xi direction")
	cmd.Flags().Int("neta", 0, "number of points in the eta direction")
	cmd.Flags().BoolP("progress", "P", true, "show a progress bar while writing")
}

// readJobFile loads the job file named by the inputFile flag, if any
func readJobFile(cmd *cobra.Command) (ip *InputParameters.InputParameters3D, err error) {
	var (
		data []byte
	)
	ip = &InputParameters.InputParameters3D{}
	fileName, _ := cmd.Flags().GetString("inputFile")
	if len(fileName) == 0 {
		return
	}
	if data, err = os.ReadFile(fileName); err != nil {
		return nil, fmt.Errorf("unable to read job file: %w", err)
	}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to parse job file %s: %w", fileName, err)
	}
	ip.Print()
	return
}

// stringFlag returns the flag value when set on the command line or when the
// job file leaves it empty
func stringFlag(cmd *cobra.Command, name, fromJob string) string {
	val, _ := cmd.Flags().GetString(name)
	if cmd.Flags().Changed(name) || len(fromJob) == 0 {
		return val
	}
	return fromJob
}

func intFlag(cmd *cobra.Command, name string, fromJob int) int {
	val, _ := cmd.Flags().GetInt(name)
	if cmd.Flags().Changed(name) || fromJob == 0 {
		return val
	}
	return fromJob
}

func parallelDegree(fromJob int) int {
	if np := viper.GetInt("parallel"); np != 0 || fromJob == 0 {
		return np
	}
	return fromJob
}

func newMesh3D(cmd *cobra.Command) (m3d *Mesh3D, err error) {
	var (
		ip *InputParameters.InputParameters3D
	)
	if ip, err = readJobFile(cmd); err != nil {
		return
	}
	m3d = &Mesh3D{
		GeometryFile:   stringFlag(cmd, "geometryFile", ip.GeometryFile),
		NumXiPoints:    intFlag(cmd, "nxi", ip.NumXiPoints),
		NumEtaPoints:   intFlag(cmd, "neta", ip.NumEtaPoints),
		NumZetaPoints:  intFlag(cmd, "nzeta", ip.NumZetaPoints),
		OutputFile:     stringFlag(cmd, "outputFile", ip.OutputFile),
		Format:         stringFlag(cmd, "format", ip.Format),
		ParallelDegree: parallelDegree(ip.ParallelDegree),
	}
	m3d.ShowProgress, _ = cmd.Flags().GetBool("progress")
	if len(m3d.GeometryFile) == 0 {
		if m3d.Corners, err = ip.CornerPoints(8); err != nil {
			return nil, fmt.Errorf("must supply a geometry file (-F, --geometryFile) or eight corners in the job file (-I): %w", err)
		}
	}
	return
}

func (m3d *Mesh3D) geometry() (geom geometry3D.Geometry, err error) {
	if len(m3d.GeometryFile) == 0 {
		var corners [8]geometry3D.Vector
		if len(m3d.Corners) != len(corners) {
			return nil, fmt.Errorf("need 8 corners, have %d", len(m3d.Corners))
		}
		copy(corners[:], m3d.Corners)
		return geometry3D.NewHexahedron(m3d.NumXiPoints, m3d.NumEtaPoints, m3d.NumZetaPoints, corners)
	}
	var (
		raw geometry3D.RawCurves
	)
	if raw, err = readfiles.ReadGeometryFile(m3d.GeometryFile); err != nil {
		return
	}
	return geometry3D.NewCurveGeometry(raw, m3d.NumXiPoints, m3d.NumEtaPoints, m3d.NumZetaPoints)
}

// progressWriter returns a byte counting progress bar, or nil when disabled
func progressWriter(show bool, description string) (bar *progressbar.ProgressBar, w io.Writer) {
	if !show {
		return
	}
	bar = progressbar.DefaultBytes(-1, description)
	return bar, bar
}

// Run3D builds the volume grid described by m3d and writes it, returning the
// name of the file written
func Run3D(m3d *Mesh3D) (fileName string, err error) {
	var (
		geom   geometry3D.Geometry
		vol    *tfi.Grid3D
		format writefiles.Format
		start  = time.Now()
	)
	if format, err = writefiles.NewFormat(m3d.Format); err != nil {
		return
	}
	if geom, err = m3d.geometry(); err != nil {
		return
	}
	if vol, err = tfi.InterpolateVolume(geom, tfi.WithParallelDegree(m3d.ParallelDegree)); err != nil {
		return
	}
	log.Info().
		Int("xi", vol.NXi).Int("eta", vol.NEta).Int("zeta", vol.NZeta).
		Dur("elapsed", time.Since(start)).
		Str("memory", utils.GetMemUsage()).
		Msg("volume grid complete")
	bar, progress := progressWriter(m3d.ShowProgress, "writing volume grid")
	if fileName, err = writefiles.WriteVolumeFile(m3d.OutputFile, vol, format, progress); err != nil {
		return
	}
	if bar != nil {
		_ = bar.Finish()
	}
	log.Info().Str("file", fileName).Msg("volume grid written")
	return
}
