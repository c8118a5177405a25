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

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/notargets/tfimesh/geometry3D"
	"github.com/notargets/tfimesh/tfi"
	"github.com/notargets/tfimesh/utils"
	"github.com/notargets/tfimesh/writefiles"
)

type Mesh2D struct {
	NumXiPoints  int // Points from p0 to p3
	NumEtaPoints int // Points from p0 to p1
	OutputFile   string
	Format       string
	ShowProgress bool
	Corners      []geometry3D.Vector
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Surface grid of a quadrilateral face",
	Long: `
Builds a surface grid by bilinear transfinite interpolation of the straight
edges joining the four corners p0, p1, p2, p3 listed in a job file (-I).

tfimesh 2D -I face.yaml --nxi 20 --neta 10 -o face`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			m2d *Mesh2D
		)
		if m2d, err = newMesh2D(cmd); err != nil {
			return
		}
		_, err = Run2D(m2d)
		return
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	addMeshFlags(TwoDCmd)
}

func newMesh2D(cmd *cobra.Command) (m2d *Mesh2D, err error) {
	ip, err := readJobFile(cmd)
	if err != nil {
		return
	}
	m2d = &Mesh2D{
		NumXiPoints:  intFlag(cmd, "nxi", ip.NumXiPoints),
		NumEtaPoints: intFlag(cmd, "neta", ip.NumEtaPoints),
		OutputFile:   stringFlag(cmd, "outputFile", ip.OutputFile),
		Format:       stringFlag(cmd, "format", ip.Format),
	}
	m2d.ShowProgress, _ = cmd.Flags().GetBool("progress")
	if m2d.Corners, err = ip.CornerPoints(4); err != nil {
		return nil, fmt.Errorf("must supply four corners in the job file (-I): %w", err)
	}
	return
}

// Run2D builds the surface grid described by m2d and writes it, returning the
// name of the file written
func Run2D(m2d *Mesh2D) (fileName string, err error) {
	var (
		face    *geometry3D.Surface
		surface *tfi.Grid2D
		format  writefiles.Format
		p       = m2d.Corners
	)
	if format, err = writefiles.NewFormat(m2d.Format); err != nil {
		return
	}
	if len(p) != 4 {
		return "", fmt.Errorf("need 4 corners, have %d", len(p))
	}
	if face, err = geometry3D.NewQuadFace(p[0], p[1], p[2], p[3], m2d.NumXiPoints, m2d.NumEtaPoints); err != nil {
		return
	}
	if surface, err = tfi.InterpolateFace(face); err != nil {
		return
	}
	log.Info().
		Int("xi", surface.NA).Int("eta", surface.NB).
		Str("memory", utils.GetMemUsage()).
		Msg("surface grid complete")
	bar, progress := progressWriter(m2d.ShowProgress, "writing surface grid")
	if fileName, err = writefiles.WriteSurfaceFile(m2d.OutputFile, surface, format, progress); err != nil {
		return
	}
	if bar != nil {
		_ = bar.Finish()
	}
	log.Info().Str("file", fileName).Msg("surface grid written")
	return
}
