package tfi

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/notargets/tfimesh/geometry3D"
	"github.com/notargets/tfimesh/utils"
)

type options struct {
	parallelDegree int
}

type Option func(*options)

// WithParallelDegree sets the number of goroutines filling the interior.
// Zero or less selects runtime.NumCPU(), 1 runs serially.
func WithParallelDegree(np int) Option {
	return func(o *options) {
		o.parallelDegree = np
	}
}

// InterpolateVolume fills the block described by geom by trilinear
// transfinite interpolation. The six boundary layers are the interpolated
// faces, written in the order xi0, xi1, eta0, eta1, zeta0, zeta1.
func InterpolateVolume(geom geometry3D.Geometry, opts ...Option) (vol *Grid3D, err error) {
	var (
		o     options
		start = time.Now()
		face  *Grid2D
	)
	for _, opt := range opts {
		opt(&o)
	}
	vol = NewGrid3D(geom.NumXiPoints(), geom.NumEtaPoints(), geom.NumZetaPoints())
	for s := geometry3D.Side(0); s < geometry3D.NumSides; s++ {
		if face, err = InterpolateFace(geometry3D.ExtractFace(geom, s)); err != nil {
			log.Error().Err(err).Stringer("side", s).Msg("face interpolation failed")
			return nil, err
		}
		vol.SetLayer(s, face)
	}
	np := fillInterior(vol, o.parallelDegree)
	log.Debug().
		Int("xi", vol.NXi).Int("eta", vol.NEta).Int("zeta", vol.NZeta).
		Int("parallelDegree", np).
		Dur("elapsed", time.Since(start)).
		Msg("volume interpolation complete")
	return
}

// fillInterior splits the interior xi planes into contiguous buckets, one
// goroutine per bucket. Cells only read the boundary layers.
func fillInterior(vol *Grid3D, requested int) (np int) {
	var (
		numInterior = vol.NXi - 2
	)
	if numInterior < 1 || vol.NEta < 3 || vol.NZeta < 3 {
		return 0
	}
	np = utils.ParallelDegree(requested, numInterior)
	pm := utils.NewPartitionMap(np, numInterior)
	pm.RunPartitions(func(_, kMin, kMax int) {
		for i := kMin + 1; i < kMax+1; i++ {
			for j := 1; j < vol.NEta-1; j++ {
				for k := 1; k < vol.NZeta-1; k++ {
					vol.Set(i, j, k, InteriorPoint(vol, i, j, k))
				}
			}
		}
	})
	return
}

// InteriorPoint evaluates the Boolean sum of the linear, bilinear and
// trilinear projections of the boundary layers of vol at cell (i,j,k)
func InteriorPoint(vol *Grid3D, i, j, k int) geometry3D.Vector {
	var (
		xi      = geometry3D.UniformParameter(i, vol.NXi).Val()
		eta     = geometry3D.UniformParameter(j, vol.NEta).Val()
		zeta    = geometry3D.UniformParameter(k, vol.NZeta).Val()
		xiEnd   = vol.NXi - 1
		etaEnd  = vol.NEta - 1
		zetaEnd = vol.NZeta - 1
		v       = vol.At
	)
	// Linear projection
	projXi := v(0, j, k).Scale(1 - xi).
		Add(v(xiEnd, j, k).Scale(xi))

	projEta := v(i, 0, k).Scale(1 - eta).
		Add(v(i, etaEnd, k).Scale(eta))

	projZeta := v(i, j, 0).Scale(1 - zeta).
		Add(v(i, j, zetaEnd).Scale(zeta))

	// Bi-linear projection
	projXiEta := v(0, 0, k).Scale((1 - xi) * (1 - eta)).
		Add(v(0, etaEnd, k).Scale((1 - xi) * eta)).
		Add(v(xiEnd, 0, k).Scale(xi * (1 - eta))).
		Add(v(xiEnd, etaEnd, k).Scale(xi * eta))

	projEtaZeta := v(i, 0, 0).Scale((1 - eta) * (1 - zeta)).
		Add(v(i, 0, zetaEnd).Scale((1 - eta) * zeta)).
		Add(v(i, etaEnd, 0).Scale(eta * (1 - zeta))).
		Add(v(i, etaEnd, zetaEnd).Scale(eta * zeta))

	projXiZeta := v(0, j, 0).Scale((1 - xi) * (1 - zeta)).
		Add(v(0, j, zetaEnd).Scale((1 - xi) * zeta)).
		Add(v(xiEnd, j, 0).Scale(xi * (1 - zeta))).
		Add(v(xiEnd, j, zetaEnd).Scale(xi * zeta))

	// Tri-linear projection
	projXiEtaZeta := v(0, 0, 0).Scale((1 - xi) * (1 - eta) * (1 - zeta)).
		Add(v(xiEnd, 0, 0).Scale(xi * (1 - eta) * (1 - zeta))).
		Add(v(0, etaEnd, 0).Scale((1 - xi) * eta * (1 - zeta))).
		Add(v(0, 0, zetaEnd).Scale((1 - xi) * (1 - eta) * zeta)).
		Add(v(xiEnd, etaEnd, 0).Scale(xi * eta * (1 - zeta))).
		Add(v(xiEnd, 0, zetaEnd).Scale(xi * (1 - eta) * zeta)).
		Add(v(0, etaEnd, zetaEnd).Scale((1 - xi) * eta * zeta)).
		Add(v(xiEnd, etaEnd, zetaEnd).Scale(xi * eta * zeta))

	return projXi.
		Add(projEta).
		Add(projZeta).
		Sub(projEtaZeta).
		Sub(projXiEta).
		Sub(projXiZeta).
		Add(projXiEtaZeta)
}
