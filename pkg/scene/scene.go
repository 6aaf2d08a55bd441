package scene

import (
	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/optics"
	"github.com/opticslab/go-beamtrace/pkg/tracer"
)

// Scene is one immutable snapshot of an optical bench: the ordered
// element list and the ray sources. The caller may replace the snapshot
// wholesale between trace passes but must not mutate it mid-pass.
type Scene struct {
	Name     string
	Elements []optics.Element
	Sources  []Source
}

// SourceRays generates all source rays in declaration order. This order
// defines the order of the traced path list.
func (s *Scene) SourceRays() []core.Ray {
	var rays []core.Ray
	for i := range s.Sources {
		rays = append(rays, s.Sources[i].Rays()...)
	}
	return rays
}

// Trace runs one full stateless pass over the snapshot and returns the
// traced paths in source-ray order
func (s *Scene) Trace(params tracer.Params) ([]core.RayPath, tracer.TraceStats) {
	return tracer.Trace(s.Elements, s.SourceRays(), params)
}
