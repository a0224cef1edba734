package rgn

import (
	"github.com/dhconnelly/rtreego"

	"rgnmap/internal/geodesy"
)

// pointEpsilon gives point entries a non-zero extent (~11 m at the equator);
// the R-tree rejects zero-length rectangles.
const pointEpsilon = 0.0001

// spatialIndex is an R-tree over VG positions, keyed lon/lat.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

type indexedPoint struct {
	point *SurveyPoint
}

// Bounds implements rtreego.Spatial.
func (ip *indexedPoint) Bounds() rtreego.Rect {
	rect, _ := rtreego.NewRect(rtreego.Point{ip.point.Lon, ip.point.Lat}, []float64{pointEpsilon, pointEpsilon})
	return rect
}

func newSpatialIndex() *spatialIndex {
	return &spatialIndex{rtree: rtreego.NewTree(2, 25, 50)}
}

func (s *spatialIndex) insert(p *SurveyPoint) {
	s.rtree.Insert(&indexedPoint{point: p})
}

// candidates returns the VGs whose entry intersects box.
func (s *spatialIndex) candidates(box geodesy.Box) []*SurveyPoint {
	// pad by one epsilon on each side: the R-tree only reports strict overlaps
	query, err := rtreego.NewRect(
		rtreego.Point{box.MinLon - pointEpsilon, box.MinLat - pointEpsilon},
		[]float64{box.MaxLon - box.MinLon + 2*pointEpsilon, box.MaxLat - box.MinLat + 2*pointEpsilon},
	)
	if err != nil {
		return nil
	}
	spatials := s.rtree.SearchIntersect(query)
	out := make([]*SurveyPoint, 0, len(spatials))
	for _, sp := range spatials {
		out = append(out, sp.(*indexedPoint).point)
	}
	return out
}
