package rgn

// Report is the result of a validation run.
type Report struct {
	Invalid []*SurveyPoint
}

// Names returns the names of the invalid VGs in report order.
func (r Report) Names() []string {
	names := make([]string, len(r.Invalid))
	for i, p := range r.Invalid {
		names[i] = p.Name
	}
	return names
}

// OK reports whether every VG passed validation.
func (r Report) OK() bool { return len(r.Invalid) == 0 }

// TriggerValidation runs Validate and wraps the result for the UI.
func (n *Network) TriggerValidation() Report {
	r := Report{Invalid: n.Validate()}
	n.logger.Info("validation run", "vgs", n.Len(), "invalid", len(r.Invalid))
	return r
}

// QueryNeighborsWithin returns the visible VGs at most radiusKm from the named
// VG, excluding the VG itself, nearest first.
func (n *Network) QueryNeighborsWithin(name string, radiusKm float64) ([]*SurveyPoint, error) {
	p, ok := n.byName[name]
	if !ok {
		return nil, &UnknownPointError{Name: name}
	}
	all := n.PointsWithinRadius(p.Point, radiusKm, true)
	out := make([]*SurveyPoint, 0, len(all))
	for _, q := range all {
		if q != p {
			out = append(out, q)
		}
	}
	return out, nil
}
