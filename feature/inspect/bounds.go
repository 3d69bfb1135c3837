package inspect

import "scene-inspector/core/view"

// boundsAttributes are the builtin mesh attributes bounds are computed
// for.
var boundsAttributes = map[view.Field]struct{}{
	view.FieldPosition:           {},
	view.FieldNormal:             {},
	view.FieldTangent:            {},
	view.FieldBitangent:          {},
	view.FieldTextureCoordinates: {},
	view.FieldColor:              {},
	view.FieldObjectID:           {},
}

// wantsBounds reports whether an attribute participates in bounds
// computation.
func wantsBounds(id view.Identity) bool {
	if id.IsCustom() {
		return false
	}
	_, ok := boundsAttributes[id.Field()]
	return ok
}

// attributeBounds returns the component-wise minimum and maximum over
// all elements of a data view, nil for empty views. Comparisons are
// plain IEEE 754; NaN values receive no special handling.
func attributeBounds(data view.View) (min, max []float64, err error) {
	if data.Count() == 0 {
		return nil, nil, nil
	}
	comps := data.Type().Components()
	min = make([]float64, comps)
	max = make([]float64, comps)
	for c := 0; c < comps; c++ {
		v, err := data.Component(0, c)
		if err != nil {
			return nil, nil, err
		}
		min[c], max[c] = v, v
	}
	for i := 1; i < data.Count(); i++ {
		for c := 0; c < comps; c++ {
			v, err := data.Component(i, c)
			if err != nil {
				return nil, nil, err
			}
			if v < min[c] {
				min[c] = v
			}
			if v > max[c] {
				max[c] = v
			}
		}
	}
	return min, max, nil
}
