package bundle

import (
	"fmt"

	"scene-inspector/core/view"
)

// SceneData holds one scene's field table. The table's index domain is
// the scene's object mapping bound; every entry's mapping view holds
// object ids, and the data view the per-object field values.
type SceneData struct {
	Fields *view.Table
}

// Objects returns the scene's object mapping bound.
func (s *SceneData) Objects() int {
	return s.Fields.Rows()
}

// AnimationData holds one animation's track table plus its playback
// range. Track entries use a broadcast mapping carrying the target
// object id; their data views hold the keyframe values. Time entries
// carry the keyframe times of the track they precede.
type AnimationData struct {
	Tracks *view.Table

	// Duration is the playback start and end in seconds.
	Duration [2]float64
}

// SkinData describes one skin: per-joint object ids and one inverse
// bind matrix per joint.
type SkinData struct {
	Joints              view.View
	InverseBindMatrices view.View
}

// Table returns the skin's fields as an attribute table over the joint
// index domain. The inverse bind matrix count must be zero or match the
// joint count.
func (s *SkinData) Table() (*view.Table, error) {
	joints := s.Joints.Count()
	matrices := s.InverseBindMatrices.Count()
	if matrices != 0 && matrices != joints {
		return nil, fmt.Errorf("skin has %d joints but %d inverse bind matrices", joints, matrices)
	}

	t := view.NewTable(joints)
	err := t.Add(view.Entry{
		Identity: view.Builtin(view.FieldJoints),
		Mapping:  view.IdentityMapping(joints),
		Data:     s.Joints,
		Ordered:  true,
	})
	if err != nil {
		return nil, err
	}

	if matrices > 0 {
		err = t.Add(view.Entry{
			Identity: view.Builtin(view.FieldInverseBindMatrices),
			Mapping:  view.IdentityMapping(matrices),
			Data:     s.InverseBindMatrices,
			Ordered:  true,
		})
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}
