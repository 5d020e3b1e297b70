package scene

// Annotations maps region category names to stable integer codes. An
// Annotations value is built once at process start and passed by
// reference into each measure; it is never mutated afterwards.
type Annotations struct {
	codes   map[string]int
	noLabel int
}

// NewAnnotations returns an Annotations over a copy of codes. noLabel
// is the code reported for categories absent from the table.
func NewAnnotations(codes map[string]int, noLabel int) Annotations {
	copied := make(map[string]int, len(codes))
	for name, code := range codes {
		copied[name] = code
	}
	return Annotations{codes: copied, noLabel: noLabel}
}

// Code returns the code for a region category, or the no-label code
// when the category is not annotated.
func (a Annotations) Code(category string) int {
	if code, ok := a.codes[category]; ok {
		return code
	}
	return a.noLabel
}

// NoLabel returns the code used for unannotated categories.
func (a Annotations) NoLabel() int {
	return a.noLabel
}

// MatterportAnnotations returns the region annotation table of the
// Matterport3D dataset. See data_organization.md in the Matterport
// repository for the category definitions.
func MatterportAnnotations() Annotations {
	return NewAnnotations(map[string]int{
		"bathroom":                   0,
		"bedroom":                    1,
		"closet":                     2,
		"dining room":                3,
		"entryway/foyer/lobby":       4,
		"familyroom/lounge":          5,
		"garage":                     6,
		"hallway":                    7,
		"library":                    8,
		"laundryroom/mudroom":        9,
		"kitchen":                    10,
		"living room":                11,
		"meetingroom/conferenceroom": 12,
		"lounge":                     13,
		"office":                     14,
		"porch/terrace/deck":         15,
		"rec/game":                   16,
		"stairs":                     17,
		"toilet":                     18,
		"utilityroom/toolroom":       19,
		"tv":                         20,
		"workout/gym/exercise":       21,
		"outdoor":                    22,
		"balcony":                    23,
		"other room":                 24,
		"bar":                        25,
		"classroom":                  26,
		"dining booth":               27,
		"spa/sauna":                  28,
		"junk":                       29,
		"no label":                   30,
	}, 30)
}
