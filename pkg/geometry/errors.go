package geometry

import "errors"

var (
	ErrEmptyObjectList    = errors.New("geometry: cannot build a BVH from an empty object list")
	ErrMissingBoundingBox = errors.New("geometry: object has no bounding box")
)
