package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BVHNode is a node of a binary bounding volume hierarchy. Both children are
// always set: a leaf holding a single object points both children at it.
type BVHNode struct {
	Left  core.Intersectable
	Right core.Intersectable
	bbox  core.AABB
}

// NewBVH builds a hierarchy over the world's objects. The split axis of each
// node is drawn from random, so seed it for reproducible trees.
func NewBVH(world *World, random *rand.Rand) (*BVHNode, error) {
	return NewBVHFromObjects(world.Objects, random)
}

// NewBVHFromObjects builds a hierarchy over objects. The slice is copied and
// never reordered. Every object must have a bounding box.
func NewBVHFromObjects(objects []core.Intersectable, random *rand.Rand) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyObjectList
	}

	// Copy so sorting never reorders the caller's list
	objectsCopy := make([]core.Intersectable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, random)
}

func buildBVH(objects []core.Intersectable, random *rand.Rand) (*BVHNode, error) {
	var left, right core.Intersectable

	switch len(objects) {
	case 0:
		return nil, ErrEmptyObjectList
	case 1:
		left, right = objects[0], objects[0]
	case 2:
		left, right = objects[0], objects[1]
	default:
		axis := random.Intn(3)
		if err := sortByBoxMin(objects, axis); err != nil {
			return nil, err
		}

		mid := len(objects) / 2
		leftNode, err := buildBVH(objects[:mid], random)
		if err != nil {
			return nil, err
		}
		rightNode, err := buildBVH(objects[mid:], random)
		if err != nil {
			return nil, err
		}
		left, right = leftNode, rightNode
	}

	leftBox, ok := left.BoundingBox()
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrMissingBoundingBox, left)
	}
	rightBox, ok := right.BoundingBox()
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrMissingBoundingBox, right)
	}

	return &BVHNode{
		Left:  left,
		Right: right,
		bbox:  core.Merge(leftBox, rightBox),
	}, nil
}

// sortByBoxMin orders objects by the low corner of their boxes along axis
func sortByBoxMin(objects []core.Intersectable, axis int) error {
	type keyed struct {
		key    float32
		object core.Intersectable
	}

	entries := make([]keyed, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox()
		if !ok {
			return fmt.Errorf("%w: %T", ErrMissingBoundingBox, object)
		}
		entries[i] = keyed{key: box.Min.Axis(axis), object: object}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})
	for i, entry := range entries {
		objects[i] = entry.object
	}
	return nil
}

// Hit returns the nearest hit in the subtree, or nothing if the ray misses
// the node's box
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float32, random *rand.Rand) (*core.HitRecord, bool) {
	if !n.bbox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, random)
	if !hitLeft {
		return n.Right.Hit(ray, tMin, tMax, random)
	}

	// Only something strictly closer than the left hit can win
	if rightHit, hitRight := n.Right.Hit(ray, tMin, leftHit.T, random); hitRight {
		return rightHit, true
	}
	return leftHit, true
}

// BoundingBox returns the merged box of both children
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.bbox, true
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	AvgDepth     float64 // mean depth of leaf nodes
	TotalObjects int
}

// Stats walks the hierarchy and collects structural statistics
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	leftNode, leftIsNode := n.Left.(*BVHNode)
	rightNode, rightIsNode := n.Right.(*BVHNode)

	if !leftIsNode && !rightIsNode {
		stats.LeafNodes++
		stats.AvgDepth += float64(depth)
		if n.Left == n.Right {
			stats.TotalObjects++
		} else {
			stats.TotalObjects += 2
		}
		return
	}

	if leftIsNode {
		leftNode.collectStats(depth+1, stats)
	}
	if rightIsNode {
		rightNode.collectStats(depth+1, stats)
	}
}
