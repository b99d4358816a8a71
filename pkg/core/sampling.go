package core

import "math/rand"

// RandomInUnitSphere generates a uniformly distributed point inside the unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := Vec3{
			X: 2*random.Float32() - 1,
			Y: 2*random.Float32() - 1,
			Z: 2*random.Float32() - 1,
		}
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 && !p.NearZero() {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float32()-1, 2*random.Float32()-1, 0)
		// Accept if inside unit disk
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}
