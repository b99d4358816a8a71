package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// nearZeroEpsilon is the per-component threshold used by NearZero
const nearZeroEpsilon = 1e-8

// Vec2 represents a 2D vector, used for surface (u, v) parameterization
type Vec2 struct {
	X, Y float32
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Vec3 represents a 3D vector. It is used interchangeably as a point,
// a direction or an RGB color.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Uniform returns a vector with all three components set to v
func Uniform(v float32) Vec3 {
	return Vec3{v, v, v}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float32) Vec3 {
	return v.Multiply(1 / scalar)
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// NearZero reports whether the vector is close to zero in all dimensions
func (v Vec3) NearZero() bool {
	return math32.Abs(v.X) < nearZeroEpsilon &&
		math32.Abs(v.Y) < nearZeroEpsilon &&
		math32.Abs(v.Z) < nearZeroEpsilon
}

// Axis returns the component selected by index (0=X, 1=Y, 2=Z)
func (v Vec3) Axis(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("core: vec3 axis index out of range: %d", i))
}

// WithAxis returns a copy of the vector with the indexed component replaced
func (v Vec3) WithAxis(i int, value float32) Vec3 {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("core: vec3 axis index out of range: %d", i))
	}
	return v
}

// Min returns the component-wise minimum of two vectors
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of two vectors
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// GammaCorrect applies gamma correction to color values
func (v Vec3) GammaCorrect(gamma float32) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math32.Pow(v.X, invGamma),
		Y: math32.Pow(v.Y, invGamma),
		Z: math32.Pow(v.Z, invGamma),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() float32 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

// Equals reports whether two vectors are exactly equal
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ApproxEquals reports whether two vectors are equal within tolerance per component
func (v Vec3) ApproxEquals(other Vec3, tolerance float32) bool {
	return math32.Abs(v.X-other.X) <= tolerance &&
		math32.Abs(v.Y-other.Y) <= tolerance &&
		math32.Abs(v.Z-other.Z) <= tolerance
}

// String implements fmt.Stringer
func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Reflect reflects v about the surface normal n
func Reflect(v, n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit direction uv through a surface with unit normal n
// using Snell's law. It returns false when total internal reflection makes
// refraction impossible.
func Refract(uv, n Vec3, iorFrom, iorInto float32) (Vec3, bool) {
	ratio := iorFrom / iorInto
	cosTheta := min(uv.Negate().Dot(n), 1.0)
	sinTheta := math32.Sqrt(max(0, 1.0-cosTheta*cosTheta))
	if ratio*sinTheta > 1.0 {
		return Vec3{}, false
	}

	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(ratio)
	rOutParallel := n.Multiply(-math32.Sqrt(math32.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(uv, n Vec3, iorFrom, iorInto float32) float32 {
	cosine := min(uv.Negate().Dot(n), 1.0)
	r0 := (iorFrom - iorInto) / (iorFrom + iorInto)
	r0 = r0 * r0
	return r0 + (1-r0)*math32.Pow(1-cosine, 5)
}
