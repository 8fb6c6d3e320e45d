package raw

// Filtering and wrapping enumerations use the numeric values from the
// glTF 2.0 specification (which are the WebGL/OpenGL constants), so a
// record round-trips to JSON without translation.

// MagFilter is a texture magnification filter mode.
type MagFilter int

const (
	MagNearest MagFilter = 9728
	MagLinear  MagFilter = 9729
)

// Valid reports whether f is a value the glTF schema allows.
func (f MagFilter) Valid() bool {
	return f == MagNearest || f == MagLinear
}

func (f MagFilter) String() string {
	switch f {
	case MagNearest:
		return "NEAREST"
	case MagLinear:
		return "LINEAR"
	default:
		return "INVALID"
	}
}

// MinFilter is a texture minification filter mode.
type MinFilter int

const (
	MinNearest              MinFilter = 9728
	MinLinear               MinFilter = 9729
	MinNearestMipmapNearest MinFilter = 9984
	MinLinearMipmapNearest  MinFilter = 9985
	MinNearestMipmapLinear  MinFilter = 9986
	MinLinearMipmapLinear   MinFilter = 9987
)

// Valid reports whether f is a value the glTF schema allows.
func (f MinFilter) Valid() bool {
	switch f {
	case MinNearest, MinLinear,
		MinNearestMipmapNearest, MinLinearMipmapNearest,
		MinNearestMipmapLinear, MinLinearMipmapLinear:
		return true
	default:
		return false
	}
}

func (f MinFilter) String() string {
	switch f {
	case MinNearest:
		return "NEAREST"
	case MinLinear:
		return "LINEAR"
	case MinNearestMipmapNearest:
		return "NEAREST_MIPMAP_NEAREST"
	case MinLinearMipmapNearest:
		return "LINEAR_MIPMAP_NEAREST"
	case MinNearestMipmapLinear:
		return "NEAREST_MIPMAP_LINEAR"
	case MinLinearMipmapLinear:
		return "LINEAR_MIPMAP_LINEAR"
	default:
		return "INVALID"
	}
}

// WrappingMode is a texture coordinate wrapping mode.
type WrappingMode int

const (
	WrapClampToEdge    WrappingMode = 33071
	WrapMirroredRepeat WrappingMode = 33648
	WrapRepeat         WrappingMode = 10497
)

// Valid reports whether m is a value the glTF schema allows.
func (m WrappingMode) Valid() bool {
	return m == WrapClampToEdge || m == WrapMirroredRepeat || m == WrapRepeat
}

func (m WrappingMode) String() string {
	switch m {
	case WrapClampToEdge:
		return "CLAMP_TO_EDGE"
	case WrapMirroredRepeat:
		return "MIRRORED_REPEAT"
	case WrapRepeat:
		return "REPEAT"
	default:
		return "INVALID"
	}
}
