// Package orientation maps interface orientations onto video stream
// rotations and tracks the portrait/landscape flag for the capture pipeline.
package orientation

// Orientation is the logical rotation of the on-screen UI. It is distinct
// from the raw sensor orientation of captured frames.
type Orientation int

const (
	// Unknown covers every non-cardinal orientation (face up, face down,
	// flat). It never changes the tracked rotation.
	Unknown Orientation = iota
	Portrait
	PortraitUpsideDown
	LandscapeLeft
	LandscapeRight
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case PortraitUpsideDown:
		return "portrait-upside-down"
	case LandscapeLeft:
		return "landscape-left"
	case LandscapeRight:
		return "landscape-right"
	default:
		return "unknown"
	}
}

// IsPortrait reports whether o keeps the UI in a portrait layout. Only the
// two landscape orientations clear the flag; Unknown counts as portrait-ish
// but callers should not feed Unknown here (the tracker filters it out).
func (o Orientation) IsPortrait() bool {
	return o != LandscapeLeft && o != LandscapeRight
}

// Rotation is the video stream rotation pushed into the capture connection.
type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case Rotate0:
		return "0"
	case Rotate90:
		return "90"
	case Rotate180:
		return "180"
	case Rotate270:
		return "270"
	default:
		return "invalid"
	}
}

// rotationTable is the fixed mapping from the four cardinal interface
// orientations to stream rotations.
var rotationTable = map[Orientation]Rotation{
	Portrait:           Rotate90,
	PortraitUpsideDown: Rotate270,
	LandscapeLeft:      Rotate180,
	LandscapeRight:     Rotate0,
}

// RotationFor returns the stream rotation for o. The second return is false
// for unmapped orientations (face up/down), in which case the caller keeps
// its previous rotation.
func RotationFor(o Orientation) (Rotation, bool) {
	r, ok := rotationTable[o]
	return r, ok
}
