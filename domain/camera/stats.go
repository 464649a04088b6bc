package camera

import "time"

// Stats summarises session behaviour for instrumentation.
type Stats struct {
	Frames         uint64
	FramesWithQuad uint64
	Captures       uint64
	LastDetection  time.Time
	Sequence       uint64
}
