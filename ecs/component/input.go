package component

// Input stores per-frame input state for an entity.
type Input struct {
	// ResetPressed is true only on the frame the reset key goes down.
	ResetPressed bool

	OrbitDX float64
	OrbitDY float64
	PanDX   float64
	PanDY   float64
	Zoom    float64
}

var InputComponent = NewComponent[Input]()
