package component

// Mesh references a mesh and material registered in render.Assets.
type Mesh struct {
	Mesh     string
	Material string
	// Layer orders drawing: lower layers draw first.
	Layer int
}

const (
	LayerSky = iota
	LayerFloor
	LayerObjects
)

var MeshComponent = NewComponent[Mesh]()

// NotShadowCaster excludes an entity from shadow casting.
type NotShadowCaster struct{}

var NotShadowCasterComponent = NewComponent[NotShadowCaster]()
