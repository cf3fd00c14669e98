package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Enabler is implemented by components that react to their GameObject
// being activated or deactivated.
type Enabler interface {
	OnEnable()
	OnDisable()
}

// Drawable is implemented by components that render in the 3D pass.
type Drawable interface {
	Draw()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Initializer is implemented by components that must validate their wiring
// before the first frame. Scene.Init collects the errors.
type Initializer interface {
	Init() error
}
