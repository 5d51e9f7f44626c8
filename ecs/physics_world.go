package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/unstable/common"
)

const (
	collisionTypeBoundary cp.CollisionType = iota + 1
	collisionTypeAvatar
)

// PhysicsConfig tunes the Chipmunk space.
type PhysicsConfig struct {
	Iterations int
	// Gravity is in simulation units per second squared.
	GravityX float64
	GravityY float64
}

// PhysicsWorld owns the Chipmunk space. Its API is in simulation units; the
// space itself runs in pixels so Chipmunk's default slop suits the level
// scale.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool
	events        *EventQueue

	gravityX float64
	gravityY float64

	shapeToEntity map[*cp.Shape]Entity
	avatarBodies  map[*cp.Body]Entity
}

// NewPhysicsWorld creates an empty physics world.
func NewPhysicsWorld(cfg PhysicsConfig) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	if cfg.Iterations > 0 {
		space.Iterations = uint(cfg.Iterations)
	}

	pw := &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
		avatarBodies:  make(map[*cp.Body]Entity),
	}
	pw.SetGravity(cfg.GravityX, cfg.GravityY)
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetGravity sets the world gravity in simulation units.
func (pw *PhysicsWorld) SetGravity(x, y float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.gravityX, pw.gravityY = x, y
	pw.space.SetGravity(cp.Vector{X: x * common.UnitToPixel, Y: y * common.UnitToPixel})
}

// Gravity returns the world gravity in simulation units.
func (pw *PhysicsWorld) Gravity() (x, y float64) {
	if pw == nil {
		return 0, 0
	}
	return pw.gravityX, pw.gravityY
}

// Step advances the simulation. Contact events raised by collision callbacks
// during the step are queued before Step returns.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// AddAvatar creates the dynamic avatar body centred at (x, y) pixels.
func (pw *PhysicsWorld) AddAvatar(e Entity, x, y, width, height, mass, friction float64) (*cp.Body, *cp.Shape) {
	if pw == nil || pw.space == nil {
		return nil, nil
	}
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(0)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(friction)
	shape.SetCollisionType(collisionTypeAvatar)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	pw.avatarBodies[body] = e
	return body, shape
}

// RemoveAvatar removes an avatar body and its shape from the space.
func (pw *PhysicsWorld) RemoveAvatar(body *cp.Body, shape *cp.Shape) {
	if pw == nil || pw.space == nil {
		return
	}
	if shape != nil {
		delete(pw.shapeToEntity, shape)
		pw.space.RemoveShape(shape)
	}
	if body != nil {
		delete(pw.avatarBodies, body)
		pw.space.RemoveBody(body)
	}
}

// addBoundary adds a static body with one segment per edge and returns it
// with its shapes.
func (pw *PhysicsWorld) addBoundary(e Entity, edges [][2]cp.Vector, friction float64) (*cp.Body, []*cp.Shape) {
	body := cp.NewStaticBody()
	pw.space.AddBody(body)
	shapes := make([]*cp.Shape, 0, len(edges))
	for _, edge := range edges {
		seg := cp.NewSegment(body, edge[0], edge[1], 0)
		seg.SetFriction(friction)
		seg.SetCollisionType(collisionTypeBoundary)
		pw.space.AddShape(seg)
		pw.shapeToEntity[seg] = e
		shapes = append(shapes, seg)
	}
	return body, shapes
}

func (pw *PhysicsWorld) removeBoundary(body *cp.Body, shapes []*cp.Shape) {
	for _, s := range shapes {
		delete(pw.shapeToEntity, s)
		pw.space.RemoveShape(s)
	}
	if body != nil {
		pw.space.RemoveBody(body)
	}
}

// LinearSpeed returns |v| of body in simulation units per second.
func LinearSpeed(body *cp.Body) float64 {
	if body == nil {
		return 0
	}
	v := body.Velocity()
	return math.Hypot(v.X, v.Y) * common.PixelToUnit
}

// ResetBody moves body to (x, y) pixels at rest and upright.
func ResetBody(body *cp.Body, x, y float64) {
	if body == nil {
		return
	}
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetVelocity(0, 0)
	body.SetAngularVelocity(0)
	body.SetAngle(0)
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.space == nil || pw.handlersReady {
		return
	}

	handler := pw.space.NewCollisionHandler(collisionTypeAvatar, collisionTypeBoundary)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		a, b := arb.Shapes()
		avatar, ok := pw.avatarBodies[a.Body()]
		if !ok {
			a, b = b, a
			if avatar, ok = pw.avatarBodies[a.Body()]; !ok {
				return true
			}
		}
		other := pw.shapeToEntity[b]
		pw.events.Push(Event{Kind: EventContact, Data: ContactEvent{
			A:     avatar,
			B:     other,
			Speed: LinearSpeed(a.Body()),
		}})
		return true
	}
	pw.handlersReady = true
}
