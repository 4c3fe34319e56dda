package gpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/cinefx/vmath"
)

// ErrDisposed is returned when a resource is released more than once
var ErrDisposed = errors.New("resource already disposed")

// Kind classifies GPU-side resources
type Kind uint8

const (
	KindGeometry Kind = iota
	KindMaterial
	KindTexture
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindMaterial:
		return "material"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// Device accounts for every allocated resource and its release
// Owned by a single component's frame loop, not safe for concurrent use
type Device struct {
	nextID   uint64
	live     [kindCount]int
	created  int
	disposed int
}

// NewDevice creates an empty device
func NewDevice() *Device {
	return &Device{}
}

// Live returns the number of allocated, not yet disposed resources
func (d *Device) Live() int {
	n := 0
	for _, c := range d.live {
		n += c
	}
	return n
}

// LiveOf returns the live count for one kind
func (d *Device) LiveOf(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return d.live[k]
}

// Created returns the total number of allocations
func (d *Device) Created() int {
	return d.created
}

// Disposed returns the total number of successful releases
func (d *Device) Disposed() int {
	return d.disposed
}

func (d *Device) alloc(kind Kind, label string) resource {
	d.nextID++
	d.created++
	d.live[kind]++
	return resource{dev: d, id: d.nextID, kind: kind, label: label}
}

// resource is the accounting header embedded in every GPU object
type resource struct {
	dev      *Device
	id       uint64
	kind     Kind
	label    string
	disposed bool
}

// ID is unique per device
func (r *resource) ID() uint64 {
	return r.id
}

// Kind returns the resource class
func (r *resource) Kind() Kind {
	return r.kind
}

// Label is a debugging name
func (r *resource) Label() string {
	return r.label
}

// IsDisposed reports whether Dispose succeeded earlier
func (r *resource) IsDisposed() bool {
	return r.disposed
}

// Dispose releases the resource exactly once
func (r *resource) Dispose() error {
	if r.disposed {
		return fmt.Errorf("%s %q (#%d): %w", r.kind, r.label, r.id, ErrDisposed)
	}
	r.disposed = true
	r.dev.live[r.kind]--
	r.dev.disposed++
	return nil
}

// Resource is implemented by every device-owned object
type Resource interface {
	ID() uint64
	Kind() Kind
	IsDisposed() bool
	Dispose() error
}

// Release disposes each resource, logging double releases instead of failing teardown
// Nil entries are skipped
func Release(resources ...Resource) int {
	n := 0
	for _, r := range resources {
		if r == nil {
			continue
		}
		if err := r.Dispose(); err != nil {
			log.Printf("gpu: release: %v", err)
			continue
		}
		n++
	}
	return n
}

// Geometry is an indexed triangle mesh in object space
type Geometry struct {
	resource
	Vertices []vmath.Vec3F
	Faces    [][3]int
}

// NewGeometry uploads a mesh
func (d *Device) NewGeometry(label string, vertices []vmath.Vec3F, faces [][3]int) *Geometry {
	return &Geometry{
		resource: d.alloc(KindGeometry, label),
		Vertices: vertices,
		Faces:    faces,
	}
}

// Material carries per-object shading uniforms
type Material struct {
	resource
	Seed    float64 // Time offset fed to animated shading
	Opacity float64
	Color   [3]float64
}

// NewMaterial allocates a material with full opacity
func (d *Device) NewMaterial(label string, seed float64) *Material {
	return &Material{
		resource: d.alloc(KindMaterial, label),
		Seed:     seed,
		Opacity:  1,
	}
}
