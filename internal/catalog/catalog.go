package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/mo"

	"github.com/teemow/gcalmcp/internal/schema"
)

// Payload is the ordered list of text blocks an operation returns on success.
type Payload = []string

// Handler performs one operation on an already validated argument object.
type Handler func(ctx context.Context, args schema.Object) mo.Result[Payload]

// Descriptor describes one invocable operation.
type Descriptor struct {
	Name        string
	Description string
	Schema      schema.Schema
	Handler     Handler

	// ReadOnly marks operations that never modify the calendar.
	ReadOnly bool
	// Destructive marks operations that remove data.
	Destructive bool
}

// Errors returned by Register.
var (
	ErrEmptyName     = errors.New("operation name cannot be empty")
	ErrNilHandler    = errors.New("operation handler cannot be nil")
	ErrDuplicateName = errors.New("operation already registered")
)

// Catalog maps operation names to their descriptors. Registration happens
// once at startup; afterwards the catalog is only read.
type Catalog struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]Descriptor
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{byName: make(map[string]Descriptor)}
}

// Register adds an operation. Names must be unique.
func (c *Catalog) Register(d Descriptor) error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.Handler == nil {
		return fmt.Errorf("%s: %w", d.Name, ErrNilHandler)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byName[d.Name]; exists {
		return fmt.Errorf("%s: %w", d.Name, ErrDuplicateName)
	}
	c.byName[d.Name] = d
	c.order = append(c.order, d.Name)
	return nil
}

// MustRegister is like Register but panics on error.
func (c *Catalog) MustRegister(d Descriptor) {
	if err := c.Register(d); err != nil {
		panic(fmt.Sprintf("failed to register operation: %v", err))
	}
}

// Resolve looks up an operation by name.
func (c *Catalog) Resolve(name string) (Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.byName[name]
	return d, ok
}

// List returns all descriptors in registration order.
func (c *Catalog) List() []Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Descriptor, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Len returns the number of registered operations.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Tools returns the discovery listing in registration order.
func (c *Catalog) Tools() []mcp.Tool {
	descriptors := c.List()
	tools := make([]mcp.Tool, 0, len(descriptors))
	for _, d := range descriptors {
		tools = append(tools, d.Tool())
	}
	return tools
}

// Tool renders the descriptor as an MCP tool definition.
func (d Descriptor) Tool() mcp.Tool {
	return mcp.NewTool(d.Name,
		mcp.WithDescription(d.Description),
		withSchema(d.Schema),
		mcp.WithReadOnlyHintAnnotation(d.ReadOnly),
		mcp.WithDestructiveHintAnnotation(d.Destructive),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func withSchema(s schema.Schema) mcp.ToolOption {
	return func(t *mcp.Tool) {
		t.InputSchema.Properties = s.Properties()
		t.InputSchema.Required = s.RequiredNames()
	}
}

// Bind adapts a typed operation to a Handler. The validated argument object
// is decoded into T before fn is called.
func Bind[T any](fn func(ctx context.Context, req T) mo.Result[Payload]) Handler {
	return func(ctx context.Context, args schema.Object) mo.Result[Payload] {
		var req T
		if err := schema.Decode(args, &req); err != nil {
			return mo.Err[Payload](err)
		}
		return fn(ctx, req)
	}
}
