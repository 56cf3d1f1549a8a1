package request

// Builder is a fluent alternative to New. The zero value is not usable, start
// from NewBuilder.
type Builder struct {
	rawURL     string
	method     Method
	components []Component
	strictBody bool
}

// NewBuilder starts a GET request for rawURL.
func NewBuilder(rawURL string) *Builder {
	return &Builder{rawURL: rawURL, method: MethodGet}
}

// Method sets the request method.
func (b *Builder) Method(m Method) *Builder {
	b.method = m
	return b
}

// Add appends components in order.
func (b *Builder) Add(components ...Component) *Builder {
	b.components = append(b.components, components...)
	return b
}

func (b *Builder) Header(key, value string) *Builder { return b.Add(NewHeader(key, value)) }

func (b *Builder) Query(key, value string) *Builder { return b.Add(NewQuery(key, value)) }

func (b *Builder) Param(name, value string) *Builder { return b.Add(NewParam(name, value)) }

func (b *Builder) Body(fn func() Content) *Builder { return b.Add(NewBody(fn)) }

// RejectMultipleBodies makes Build fail with ErrMultipleBodiesFound when more
// than one Body was added.
func (b *Builder) RejectMultipleBodies() *Builder {
	b.strictBody = true
	return b
}

// Build constructs the Request, see New.
func (b *Builder) Build() (*Request, error) {
	if b.strictBody && countBodies(b.components) > 1 {
		return nil, ErrMultipleBodiesFound
	}
	return New(b.rawURL, b.method, b.components...)
}
