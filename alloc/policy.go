package alloc

// CopyAssignPropagator is implemented by resources that want a container's
// copy-assignment to adopt the source container's resource.
type CopyAssignPropagator interface {
	PropagateOnCopyAssignment() bool
}

// CopyConstructionSelector is implemented by resources that choose which
// resource a copy-constructed container uses.
type CopyConstructionSelector interface {
	SelectOnCopyConstruction() Resource
}

// PropagateOnCopyAssignment reports whether a container assigned from a
// container using a should switch to a. Defaults to false.
func (a Allocator[T]) PropagateOnCopyAssignment() bool {
	if p, ok := a.res.(CopyAssignPropagator); ok {
		return p.PropagateOnCopyAssignment()
	}
	return false
}

// SelectOnCopyConstruction returns the allocator a copy of a container
// using a should be built with. Defaults to a itself.
func (a Allocator[T]) SelectOnCopyConstruction() Allocator[T] {
	if s, ok := a.res.(CopyConstructionSelector); ok {
		return Allocator[T]{res: s.SelectOnCopyConstruction()}
	}
	return a
}

// Policy holds the copy flags attached by WithPolicy.
type Policy struct {
	// PropagateOnCopyAssignment makes copy-assigned containers adopt the
	// source's resource.
	PropagateOnCopyAssignment bool
	// SelectOnCopyConstruction picks the resource for copy-constructed
	// containers from the source's. Nil keeps the source's resource.
	SelectOnCopyConstruction func(Resource) Resource
}

// policyResource forwards memory requests and answers policy queries.
type policyResource struct {
	Resource
	policy Policy
}

// WithPolicy returns a resource that serves memory from r and reports p's
// copy flags. The result is a distinct resource: allocators over it do not
// compare equal to allocators over r.
func WithPolicy(r Resource, p Policy) Resource {
	return &policyResource{Resource: r, policy: p}
}

func (r *policyResource) PropagateOnCopyAssignment() bool {
	return r.policy.PropagateOnCopyAssignment
}

func (r *policyResource) SelectOnCopyConstruction() Resource {
	if r.policy.SelectOnCopyConstruction == nil {
		return r
	}
	return r.policy.SelectOnCopyConstruction(r)
}
