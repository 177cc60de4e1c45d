package list

// Cloner is implemented by element types whose copies can fail. Insert and
// the copying constructors call Clone instead of a plain assignment.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Initializer is implemented by *T for element types that need set up when
// default-constructed by NewSized. Init runs on the value in place.
type Initializer interface {
	Init() error
}

// Destroyer is implemented by *T for element types that hold resources.
// Destroy runs exactly once, when the value leaves the list.
type Destroyer interface {
	Destroy()
}

func constructCopy[T any](dst *T, v T) error {
	if c, ok := any(v).(Cloner[T]); ok {
		cp, err := c.Clone()
		if err != nil {
			return err
		}
		*dst = cp
		return nil
	}
	*dst = v
	return nil
}

func constructDefault[T any](dst *T) error {
	var zero T
	*dst = zero
	if in, ok := any(dst).(Initializer); ok {
		return in.Init()
	}
	return nil
}

func destroy[T any](v *T) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*v = zero
}
