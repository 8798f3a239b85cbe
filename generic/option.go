package generic

type Option[T any] struct {
	Value    T
	hasValue bool
}

// Expect returns the contained value, or panics with the supplied error message if there is no value.
func (o Option[T]) Expect(msg string) T {
	if o.hasValue {
		return o.Value
	} else {
		panic(msg)
	}
}

// IsNone returns true if this Option[T] does not have a value.
func (o *Option[T]) IsNone() bool {
	return !o.hasValue
}

// IsSome returns true if this Option[T] has a value.
func (o *Option[T]) IsSome() bool {
	return o.hasValue
}

// Or returns the option itself if it has a value, otherwise it returns other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.hasValue {
		return o
	} else {
		return other
	}
}

// Unwrap returns the contained value, or panics if there is no value.
func (o Option[T]) Unwrap() T {
	return o.Expect("tried to Unwrap() a None")
}

// UnwrapOr returns the contained value, or other if there is no value.
func (o Option[T]) UnwrapOr(other T) T {
	if o.hasValue {
		return o.Value
	} else {
		return other
	}
}

// UnwrapOrDefault returns the contained value, or the "zero value" for T if there is no value.
func (o Option[T]) UnwrapOrDefault() T {
	var other T
	return o.UnwrapOr(other)
}

// Some constructs an Option[T] that has a value.
func Some[T any](value T) Option[T] {
	return Option[T]{Value: value, hasValue: true}
}

// None constructs an Option[T] that does not have a value.
func None[T any]() Option[T] {
	return Option[T]{hasValue: false}
}

// Get returns the contained value and true, or the "zero value" for T and false if there is no value.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.hasValue
}

// Ptr returns a pointer to a copy of the contained value, or nil if there is no value.
func (o Option[T]) Ptr() *T {
	if o.hasValue {
		v := o.Value
		return &v
	} else {
		return nil
	}
}

// FromPtr constructs an Option[T] from a pointer, None() if the pointer is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	} else {
		return Some(*p)
	}
}
