package numeric

// Optional holds a value that may or may not have been set explicitly.
type Optional[T any] struct {
	value T
	set   bool
}

// Set stores value and marks the optional as set.
func (o *Optional[T]) Set(value T) {
	o.value = value
	o.set = true
}

// Unset drops the stored value.
func (o *Optional[T]) Unset() {
	var zero T
	o.value = zero
	o.set = false
}

// IsSet reports whether a value was stored.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the stored value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the stored value, or fallback when unset.
func (o Optional[T]) Or(fallback T) T {
	if !o.set {
		return fallback
	}
	return o.value
}
