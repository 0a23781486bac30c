package usecase

// Required holds the outcome of a dependency whose failure aborts the request.
type Required[T any] struct {
	Value T
	Err   error
}

func Require[T any](v T, err error) Required[T] {
	return Required[T]{Value: v, Err: err}
}

func (r Required[T]) Get() (T, error) {
	return r.Value, r.Err
}

// Optional holds the outcome of a best-effort enrichment. A failed Optional is Degraded;
// its cause stays in Err for logging only and never reaches the caller.
type Optional[T any] struct {
	Value    T
	Degraded bool
	Err      error
}

func Enrich[T any](v T, err error) Optional[T] {
	return Optional[T]{Value: v, Degraded: err != nil, Err: err}
}

// Or replaces the value of a degraded result with fallback.
func (o Optional[T]) Or(fallback T) Optional[T] {
	if o.Degraded {
		o.Value = fallback
	}
	return o
}

// Degrade marks o as failed with err and sets its value to fallback.
func (o Optional[T]) Degrade(fallback T, err error) Optional[T] {
	return Optional[T]{Value: fallback, Degraded: true, Err: err}
}

func (o Optional[T]) OK() bool { return !o.Degraded }
