/*
Package result implements a type for the outcome of a computation which
may fail.

Results are inspected either directly,

	v, err := r.Get()

or by matching on the two cases:

	var v View
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
		…
	case m.Err(&err):
		…
	}

*/
package result

// Result is either Ok, carrying a value, or Err, carrying an error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsOk() bool
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps the value of a successful computation.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps the error of a failed computation. err should be non-nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// Map applies f to the value of an Ok result and passes errors through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// --- Matching --------------------------------------------------------------

// Matcher is used to switch on the two cases of a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
