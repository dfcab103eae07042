package lambda

// Functor represents types that can be mapped over. All containers in this
// package (Maybe, Either, IO, Task) implement it for same-type transforms.
// Type-changing transforms use the package-level generic functions
// (MapMaybe, MapEither, MapIO, MapTask), since Go methods cannot introduce
// type parameters.
type Functor[A any] interface {
	// Map applies a function to the wrapped value if present.
	Map(fn func(A) A) Functor[A]
}
