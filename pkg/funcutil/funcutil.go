// SPDX-License-Identifier: MPL-2.0

// Package funcutil provides helpers for composing and adapting unary
// functions and predicates.
package funcutil

import "sync"

// Identity returns its argument unchanged.
func Identity[T any](v T) T { return v }

// Const returns a function that ignores its argument and always returns v.
func Const[T, I any](v T) func(I) T {
	return func(I) T { return v }
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// Compose2 returns g after f: Compose2(f, g)(x) == g(f(x)).
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Pipe2 applies f then g to v. It is Compose2 with the argument up front.
func Pipe2[A, B, C any](v A, f func(A) B, g func(B) C) C {
	return g(f(v))
}

// Tap calls fn with v for its side effect and returns v unchanged.
func Tap[T any](v T, fn func(T)) T {
	fn(v)
	return v
}

// Memoize1 caches the results of a unary function by argument. The returned
// function is safe for concurrent use; fn runs at most once per distinct
// argument observed.
func Memoize1[I comparable, O any](fn func(I) O) func(I) O {
	var (
		mu    sync.Mutex
		cache = make(map[I]O)
	)
	return func(in I) O {
		mu.Lock()
		defer mu.Unlock()
		if out, hit := cache[in]; hit {
			return out
		}
		out := fn(in)
		cache[in] = out
		return out
	}
}

// Once1 wraps a unary function so only the first call invokes it; later
// calls return the first result regardless of their argument. It is the
// unary counterpart of sync.OnceValue.
func Once1[I, O any](fn func(I) O) func(I) O {
	var (
		once sync.Once
		out  O
	)
	return func(in I) O {
		once.Do(func() { out = fn(in) })
		return out
	}
}
