/*
Package puretypecheck provides composable runtime type predicates for Go's dynamic values.

# Overview

Puretypecheck eliminates hand-rolled type-switch sprawl at dynamic boundaries
by replacing ad hoc checks with predicate values. Each predicate is a pure
func(any) bool that classifies one aspect of a value, and every predicate
composes with the others into checks for arbitrarily nested data.

# Key Benefits

  - Pure functions: Every check is a func(any) bool with no state
  - Rich composition: Shape, Array, Maybe, And/Or/Not, monoid operations
  - Total by contract: Predicates never panic, malformed input is just false
  - One failure point: Only Guard can fail, and it returns a typed error
  - Open-world shapes: Extra fields never break a check

# Quick Example

Instead of hand-rolling type switches:

	m, ok := payload.(map[string]any)
	if !ok {
	    return errBadPayload
	}
	name, ok := m["name"].(string)
	if !ok {
	    return errBadPayload
	}
	// ... and again for every field

Declare the shape once and apply it:

	user := ptc.Shape(ptc.Fields{
	    "name":  ptc.IsString,
	    "age":   ptc.IsNumber,
	    "email": ptc.Maybe(ptc.IsString),
	})

	// Boolean test - no type switch in sight!
	if user(payload) { ... }

	// Or enforce at the boundary
	v, err := ptc.Guard(user, payload, "bad user payload")

# Core Concepts

Monoids: Every predicate provides Empty() and Compose() operations:

	anything := ptc.IsString.Empty()       // accepts every value
	id := ptc.IsString.Compose(nonEmpty)   // both must hold

Modifiers: Widen or narrow predicates without rewriting them:

	ptc.Maybe(ptc.IsString)        // string, or absent/null
	ptc.Array(ptc.IsNumber)        // every element is a number
	ptc.IsString.Or(ptc.IsNumber)  // either kind

Totality: Predicates classify, Guard enforces. A predicate applied to any
value whatsoever returns a boolean; only Guard turns false into an error:

	v, err := ptc.Guard(ptc.IsNumber, raw)       // error names the predicate
	v := ptc.MustGuard(ptc.IsNumber, raw)        // panic for invariants

# Available Predicates

Primitives:
  - IsString, IsNumber, IsBigInt, IsBoolean (alias IsBool)
  - IsObject, IsFunction, IsSymbol, IsArray, IsNullish

Combinators:
  - Maybe: Accept nullish as well
  - Shape: Open-world field checks via a Fields descriptor
  - Array: Uniform element checks
  - OneOf: Membership in a set of literals
  - Typed: Lift a func(T) bool into the dynamic layer

Type Identity:
  - Instance, InstanceOfType: is-a checks (interfaces match by implementation)
  - ConstructorOf, ConstructorOfType: exact dynamic-type checks

Enforcement:
  - Guard: Returns the value or a *GuardError
  - MustGuard: Panics with the *GuardError

Symbols:
  - Symbol, NewSymbol: Unique identity tokens recognized by IsSymbol

# Boundary Philosophy

Traditional approach scatters assertions through the code:

	// Every consumer re-checks its slice of the payload
	if s, ok := v.(string); ok { ... }
	if n, ok := v.(float64); ok { ... }

Puretypecheck approach - declare once, check at the edge:

	var validEvent = ptc.Shape(ptc.Fields{
	    "kind": ptc.OneOf("created", "updated", "deleted"),
	    "id":   ptc.IsNumber,
	    "meta": ptc.Maybe(ptc.IsObject),
	})

	// Everything past this line trusts the payload's shape
	payload, err := ptc.Guard(validEvent, raw)

Checks live next to the data's entry point, and consumers stay free of
casts. A failure carries the name of the predicate that rejected the value.

# Package Import

	import ptc "github.com/Pure-Company/puretypecheck"

	// Or full import
	import "github.com/Pure-Company/puretypecheck"
*/
package puretypecheck
