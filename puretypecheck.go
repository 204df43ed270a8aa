// Package puretypecheck provides composable runtime type predicates for Go's
// dynamic values.
//
// This package classifies values of unknown shape, such as the `any` you get
// back from encoding/json or across a plugin boundary, using small pure
// predicates that compose into larger ones without losing their meaning.
//
// # Key Benefits
//
// - Pure functions: Every predicate is a func(any) bool with no state
// - Rich composition: Maybe, Shape, Array, And/Or/Not, monoid operations
// - Total by contract: Predicates never panic, malformed input is just false
// - One failure point: Only Guard can fail, and it returns a typed error
//
// # Quick Start
//
// Compose predicates for the data you expect:
//
//	user := puretypecheck.Shape(puretypecheck.Fields{
//	    "name":  puretypecheck.IsString,
//	    "age":   puretypecheck.IsNumber,
//	    "email": puretypecheck.Maybe(puretypecheck.IsString),
//	})
//
// Apply them directly as boolean tests:
//
//	var payload any
//	_ = json.Unmarshal(raw, &payload)
//	if user(payload) {
//	    // payload has the declared fields
//	}
//
// Or enforce them with Guard at the boundary:
//
//	v, err := puretypecheck.Guard(user, payload, "bad user payload")
//
// # Core Principles
//
// Puretypecheck follows these principles:
//
// 1. Predicates over schemas - plain functions compose, schemas don't
// 2. Monoid operations - Empty() and Compose() on every predicate
// 3. Open-world checks - Shape ignores fields its descriptor does not declare
// 4. Totality - no predicate or constructor ever raises; only Guard fails
// 5. Standard reflection - runtime kinds come from the reflect package
package puretypecheck

import (
	"fmt"
	"math/big"
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"
)

// ============================================================================
// The Predicate Type
// ============================================================================

// Predicate is a functional binding for a runtime type test. It reports
// whether an arbitrary value belongs to some set of values, and it composes
// with every combinator in this package while keeping that meaning.
//
// Predicates are pure: same value in, same boolean out, no side effects.
// They are safe to share and to call concurrently.
//
// A nil Predicate means "no constraint" and is always satisfied, wherever
// one is accepted: in Maybe, Array, a Fields entry, or Guard.
//
// Example:
//
//	point := Shape(Fields{
//	    "x": IsNumber,
//	    "y": IsNumber,
//	})
//
//	points := Array(point).Maybe() // nullish, or an array of points
type Predicate func(v any) bool

// Empty returns a predicate that accepts every value (Monoid identity).
func (p Predicate) Empty() Predicate {
	return func(any) bool { return true }
}

// Compose returns a predicate requiring this predicate and the next to both
// accept (Monoid operation).
func (p Predicate) Compose(next Predicate) Predicate {
	return p.And(next)
}

// And returns the conjunction of two predicates.
func (p Predicate) And(next Predicate) Predicate {
	return func(v any) bool {
		return satisfied(p, v) && satisfied(next, v)
	}
}

// Or returns the disjunction of two predicates.
func (p Predicate) Or(next Predicate) Predicate {
	return func(v any) bool {
		return satisfied(p, v) || satisfied(next, v)
	}
}

// Not returns the negation of the predicate.
func (p Predicate) Not() Predicate {
	return func(v any) bool {
		return !satisfied(p, v)
	}
}

// Maybe widens the predicate to also accept nullish values. Method form of
// the package-level Maybe.
func (p Predicate) Maybe() Predicate {
	return Maybe(p)
}

// ============================================================================
// Primitive Predicates
// ============================================================================

// IsString reports whether the value's runtime kind is string.
var IsString Predicate = isString

// IsNumber reports whether the value's runtime kind is any integer, unsigned
// integer, or float kind. NaN is a number like any other, no special case.
var IsNumber Predicate = isNumber

// IsBigInt reports whether the value is an arbitrary-precision integer, that
// is a non-nil *big.Int (or a big.Int value).
var IsBigInt Predicate = isBigInt

// IsBoolean reports whether the value's runtime kind is bool.
var IsBoolean Predicate = isBoolean

// IsBool is an alias for IsBoolean.
var IsBool = IsBoolean

// IsObject reports whether the value is a non-nullish composite: a map,
// struct, pointer, slice, array, function, or channel. Note that arrays and
// functions are objects too; use stricter predicates when that matters.
var IsObject Predicate = isObject

// IsFunction reports whether the value is callable (a non-nil func).
var IsFunction Predicate = isFunction

// IsSymbol reports whether the value is a *Symbol created by NewSymbol.
var IsSymbol Predicate = isSymbol

// IsArray reports whether the value is a slice or array. Strings are not
// arrays, indexable as they may be.
var IsArray Predicate = isArray

// IsNullish reports whether the value is the absence sentinel: nil itself, or
// a typed nil pointer, map, slice, func, or channel. Everything else is not
// nullish, including 0 and the empty string.
var IsNullish Predicate = isNullish

func isString(v any) bool {
	return kindOf(v) == reflect.String
}

func isNumber(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isBigInt(v any) bool {
	switch b := v.(type) {
	case *big.Int:
		return b != nil
	case big.Int:
		return true
	}
	return false
}

func isBoolean(v any) bool {
	return kindOf(v) == reflect.Bool
}

func isObject(v any) bool {
	if isNullish(v) {
		return false
	}
	switch kindOf(v) {
	case reflect.Map, reflect.Struct, reflect.Pointer, reflect.Slice,
		reflect.Array, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func isFunction(v any) bool {
	return !isNullish(v) && kindOf(v) == reflect.Func
}

func isSymbol(v any) bool {
	s, ok := v.(*Symbol)
	return ok && s != nil
}

func isArray(v any) bool {
	if isNullish(v) {
		return false
	}
	k := kindOf(v)
	return k == reflect.Slice || k == reflect.Array
}

func isNullish(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// ============================================================================
// Symbols
// ============================================================================

// Symbol is an opaque identity token, the value kind recognized by IsSymbol.
// Each symbol is unique: two symbols match only when they are the same
// *Symbol, regardless of description. The uniqueness survives deep equality,
// so OneOf(sym) admits sym and nothing else.
type Symbol struct {
	id          uint64
	description string
}

var symbolSeq atomic.Uint64

// NewSymbol creates a fresh, unique symbol with an optional description.
func NewSymbol(description string) *Symbol {
	return &Symbol{id: symbolSeq.Add(1), description: description}
}

// Description returns the symbol's description, "" for a nil symbol.
func (s *Symbol) Description() string {
	if s == nil {
		return ""
	}
	return s.description
}

// String implements fmt.Stringer.
func (s *Symbol) String() string {
	return fmt.Sprintf("Symbol(%s)", s.Description())
}

// ============================================================================
// Modifier Combinators
// ============================================================================

// Maybe widens a predicate to also accept nullish values. It is the mechanism
// for optional and nullable fields in shape descriptors: an absent field reads
// as nil, which Maybe accepts.
//
// Example:
//
//	person := Shape(Fields{
//	    "name":     IsString,
//	    "nickname": Maybe(IsString), // may be absent or null
//	})
func Maybe(p Predicate) Predicate {
	return func(v any) bool {
		return isNullish(v) || satisfied(p, v)
	}
}

// Instance returns a predicate that passes when the value is a T by the
// host's is-a rule: with an interface type parameter any implementation
// passes, with a concrete type parameter only that exact type does. Nullish
// values never pass.
//
// Example:
//
//	readable := Instance[io.Reader]()
//	readable(strings.NewReader("hi")) // true: *strings.Reader is an io.Reader
func Instance[T any]() Predicate {
	return func(v any) bool {
		if isNullish(v) {
			return false
		}
		_, ok := v.(T)
		return ok
	}
}

// ConstructorOf returns a predicate that passes only when the value's own
// dynamic type is exactly T. Unlike Instance it never accepts through
// interface satisfaction: a different type implementing the same interface
// fails. A value with no dynamic type (nullish) is a failed match, not an
// error.
func ConstructorOf[T any]() Predicate {
	want := reflect.TypeOf((*T)(nil)).Elem()
	return func(v any) bool {
		if isNullish(v) {
			return false
		}
		return reflect.TypeOf(v) == want
	}
}

// InstanceOfType is the runtime-handle form of Instance, for callers holding
// a reflect.Type instead of a compile-time type. It follows the same is-a
// rule: interface types match by implementation, concrete types by identity.
// A nil type yields a predicate that always fails.
func InstanceOfType(t reflect.Type) Predicate {
	return func(v any) bool {
		if t == nil || isNullish(v) {
			return false
		}
		rt := reflect.TypeOf(v)
		if t.Kind() == reflect.Interface {
			return rt.Implements(t)
		}
		return rt == t
	}
}

// ConstructorOfType is the runtime-handle form of ConstructorOf. A nil type
// yields a predicate that always fails.
func ConstructorOfType(t reflect.Type) Predicate {
	return func(v any) bool {
		if t == nil || isNullish(v) {
			return false
		}
		return reflect.TypeOf(v) == t
	}
}

// Typed lifts an ordinary typed predicate into the dynamic layer: the value
// must be a T and, when p is non-nil, p must accept it. With a nil p it
// behaves like Instance[T].
//
// Example:
//
//	nonEmpty := Typed(func(s string) bool { return s != "" })
func Typed[T any](p func(T) bool) Predicate {
	return func(v any) bool {
		if isNullish(v) {
			return false
		}
		t, ok := v.(T)
		if !ok {
			return false
		}
		return p == nil || p(t)
	}
}

// Fields is a shape descriptor: a mapping from field name to the predicate
// that field's value must satisfy.
type Fields map[string]Predicate

// Shape returns a predicate checking an object's declared fields against a
// descriptor. The check is open-world: fields not named in the descriptor are
// ignored entirely. A declared field that is absent reads as nil, so wrap its
// predicate in Maybe to make it optional. Non-objects fail immediately.
//
// Values may be string-keyed maps (map[string]any from a JSON decode is the
// fast path), structs, or pointers to either; struct fields are matched by
// their Go field names.
//
// The result is order-independent: every declared field must pass, and the
// check may stop at the first failure.
//
// Example:
//
//	user := Shape(Fields{
//	    "id":    IsNumber,
//	    "name":  IsString,
//	    "email": Maybe(IsString),
//	})
//
//	user(map[string]any{"id": 7.0, "name": "Ada"})              // true
//	user(map[string]any{"id": 7.0, "name": "Ada", "x": false})  // true: open world
//	user(map[string]any{"name": "Ada"})                         // false: id absent
func Shape(fields Fields) Predicate {
	declared := make(Fields, len(fields))
	for name, p := range fields {
		declared[name] = p
	}
	return func(v any) bool {
		if !isObject(v) {
			return false
		}
		for name, p := range declared {
			if !satisfied(p, propertyOf(v, name)) {
				return false
			}
		}
		return true
	}
}

// Array returns a predicate that passes when the value is an array whose
// every element satisfies elem. Empty arrays pass vacuously. Non-arrays fail
// immediately. A nil elem constrains nothing, so any array passes.
func Array(elem Predicate) Predicate {
	return func(v any) bool {
		if !isArray(v) {
			return false
		}
		if xs, ok := v.([]any); ok {
			for _, x := range xs {
				if !satisfied(elem, x) {
					return false
				}
			}
			return true
		}
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			if !satisfied(elem, rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
}

// OneOf returns a predicate that passes when the value is deeply equal to one
// of the given literals. Composite literals compare structurally; nil is a
// valid literal. Literals keep their dynamic types: at a JSON boundary
// numbers arrive as float64, so write OneOf(1.0, 2.0) rather than OneOf(1, 2).
func OneOf(values ...any) Predicate {
	members := append([]any(nil), values...)
	return func(v any) bool {
		for _, m := range members {
			if reflect.DeepEqual(v, m) {
				return true
			}
		}
		return false
	}
}

// ============================================================================
// Guard
// ============================================================================

// GuardError is the failure Guard raises when a value does not satisfy its
// predicate. It is the only error kind in this package.
type GuardError struct {
	name string
	msg  string
}

// Error implements the error interface.
func (e *GuardError) Error() string {
	return e.msg
}

// Name returns the recovered name of the failing predicate, "" when none
// could be recovered.
func (e *GuardError) Name() string {
	return e.name
}

// Guard evaluates the predicate against the value. On success it returns the
// value it was given, unchanged. On failure it returns a *GuardError whose
// message names the predicate; a non-empty message argument replaces the
// default verbatim.
//
// Guard is the sole point in this package that can fail. The error is meant
// to propagate to the caller's own error-handling boundary.
//
// Example:
//
//	v, err := Guard(IsString, payload["name"], "name must be a string")
func Guard(p Predicate, v any, message ...string) (any, error) {
	if satisfied(p, v) {
		return v, nil
	}
	name := predicateName(p)
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}
	if msg == "" {
		if name == "" {
			msg = "value does not satisfy predicate"
		} else {
			msg = fmt.Sprintf("value does not satisfy %s", name)
		}
	}
	return nil, &GuardError{name: name, msg: msg}
}

// MustGuard is like Guard but panics with the *GuardError on failure. Use it
// for programmer-error invariants at construction or registration time, where
// a bad value means the program itself is wrong.
func MustGuard(p Predicate, v any, message ...string) any {
	out, err := Guard(p, v, message...)
	if err != nil {
		panic(err)
	}
	return out
}

// ============================================================================
// Helpers
// ============================================================================

// satisfied applies a predicate under the package-wide nil rule: a nil
// predicate constrains nothing.
func satisfied(p Predicate, v any) bool {
	return p == nil || p(v)
}

// kindOf returns the value's runtime kind, Invalid for untyped nil.
func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

// propertyOf reads the value's property at name the way a shape check sees
// it: map entries by key, struct fields by name (through pointers), anything
// else reads as absent (nil). Missing and unexported fields are absent too.
func propertyOf(v any, name string) any {
	if m, ok := v.(map[string]any); ok {
		return m[name]
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	case reflect.Struct:
		f := rv.FieldByName(name)
		if !f.IsValid() || !f.CanInterface() {
			return nil
		}
		return f.Interface()
	}
	return nil
}

// predicateName recovers the name of the function backing a predicate, with
// package path trimmed: the named primitives come back as "isString",
// "isNumber", and so on. Closures come back with a compiler-generated suffix,
// and unresolvable functions as the empty string.
func predicateName(p Predicate) string {
	if p == nil {
		return ""
	}
	fn := runtime.FuncForPC(reflect.ValueOf(p).Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
