//nolint:errcheck
package puretypecheck_test

import (
	"encoding/json"
	"fmt"

	ptc "github.com/Pure-Company/puretypecheck"
)

// Notification backends for the identity examples.

type Notifier interface{ Notify(msg string) error }

type EmailNotifier struct{ Addr string }

func (EmailNotifier) Notify(string) error { return nil }

type SMSNotifier struct{ Number string }

func (SMSNotifier) Notify(string) error { return nil }

// ============================================================================
// Example 1: DECLARE ONCE - JSON Payload Validation
// ============================================================================

// Example_declareOnce validates decoded JSON against a single declared shape.
func Example_declareOnce() {
	user := ptc.Shape(ptc.Fields{
		"name":  ptc.IsString,
		"age":   ptc.IsNumber,
		"email": ptc.Maybe(ptc.IsString),
	})

	payloads := []string{
		`{"name":"Ada","age":36,"email":"ada@example.com"}`,
		`{"name":"Grace","age":85}`,
		`{"name":"Linus","age":"54"}`,
		`["not","an","object"]`,
	}

	for _, raw := range payloads {
		var v any
		json.Unmarshal([]byte(raw), &v)
		fmt.Println(user(v))
	}

	// Output:
	// true
	// true
	// false
	// false
}

// ============================================================================
// Example 2: OPTIONAL FIELDS - Maybe
// ============================================================================

// Example_maybeFields shows optional and nullable fields with Maybe.
func Example_maybeFields() {
	config := ptc.Shape(ptc.Fields{
		"host": ptc.IsString,
		"port": ptc.Maybe(ptc.IsNumber),
	})

	fmt.Println(config(map[string]any{"host": "localhost", "port": 8080.0}))
	fmt.Println(config(map[string]any{"host": "localhost"}))
	fmt.Println(config(map[string]any{"host": "localhost", "port": nil}))
	fmt.Println(config(map[string]any{"port": 8080.0}))

	// Output:
	// true
	// true
	// true
	// false
}

// ============================================================================
// Example 3: GUARD AT THE BOUNDARY - Typed Failures
// ============================================================================

// Example_guardAtTheBoundary turns failed checks into errors worth returning.
func Example_guardAtTheBoundary() {
	fmt.Println("=== Valid Payload ===")

	v, err := ptc.Guard(ptc.IsString, "order-1042")
	fmt.Println("Value:", v)
	fmt.Println("Error:", err)

	fmt.Println("\n=== Default Message ===")

	_, err = ptc.Guard(ptc.IsString, 1042)
	fmt.Println("Error:", err)

	fmt.Println("\n=== Custom Message ===")

	_, err = ptc.Guard(ptc.IsNumber, "fast", "retries must be a number")
	fmt.Println("Error:", err)

	// Output:
	// === Valid Payload ===
	// Value: order-1042
	// Error: <nil>
	//
	// === Default Message ===
	// Error: value does not satisfy isString
	//
	// === Custom Message ===
	// Error: retries must be a number
}

// ============================================================================
// Example 4: MONOID COMPOSITION - Predicates
// ============================================================================

// Example_monoidComposition demonstrates the Empty and Compose operations.
func Example_monoidComposition() {
	fmt.Println("=== Monoid Identity (Empty) ===")

	anything := ptc.IsString.Empty()
	fmt.Println(anything(42), anything(nil), anything("x"))

	fmt.Println("\n=== Monoid Composition ===")

	nonEmpty := ptc.Typed(func(s string) bool { return s != "" })
	id := ptc.IsString.Compose(nonEmpty)
	fmt.Println(id("ORD-1"), id(""), id(7))

	fmt.Println("\n=== Associativity: (a.b).c = a.(b.c) ===")

	a, b, c := ptc.IsObject, ptc.IsArray, ptc.Array(ptc.IsNumber)
	left := a.Compose(b).Compose(c)
	right := a.Compose(b.Compose(c))
	rows := []any{1.0, 2.0}
	fmt.Println(left(rows) == right(rows))

	// Output:
	// === Monoid Identity (Empty) ===
	// true true true
	//
	// === Monoid Composition ===
	// true false false
	//
	// === Associativity: (a.b).c = a.(b.c) ===
	// true
}

// ============================================================================
// Example 5: IDENTITY - Instance vs ConstructorOf
// ============================================================================

// Example_identityChecks contrasts is-a checks with exact type checks.
func Example_identityChecks() {
	isNotifier := ptc.Instance[Notifier]()
	isEmail := ptc.ConstructorOf[EmailNotifier]()

	email := EmailNotifier{Addr: "ops@example.com"}
	sms := SMSNotifier{Number: "+15550100"}

	fmt.Println("instance of Notifier, email:", isNotifier(email))
	fmt.Println("instance of Notifier, sms:", isNotifier(sms))
	fmt.Println("constructor EmailNotifier, email:", isEmail(email))
	fmt.Println("constructor EmailNotifier, sms:", isEmail(sms))

	// Output:
	// instance of Notifier, email: true
	// instance of Notifier, sms: true
	// constructor EmailNotifier, email: true
	// constructor EmailNotifier, sms: false
}

// ============================================================================
// Example 6: ARRAYS AND ENUMS - Element Checks
// ============================================================================

// Example_arraysAndEnums combines Array with a OneOf literal set.
func Example_arraysAndEnums() {
	level := ptc.OneOf("debug", "info", "warn", "error")
	levels := ptc.Array(level)

	fmt.Println(level("info"))
	fmt.Println(level("verbose"))
	fmt.Println(levels([]any{"debug", "error"}))
	fmt.Println(levels([]any{"debug", "loud"}))
	fmt.Println(levels([]any{}))

	// Output:
	// true
	// false
	// true
	// false
	// true
}
