/*
File   : lpm-go/object/builtins.go
Package: object
*/
package object

import "fmt"

// Builtins is the fixed registry the evaluator consults on an identifier
// lookup miss, grounded on the teacher's objects/builtins.go registry
// shape (a name-to-callback table checked before reporting "not found").
var Builtins = map[string]*Builtin{
	"longitud": {Fn: builtinLongitud},
}

// builtinLongitud implements `longitud(x)`: the length, in characters, of a
// String argument. Any other arity or argument type is a runtime Error, not
// a Go panic — builtins participate in the same value-based error channel
// as every other evaluator rule.
func builtinLongitud(args ...Object) Object {
	if len(args) != 1 {
		return &Error{Message: fmt.Sprintf(
			"número incorrecto de argumentos para longitud, se recibieron %d, se requieren 1",
			len(args))}
	}

	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len([]rune(arg.Value)))}
	default:
		return &Error{Message: fmt.Sprintf(
			"argumento para longitud sin soporte, se recibió %s", arg.Type())}
	}
}
