// Package format implements the Maru module file container: the
// on-disk binary grammar a compiler emits and a loader consumes.
//
// # Layout
//
//	magic:u8 = 0x4D
//	major:u8  minor:u8  patch:u8
//	module_name:u32
//	objects_len:u32, objects...
//	functions_len:u32, functions...
//	globals_len:u32, globals...
//	StringTable
//	BytecodeTable
//	LocationsMap
//
// Every field is little-endian and packed with no alignment padding.
// Decode returns a descriptive *errors.Error on truncated input, a bad
// magic byte, an unknown MaruTypeTag discriminant, or malformed entry
// lengths - never a panic.
//
// # Round-trip
//
//	data := original.Encode()
//	decoded, _ := format.Decode(data)
//	reencoded := decoded.Encode()
//	// bytes.Equal(data, reencoded) == true
//
// # Validation
//
// Decode only checks that each sub-table parses; it does not check
// cross-table invariants (every StringIndex in range, every
// non-negative BytecodeIndex in range, locations map length). Call
// Module.Validate for that - it aggregates every violation found with
// go.uber.org/multierr instead of stopping at the first one.
package format
