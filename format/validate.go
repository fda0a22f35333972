package format

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"go.uber.org/multierr"
)

// Validate checks the cross-table invariants a decoded module must
// satisfy: every StringIndex in range for the string table,
// every non-negative BytecodeIndex in range for the bytecode table, and
// the locations map either empty or exactly as long as the bytecode
// table. Unlike Decode, which stops at the first parse failure,
// Validate collects every violation it finds and returns them combined
// with go.uber.org/multierr so a caller can report all of them at once.
func (m *Module) Validate() error {
	var errs error
	strLen := len(m.Strings.Entries)
	bcLen := len(m.Bytecode.Entries)

	checkString := func(idx StringIndex, path ...string) {
		if int(idx) >= strLen {
			errs = multierr.Append(errs, errors.OutOfRange(errors.PhaseValidate, path, "string_index", int(idx), strLen))
		}
	}
	checkBytecode := func(idx BytecodeIndex, path ...string) {
		if idx >= 0 && int(idx) >= bcLen {
			errs = multierr.Append(errs, errors.OutOfRange(errors.PhaseValidate, path, "bytecode_index", int(idx), bcLen))
		}
	}
	checkTag := func(t TypeTag, path ...string) {
		if t.IsObject() {
			checkString(t.Object, path...)
		}
	}

	checkString(m.ModuleName, "module_name")

	for i, o := range m.Objects {
		checkString(o.Name, "objects", indexStr(i), "name")
		checkString(o.TypeName, "objects", indexStr(i), "type_name")
		for j, v := range o.Variants {
			checkString(v.Name, "objects", indexStr(i), "variants", indexStr(j), "name")
			checkString(v.TypeName, "objects", indexStr(i), "variants", indexStr(j), "type_name")
			for k, mem := range v.Members {
				checkString(mem.Name, "objects", indexStr(i), "variants", indexStr(j), "members", indexStr(k), "name")
				checkTag(mem.Type, "objects", indexStr(i), "variants", indexStr(j), "members", indexStr(k), "type")
			}
		}
	}

	for i, f := range m.Functions {
		checkString(f.Name, "functions", indexStr(i), "name")
		checkString(f.TypeName, "functions", indexStr(i), "type_name")
		for j, p := range f.Parameters {
			checkTag(p, "functions", indexStr(i), "parameters", indexStr(j))
		}
		checkTag(f.ReturnType, "functions", indexStr(i), "return_type")
		checkBytecode(f.BytecodeIdx, "functions", indexStr(i), "bytecode_index")
	}

	for i, g := range m.Globals {
		checkString(g.Name, "globals", indexStr(i), "name")
		checkTag(g.Type, "globals", indexStr(i), "type")
		checkBytecode(g.InitIndex, "globals", indexStr(i), "init_index")
	}

	for i, loc := range m.Locations.Entries {
		checkString(loc.File, "locations", indexStr(i), "file")
	}

	if n := len(m.Locations.Entries); n != 0 && n != bcLen {
		errs = multierr.Append(errs, errors.LengthMismatch(errors.PhaseValidate, []string{"locations"},
			"locations map length must be 0 or equal to the bytecode table length", n, bcLen))
	}

	return errs
}

func indexStr(i int) string {
	const digits = "0123456789"
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = digits[i%10]
		i /= 10
	}
	return string(buf[pos:])
}
