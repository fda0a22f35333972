// Package linker is a placeholder for resolving cross-module function
// and global references before a module file is handed to the VM.
// That resolution pass lives in a separate toolchain component not
// built here; this package exists so the module layout matches that
// wider toolchain's shape, with nothing exported yet.
package linker
