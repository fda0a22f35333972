// Package strtab implements the VM's runtime string interning table:
// each entry is stored once, addressed by format.StringIndex, and kept
// alive for the lifetime of the table. Entries carry a trailing NUL
// byte for C-compatible interop with native builtins.
package strtab
