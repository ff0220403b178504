/*
Package errors implements the error handling used by the tag updater packages.

Reuse the root errors declared here whenever possible. A root error is created
once with Register(code, description) and every error returned at runtime
should wrap one of them, so that callers can categorize a failure with the Is
method, no matter how many times it was wrapped.

Configuration mistakes, like a version component that does not fit in a byte,
are reported by wrapping ErrOverflow or ErrInput. Nothing on the migration path
returns an error.

Stack traces are attached on the first wrap. Use fmt to get more context:
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
