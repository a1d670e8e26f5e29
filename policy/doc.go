// Package policy decides which actions may run. A Policy travels in the
// context; a nil policy allows everything.
package policy
