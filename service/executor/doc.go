// Package executor bridges runs with the registered action services. It
// resolves the service method, checks the policy carried by the context,
// converts loosely typed input into the method input type, invokes the
// method and records the outcome on the run.
package executor
