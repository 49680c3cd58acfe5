// Package control
// Author: momentics <momentics@gmail.com>
//
// Process-global runtime flags for the diagnostics core: the log
// verbosity threshold and the callstack-debug switch, plus the viper
// loader that fills them from environment and config file, and reload
// hooks so the surrounding agent can re-apply configuration at runtime.
//
// The flags are read by the diag package but owned here.
package control
