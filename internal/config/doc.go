// Package config assembles the server and client configuration.
//
// Sources are read in this order, each overriding the non-zero fields of
// the ones before it:
//
//	defaults -> environment -> command-line flags -> JSON file
//
// The JSON file is located through CONFIG / -config, whichever was given
// last. Environment parsing takes an explicit variable map and flag parsing
// an explicit argument list, so neither touches process-wide state in tests.
//
// Servers start through [GetStructuredConfig]; the command-line client uses
// [GetClientConfig]. Both validate the merged result.
package config
