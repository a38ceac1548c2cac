// Package core defines the shared data of the formatter.
//
// This package contains the pure-data dialect description (DialectConfig and
// its quote, placeholder and delimiter types). It carries no behavior beyond
// copying and text decoding, so dialect tables can be declared as literals
// or loaded from YAML without pulling in the lexer.
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
