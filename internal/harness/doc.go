// Package harness runs YAML-defined conformance cases against the symbol
// evaluator.
//
// A case file lists known symbol values (and known-invalid configurations)
// in data form, so the physics fixtures live next to the tests instead of
// being scattered through assertion code. Case files are parsed strictly:
// unknown fields are rejected to catch typos.
package harness
