// Package diagnostic provides the structured report used for every failure
// in the converter.
//
// A Diagnostic carries a kind tag, the context of the attempted action, the
// cause, and a suggested remedy. Severity decides what happens to it:
//   - Error: returned to the caller, aborts the run
//   - Warning: logged, a deterministic fallback is applied
//   - Info: logged, records that a default was derived
package diagnostic
