/*
Package domain contains the core value types of the Logos pipeline.

It defines the Constants Registry shared by every stage, the Geometry record
produced by the detector, the intermediate Trace of a run and the final
Result handed back to callers. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Registry: The immutable set of named constants (Phi, E, Delta0 and the operator weights).
  - Geometry: The three bounded diagnostic measures (triangle, circle, linear).
  - Trace: Every intermediate Vector of a single run.
  - Result: The fixed-shape report (signature, input mass, geometry, aligned output, seal, status).
*/
package domain
