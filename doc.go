/*
Package logos turns arbitrary text into a fixed-shape numeric report through a
deterministic six-stage arithmetic pipeline.

The stages run in strict order: Ingestion maps the text to a scalar Vector,
Stabilization applies a dual-path nonlinear transform, the Geometric Detector
derives three bounded measures, the Persistence Operator nudges the Vector with
them, Linear Realignment projects it onto a lattice of multiples of 7, and
Certification folds it into the integrity seal.

# Concept

Every stage is a pure function of its input and the immutable constants in
domain.Constants. The same text always yields the same Result, bit for bit.
Not-a-number and infinite intermediates are never reported as errors: they are
carried through and formatted, and the status literal stays the same. Callers
that want to know about them inspect Trace(...).Err().

# Usage

The package-level Process is enough for most callers:

	res := logos.Process("CRISTIAN_POPESCU_GENOMIC_REWRITE_2026")
	fmt.Println(res.AlignedOutput, res.IntegritySeal)

Hosts that serve many requests build an Engine, which adds logging, lifecycle
hooks and an optional result cache without changing any output:

	eng := logos.New(
		logos.WithLogger(logger),
		logos.WithStore(memory.NewStore()),
	)
	res := eng.Process(ctx, workflow)

Non-text values go through Stringify first (see ProcessValue).
*/
package logos
