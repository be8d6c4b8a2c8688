/*
Package ports defines the interfaces between the Logos engine and its adapters.

These interfaces decouple the pure pipeline from network surfaces and result
caches, allowing the engine to be served over HTTP or MCP and backed by various
storage backends.

# Key Interfaces

  - Processor: Runs a workflow through the pipeline (implemented by logos.Engine).
  - ResultStore: Caches finished Results by key (e.g., Memory or Redis).
*/
package ports
