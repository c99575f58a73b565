/*
Package ports defines the boundary interfaces of the pipe-graph engine.

These interfaces decouple the core tick loop from its collaborators: the
node implementations that compute signals, and the observers that consume
committed outputs.

# Key Interfaces

  - NodeLogic: the capability every pipeline node implements, one
    synchronous Process call per tick over the resolved input signals.
  - OutputTap: a driven port mirroring committed outputs to an external
    observer (memory, Redis, ...) between ticks.
*/
package ports
