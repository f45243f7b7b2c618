// Package providerspec compiles a declarative provider spec (YAML or JSON)
// into a next-router provider config document (*.conf DSL).
//
// The compiler is a pure, single-pass transform: ParseSpec decodes the input
// document into a Spec value, Compile validates it section by section and
// emits the full DSL text. Neither function touches the filesystem or the
// network; all failures are reported as *SchemaError the first time a rule is
// violated.
//
// File organization mirrors the statement domains of the emitted DSL:
//
//   - expr.go: expression/literal formatting and quoting.
//   - decode.go: yaml.Node decoding with declaration-order preservation for
//     header/query/json maps.
//   - preset.go: preset expansion (copy-on-write, never mutates its input).
//   - auth.go, metrics.go, models.go, balance.go, request.go, response.go:
//     per-section directive builders.
//   - route.go: match-block compilation including the upstream block.
//   - render.go: block rendering and document assembly.
package providerspec
