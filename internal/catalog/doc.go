// Package catalog defines the operations this server exposes against a
// CKAN catalog and routes their invocations to the ckan client.
//
// The package is the single source of truth for the operation surface:
// a static table maps each operation name (search-packages, show-package,
// list-groups, list-tags) to its CKAN action and its argument schema.
// The MCP server derives its tool declarations from that table, the CLI
// renders it, and the dispatcher validates against it.
//
// The Dispatcher keeps two failure channels strictly apart. Requests
// rejected before any network activity (unknown operation, arguments
// that do not match the schema, malformed resource URIs) come back as
// Go errors carrying one of the sentinel values, and the protocol layer
// turns them into request-level faults. Failures after a request was
// issued are folded into the returned result with the error flag set,
// so conversations with an AI client survive a flaky upstream. Resource
// reads are the exception: their failures propagate as errors, because
// the resource channel has no in-band error representation.
package catalog
