// Package ckan implements the HTTP client for the data.gov CKAN action API.
//
// CKAN exposes catalog queries as named actions under a common API root,
// e.g. GET {base}/action/package_search?q=climate. The Client issues those
// calls and returns the raw JSON response body; it never interprets the
// CKAN result envelope, leaving payloads untouched for the caller.
//
// Failures are reported as *APIError values that capture everything a
// diagnostic message needs: the HTTP status code when a response arrived,
// any server-supplied error detail extracted from the CKAN error envelope,
// and the transport error when the request never completed. Callers decide
// whether such a failure is fatal; the client itself never retries.
//
// The Client also provides Fetch for downloading arbitrary resource URLs
// referenced by catalog entries. Those requests share the client's
// transport and error reporting but bypass the action API routing.
package ckan
