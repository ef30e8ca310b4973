// Package api serves the fixed company queries over HTTP. It translates a
// matched route into a store query, encodes the result as a JSON array and
// collapses every failure into one uniform error response.
package api
