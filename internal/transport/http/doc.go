// Package http contains the chi HTTP handlers exposing the dashboard API.
// Handlers validate input, delegate to the services layer, and render JSON
// via chi/render; errors come back as RFC 7807 problem responses.
package http
