// Package security holds the browser-facing hardening middleware of the web
// UI: response security headers and CSRF protection for form posts.
package security
