// Package http implements the HTTP transport layer of the class-reports
// server.
//
// It exposes route wiring, request handlers and middleware. Request bodies
// (JSON or form-encoded) are decoded into validators.Input and handed to the
// service layer, which validates them. Every response uses the envelope
// {"data":{"success":..,"message":..,"errors":[..]}}.
package http
