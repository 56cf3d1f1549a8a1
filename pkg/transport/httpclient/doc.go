/*
Package httpclient builds the *http.Client the executor sends requests with.
The client carries the decorators of package transport: a default User-Agent,
request and response hooks, telemetry and OpenTelemetry instrumentation.
*/
package httpclient
