// Package http implements the REST transport of the bin server.
//
// The routes are the subset of the JSONBin v3 API the fitsync client uses:
// create, read latest, update and delete a bin, authenticated with the
// X-Master-Key header. Tracing, access logging, recovery and response
// compression are handled here before requests reach the service layer.
package http
