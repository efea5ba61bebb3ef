// Package api handles incoming HTTP requests, request validation, and
// response formatting for the Timension newspaper. It adapts HTTP to the
// content, catalog, auth and profile services.
//
// Content endpoints never fail because of the language model: the content
// service substitutes fallback values, so those handlers only return 4xx
// responses for malformed requests.
package api
