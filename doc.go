// Package popcat is a typed Go client for the Popcat API
// (https://api.popcat.xyz).
//
// Every endpoint is available two ways: as a typed method on Client
// (Client.Drake, Client.Weather, ...) or through the generic, catalog-driven
// Client.Call. Both run the same pipeline: validate the caller's parameters,
// build a request descriptor, perform exactly one HTTP round trip, and
// interpret the response into either a URL string or a decoded JSON object.
//
// The client performs no retries, caching, or backoff; a failed call always
// surfaces one of four error kinds (ValidationError, TransportError,
// RemoteError, DecodeError) and never a partial result. Callers wanting
// resilience layer it on top.
//
//	client := popcat.New()
//	meme, err := client.Drake(ctx, "Writing HTTP calls by hand", "A typed client")
//	weather, err := client.Weather(ctx, "London")
package popcat
