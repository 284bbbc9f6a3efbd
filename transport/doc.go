// Package transport is the HTTP layer of the Instantly.ai client.
//
// A Client holds the base URL, the bearer token and a pooled http.Client.
// Each verb method performs exactly one round trip and returns the raw JSON
// body; decoding into typed records happens in the api package.
//
// # Usage
//
//	c, err := transport.New(transport.Config{
//		APIKey:  transport.Secret(os.Getenv("INSTANTLY_API_KEY")),
//		Timeout: 30 * time.Second,
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
// # Error Handling
//
//   - HTTPError: the server answered outside 2xx; carries the status and raw body
//   - RequestError: the call never produced a response (DNS, refused, timeout)
//   - ErrClosed: the client was closed
//   - ErrInvalidConfig: New was given an unusable Config
//
// Nothing is retried.
package transport
