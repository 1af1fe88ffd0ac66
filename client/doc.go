// Package client provides the HTTP plumbing used by the crmtext API
// client, built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//	)
//
// # Making Requests
//
// Construct a [Request] and execute it with [Client.Do]. The response is
// handed to the callback regardless of its status code; the body is
// drained and closed afterwards:
//
//	form := url.Values{"method": {"getcallback"}}
//	req, err := client.Request(ctx, u, http.MethodPost, client.WithForm(form))
//	err = c.Do(req, func(resp *http.Response) error {
//		_, err := io.Copy(os.Stdout, resp.Body)
//		return err
//	})
//
// A failed round trip is reported as a [*TransportError].
package client
