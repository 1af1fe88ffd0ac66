package client_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/adamwoolhether/crmtext/client"
)

func ExampleBuild() {
	c, err := client.Build(
		client.WithTimeout(10*time.Second),
		client.WithUserAgent("example/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
	fmt.Println("client built")
	// Output: client built
}

func ExampleRequest() {
	u, _ := url.Parse("https://example.com/smapi/rest")

	req, err := client.Request(context.Background(), u, http.MethodPost,
		client.WithForm(url.Values{"method": {"getcallback"}}),
		client.WithHeaders(map[string][]string{"Authorization": {"Basic dG9rZW4="}}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(req.Method, req.URL.Path, req.Header.Get("Content-Type"))
	// Output: POST /smapi/rest application/x-www-form-urlencoded
}

func ExampleClient_Do() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		fmt.Fprintf(w, "<response><method>%s</method></response>", r.PostForm.Get("method"))
	}))
	defer ts.Close()

	c, _ := client.Build()
	u, _ := url.Parse(ts.URL)
	req, _ := client.Request(context.Background(), u, http.MethodPost,
		client.WithForm(url.Values{"method": {"getcallback"}}),
	)

	err := c.Do(req, func(resp *http.Response) error {
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output: <response><method>getcallback</method></response>
}
