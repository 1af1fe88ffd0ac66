package crmtext_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/adamwoolhether/crmtext"
)

func ExampleAuthToken() {
	fmt.Println(crmtext.AuthToken("me", "secret", "mystore"))
	// Output: bWU6c2VjcmV0Ok1ZU1RPUkU=
}

func ExampleConnect() {
	conn, err := crmtext.Connect(
		crmtext.WithCredentials("me", "secret", "mystore"),
		crmtext.WithEndpoint("https://sandbox.example.com/smapi/rest"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(conn.Endpoint())
	fmt.Println(conn.Token())
	// Output:
	// https://sandbox.example.com/smapi/rest
	// bWU6c2VjcmV0Ok1ZU1RPUkU=
}

func ExampleConnect_missingCredentials() {
	_, err := crmtext.Connect(crmtext.WithCredentials("me", "", ""))
	fmt.Println(err)
	// Output: missing authentication credentials: need an auth token or username, password and keyword (missing password, keyword)
}

func ExampleConn_SendSMS() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		_, _ = io.WriteString(w, `<response><status>OK</status><to>`+r.PostForm.Get("phone_number")+`</to></response>`)
	}))
	defer ts.Close()

	conn, err := crmtext.Connect(
		crmtext.WithAuthToken("bWU6c2VjcmV0Ok1ZU1RPUkU="),
		crmtext.WithEndpoint(ts.URL),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	resp, err := conn.SendSMS(context.Background(), "15551234567", crmtext.WithMessage("Hello"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(resp.Child("status").Text(), resp.Child("to").Text())
	// Output: OK 15551234567
}
