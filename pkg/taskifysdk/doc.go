// Package taskifysdk holds the wire types of the Taskify HTTP API together
// with a small Go client for it.
//
// The server decodes and validates requests with these types, so a request
// that passes Validate() client side will not be rejected for shape.
//
//	c := taskifysdk.NewClient("http://localhost:8080")
//	auth, err := c.Login(ctx, taskifysdk.LoginRequest{Email: "ada@example.com", Password: "..."})
//	if err != nil { ... }
//	s := c.WithToken(auth.AccessToken)
//	ws, err := s.CreateWorkspace(ctx, taskifysdk.CreateWorkspaceRequest{Name: "Acme", URL: "acme"})
package taskifysdk
