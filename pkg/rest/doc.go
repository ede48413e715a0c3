// Package rest is a small resource runtime in the JAX-RS mould.
//
// Applications declare resource classes: a Go type, a path template, resource
// methods bound to HTTP verbs and sub-resource locators returning nested
// resources.
//
//	messages := rest.MustClass[*Messages]("/messages",
//		rest.GET("/{id}", (*Messages).Get, rest.PathParam("id")).Produces(rest.TextPlain),
//		rest.Locator("/{id}/body", (*Messages).Body, bodyClass, rest.PathParam("id")),
//	)
//
// A Runtime built from an Application routes requests to the most specific
// matching resource method, injects its parameters and turns the result into
// a Response. Handler serves a Runtime over net/http and is where errors meet
// the registered exception mappers.
package rest
