// Package uikit is a small presentational component library for server rendered Go web
// applications.
//
// The core component is the Button in package button. It resolves a set of enumerated props to a
// view that renders through templ templates, so it can be written as HTML or embedded into templ
// pages. Icons and loaders are supplied by providers (packages icon and loader), colours and tokens by package theme.
//
// Package demo contains an example application wiring buttons to a counter store (package store)
// and a remote product list (package query).
package uikit
