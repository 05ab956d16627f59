// Package router maps URL paths to lazily created views and swaps them in
// and out of a single outlet element.
//
// Routes are looked up by exact, case-sensitive path. When no route
// matches, the route registered under NotFoundKey is used; when that is
// missing too, the outlet is simply cleared.
//
// # Render cycles
//
// Every navigation (Start, Navigate, or a popstate from the Window) runs a
// render cycle:
//
//  1. The navigation token is incremented and captured.
//  2. The path is resolved and the document title is set to
//     "<app title> - <route title>".
//  3. The current view is destroyed and the outlet cleared.
//  4. The route's Create runs on its own goroutine.
//  5. When Create returns, the captured token is compared with the live
//     one. A stale result is destroyed without being mounted. A current
//     result is mounted into the outlet.
//
// Steps 1-3 happen synchronously in the caller, so cycles are ordered by
// when they start: the most recently started navigation always wins, no
// matter which Create finishes first. There is no preemption: a superseded
// Create runs to completion and its view is discarded.
//
// # Usage
//
//	routes := router.Routes{
//	    "/":    {Title: "Home", Create: router.Sync(func() view.Mountable { return pages.NewHome() })},
//	    "/404": {Title: "Not found", Create: router.Sync(func() view.Mountable { return pages.NewNotFound() })},
//	}
//
//	r := router.New(outlet, window, routes, router.WithAppTitle("Demo"))
//	r.Start(ctx)
//	r.Navigate("/about")
package router
