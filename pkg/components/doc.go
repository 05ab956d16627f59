// Package components provides small reusable views for outlet sites.
//
// Components are constructed from a config struct and validated up front:
//
//	cta, err := components.NewButton(components.ButtonConfig{
//		Label:   "Demo Drive",
//		Variant: components.VariantCTA,
//		Href:    "/demo",
//	})
//
// All components render once; their content depends only on the config.
// Pages include them through View.Tpl, which slots them so that they are
// destroyed with the page.
package components
