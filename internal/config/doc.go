// Package config loads outlet site configuration.
//
// Configuration lives in outlet.yaml (TOML and JSON also work) and can be
// overridden with OUTLET_ environment variables, where nested keys are
// joined with underscores: OUTLET_CONTENT_SOURCE=s3.
//
// # Configuration File Structure
//
//	title: Demo Motors
//	listen: ":8080"
//	log:
//	  level: info
//	  format: text
//	content:
//	  source: dir
//	  dir: content
//	  watch: true
//	  cache_ttl: 5m
//	  s3:
//	    bucket: site-content
//	    prefix: pages/
//	    region: eu-west-1
//	metrics:
//	  enabled: true
//	  path: /metrics
//	tracing:
//	  enabled: false
//	  exporter: stdout
//	routes:
//	  - path: /
//	    title: Home
//	    page: home
//	  - path: /about
//	    title: About
//	    content: about.html
//	  - path: /404
//	    title: Not found
//	    page: notfound
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
