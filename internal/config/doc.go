// Package config loads fieldgen configuration files.
//
// A file lists the struct types to precompute descriptor tables for,
// together with the profile, capacity and output settings used while
// generating them. Files are YAML or TOML, chosen by extension.
//
// Example:
//
//	version: "1"
//	package: example.com/app/model
//	profile: modern
//	capacity: 32
//	types:
//	  - name: Order
//	    modes: [shallow, exhaustive]
//	  - name: Customer
//	    modes: shallow
package config
