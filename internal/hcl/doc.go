// Package hcl is the HCL implementation of config.Loader.
//
// A settings file looks like:
//
//	catalog {
//	  root       = lookup(env, "CATALOG_ROOT", ".")
//	  file_names = ["catalog-info.yaml", "catalog-info.yml"]
//	  exclude    = ["vendor/**"]
//	}
//
//	log {
//	  level  = "info"
//	  format = "json"
//	}
//
// Expressions can read environment variables through the `env` object. A
// `.env` file next to the settings file is read first; variables already set
// in the process environment take precedence over it. A relative catalog root
// is resolved against the directory of the settings file.
package hcl
