package main

import _ "embed"

// embeddedConfig holds the YAML configuration embedded at build time.
// Packagers may overwrite embed_config.yaml before compiling to ship
// site-specific defaults.
//
//go:embed embed_config.yaml
var embeddedConfig []byte
