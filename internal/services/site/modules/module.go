// Package modules defines the site module registry.
package modules

import module "github.com/lazyeholdings/site/internal/services/site/module"

// Dependencies aliases the shared module dependencies type.
type Dependencies = module.Dependencies

// Module aliases the module interface contract.
type Module = module.Module
