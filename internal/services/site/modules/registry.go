package modules

import (
	"github.com/lazyeholdings/site/internal/services/site/modules/public"
	"github.com/lazyeholdings/site/internal/services/site/modules/ventures"
)

// DefaultModules returns the modules every site deployment mounts.
func DefaultModules() []Module {
	return []Module{
		public.New(),
		ventures.New(),
	}
}
