package app

import (
	"github.com/vk/taskflowgo/internal/registry"
	"github.com/vk/taskflowgo/modules/delay"
	"github.com/vk/taskflowgo/modules/env_vars"
	"github.com/vk/taskflowgo/modules/http_request"
	"github.com/vk/taskflowgo/modules/print"
)

// coreModules are the runner modules registered by default when the caller
// does not provide its own set.
func coreModules() []registry.Module {
	return []registry.Module{
		&print.Module{},
		&env_vars.Module{},
		http_request.NewModule(),
		&delay.Module{},
	}
}
