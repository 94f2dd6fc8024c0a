package app

import (
	"github.com/vk/pbxpatch/internal/registry"
	"github.com/vk/pbxpatch/ops/addfiles"
	"github.com/vk/pbxpatch/ops/removefiles"
	"github.com/vk/pbxpatch/ops/verify"
)

// coreModules is the definitive list of all operation modules compiled
// into the pbxpatch binary.
var coreModules = []registry.Module{
	&removefiles.Module{},
	&addfiles.Module{},
	&verify.Module{},
}

// defaultPipeline is the fixed order operations run in: removals first,
// then insertions, then the invariant check.
var defaultPipeline = []string{
	removefiles.OpName,
	addfiles.OpName,
	verify.OpName,
}
