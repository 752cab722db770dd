package completions

import (
	"sync"

	"github.com/cmdtree-tools/cli/internal/dispatchers"
)

var (
	commandTree   *dispatchers.DispatchNode
	commandTreeMu sync.RWMutex
)

// RegisterCommandTree stores the command tree for the completion
// generators. Called from main after the tree is built.
func RegisterCommandTree(root *dispatchers.DispatchNode) {
	commandTreeMu.Lock()
	defer commandTreeMu.Unlock()
	commandTree = root
}

// GetCommandTree returns the registered command tree, nil if none.
func GetCommandTree() *dispatchers.DispatchNode {
	commandTreeMu.RLock()
	defer commandTreeMu.RUnlock()
	return commandTree
}
