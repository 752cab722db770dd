package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryRender                        // Tree rendering: render, styles
	CategoryConfig                        // Configuration
	CategoryInfo                          // Version and other info
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryRender:
		return "render command trees"
	case CategoryConfig:
		return "configure cmdtree"
	case CategoryInfo:
		return "info"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryRender,
	CategoryConfig,
	CategoryInfo,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
