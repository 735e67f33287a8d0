// Package providers registers all built-in AI providers. Import for side
// effects from each front-end main.
package providers

import (
	_ "github.com/scout-plus/scout-ai/src/ai/claude"
	_ "github.com/scout-plus/scout-ai/src/ai/openai"
)
