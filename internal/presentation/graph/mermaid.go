package graph

import (
	"fmt"
	"strings"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from the
// inspected node set. It applies semantic styling:
// - Source (no inputs): ((Circle))
// - Default: [Rectangle]
// Wiring that reads a node registered at the same or a later position
// crosses a tick boundary, so those edges are drawn dashed with a
// "1 tick" label.
func GenerateMermaid(nodes []domain.NodeInfo) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := mermaidID(node.ID)

		// Node Shape based on role
		opener, closer := "[", "]"
		if len(node.Inputs) == 0 {
			opener, closer = "((", "))" // Circle
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, nodeLabel(node), closer))

		// Edges point from producer to consumer.
		for _, input := range node.Inputs {
			arrow := "-->"
			if input >= node.ID {
				arrow = `-. "1 tick" .->`
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", mermaidID(input), arrow, safeID))
		}
	}

	return sb.String()
}

func nodeLabel(node domain.NodeInfo) string {
	name := node.Name
	if name == "" {
		name = fmt.Sprintf("node-%d", node.ID)
	}
	// Escape double quotes for the Mermaid label
	name = strings.ReplaceAll(name, "\"", "'")

	// Annotate with the logic kind unless the name already says it.
	if node.Kind != "" && node.Kind != name {
		return fmt.Sprintf("%s <br/> %s", name, node.Kind)
	}
	return name
}

func mermaidID(id domain.NodeID) string {
	return fmt.Sprintf("n%d", id)
}
