package nodelink_test

import (
	"fmt"
	"strings"

	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/implications"
	"github.com/allen-marshall/lv2-se-bundle/pkg/render/nodelink"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

func ExampleToDOT() {
	g := enumgraph.FromEdges(
		enumgraph.Edge[vocab.PluginType]{From: vocab.ReverbPlugin, To: vocab.DelayPlugin},
	)
	dot := nodelink.ToDOT(g, nodelink.Options[vocab.PluginType]{})

	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "->") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// "Reverb" -> "Delay";
}

func ExampleToDOT_highlight() {
	implied := implications.PluginTypesImpliedBy(enumgraph.SetOf(vocab.ReverbPlugin))
	_ = nodelink.ToDOT(implications.PluginTypes(), nodelink.Options[vocab.PluginType]{Highlight: implied})

	fmt.Println(implied.Len(), "terms highlighted")
	// Output:
	// 3 terms highlighted
}
