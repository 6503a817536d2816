package rope

import (
	"fmt"
	"io"
	"strings"

	"github.com/ivanbgd/rope/splay"
)

type nodeids struct {
	idTable map[*splay.Node[byte]]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*splay.Node[byte]]int),
		max:     1,
	}
}

func (ids nodeids) find(node *splay.Node[byte]) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *splay.Node[byte]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a Rope in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with their character and
// subtree size. Empty children are drawn as placeholders with IDs of the
// form "nil<n>", which never collide with node IDs.
func Rope2Dot(text *Rope, w io.Writer) {
	ids := newtable()
	var nodelist, edgelist strings.Builder
	nils := 0
	for _, node := range text.Nodes() {
		ID := ids.alloc(node)
		isleaf := node.Left() == nil && node.Right() == nil
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%c\\n%d\" %s];\n", ID, node.Value(), node.Size(),
			nodeDotStyles(isleaf))
		if isleaf {
			continue
		}
		for _, child := range []*splay.Node[byte]{node.Left(), node.Right()} {
			if child == nil {
				nils++
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nils, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", ID, nils)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
	}
	T().Debugf("rope DOT: %d nodes, %d empty children", ids.max-1, nils)
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
