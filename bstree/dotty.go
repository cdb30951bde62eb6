package bstree

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bstdict/cell"
)

type nodeids struct {
	idTable map[*cell.Cell]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*cell.Cell]int),
		max:     1,
	}
}

func (ids nodeids) find(node *cell.Cell) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *cell.Cell) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes). label renders a payload; if it is nil, payloads
// are printed as quoted Go strings.
//
// Missing children are drawn as small empty circles, so left and right
// children stay distinguishable.
func Tree2Dot(t *Tree, w io.Writer, label func([]byte) string) error {
	if label == nil {
		label = func(p []byte) string { return fmt.Sprintf("%q", p) }
	}
	ids := newtable()
	var nodelist, edgelist strings.Builder
	nilid := 10000
	edge := func(from int, child *cell.Cell) {
		if child == nil {
			nilid++
			fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", from, nilid)
			return
		}
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", from, ids.alloc(child))
	}
	t.ForEachCell(func(c *cell.Cell, depth int) bool {
		ID := ids.alloc(c)
		text := strings.ReplaceAll(label(c.Payload()), `"`, `\"`)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, text, nodeDotStyles(depth))
		if c.Prev() != nil || c.Next() != nil {
			edge(ID, c.Prev())
			edge(ID, c.Next())
		}
		return true
	})
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(depth int) string {
	s := ",style=filled,shape=box"
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
