// This file is part of mdcore.
//
// mdcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdcore.  If not, see <https://www.gnu.org/licenses/>.

// Package devtools renders the running console's component graph - every
// hardware component the scheduler owns, and how they reference one
// another - as a Graphviz dot graph, for inspecting the wiring of a build
// without attaching a debugger.
package devtools

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/mdcore/mdcore/hardware/console"
)

// WriteGraph writes a dot graph of the console's component graph to w. The
// result can be piped through Graphviz's `dot -Tpng` to produce an image.
func WriteGraph(w io.Writer, c *console.Console) {
	memviz.Map(w, c)
}
