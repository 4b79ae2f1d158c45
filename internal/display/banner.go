package display

import (
	"fmt"
	"io"

	"github.com/backmassage/imgmanifest/internal/term"
)

const banner = ` _                                  _  __           _
(_)_ __ ___   __ _ _ __ ___   __ _ _ __ (_)/ _| ___  ___| |_
| | '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \| | |_ / _ \/ __| __|
| | | | | | | (_| | | | | | | (_| | | | | |  _|  __/\__ \ |_
|_|_| |_| |_|\__, |_| |_| |_|\__,_|_| |_|_|_|  \___||___/\__|
             |___/
`

// PrintBanner writes the ASCII art banner to w, in magenta when colors are
// enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Paint(term.Magenta, banner))
	if term.Enabled() {
		fmt.Fprintln(w)
	}
}
