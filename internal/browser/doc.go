// Package browser drives comment boxes in a live Chrome page.
//
// Host launches or attaches to Chrome through rod and opens a page. A
// Session installs the page-side script and stylesheet, then enhances every
// #commentbox on the page: each gets a uuid marker, the B/I/S/A² buttons
// after its emoji button and a hidden preview container after its footer.
// Button clicks and input events are queued by the page and drained by
// Session.Poll, which applies them through a commentfmt.Formatter.
//
// Widget adapts one enhanced box to commentfmt.Surface. The page counts
// offsets in UTF-16 code units; Widget converts them to rune offsets at the
// boundary so the engine never sees surrogate halves.
package browser
