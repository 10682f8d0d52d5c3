package segment

// ExamplePuzzle is the reference puzzle the decoder was first written against.
// Segments follow one another without separators.
const ExamplePuzzle = "<<<**.>..>>**. [33x11x020][5]" +
	".*>**<**-.<..><>. [41x13x011][5]" +
	"<>..<**-<> [28x9x08][1]" +
	"><>...-<<*..>-**>*. [49x16x014][14]" +
	"..*.*.**-*>... [26x6x02][2]" +
	"*<..**...<>>.>.<*>*>*>><. [60x12x06][4]"
