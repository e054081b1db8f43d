// Package problem loads the named coefficient tables that parameterize a
// resource-allocation linear program.
//
// A Table has one row per resource and one column per product: cell (i, j)
// is how much of resource i one unit of product j consumes.
//
// ⚙️ Usage:
//
//	t, err := problem.Load("feed.csv") // "" selects the built-in dataset
//	if err != nil {
//	  // handle ErrDuplicateProduct, ErrRowLength, ErrNotNumeric, ...
//	}
//	fmt.Println(t.ProductNames(), t.ResourceNames())
//
// File format (';'-separated, one header row):
//
//	;oatmeal;wheat;corn;barley;soy
//	F1;1;0;1;0;2
//	F2;1;2;0;1;0
//
// The first header cell is ignored; the rest are product names. Each data
// row starts with a resource name followed by one coefficient per product.
// Names and numbers are trimmed of surrounding whitespace.
package problem
